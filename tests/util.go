package testutil

import (
	"io"
	"log"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/project"
	logsvc "github.com/trezcool/fyp/services/logger"
)

// NewConfig returns a test configuration pointing the API client at backendURL.
func NewConfig(backendURL string) *core.Config {
	conf := core.NewConfig()
	conf.TestMode = true
	conf.Backend.URL = backendURL
	conf.Backend.Timeout = 5 * time.Second
	conf.Notify.Announcements = false
	return conf
}

// NewLogger returns a silent logger with rollbar disabled.
func NewLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)
	return logger
}

// NewValidator returns a validator with every custom tag and translation registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	announcement.InitValidators(validate, translator)
	project.InitValidators(validate, translator)
	document.InitValidators(validate, translator)
	return validate, translator
}
