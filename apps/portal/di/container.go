// Package di wires the portal's dependencies with a dig container.
package di

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoportal "github.com/trezcool/fyp/apps/portal/echo"
	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/dashboard"
	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
	emailsvc "github.com/trezcool/fyp/services/email"
	logsvc "github.com/trezcool/fyp/services/logger"
	"github.com/trezcool/fyp/storage/fypapi"
)

type BackendLoggerParam struct {
	dig.In
	Logger core.Logger `name:"backendLogger"`
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "PORTAL : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newBackendLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "FYP-API : ", log.LstdFlags|log.Lmicroseconds)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newBackendClient(conf *core.Config, loggerParam BackendLoggerParam) *fypapi.Client {
	return fypapi.NewClient(conf, loggerParam.Logger)
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.Debug || conf.SendgridApiKey == "" {
		return emailsvc.NewConsoleService(conf, logger)
	}
	return emailsvc.NewSendgridService(conf, logger)
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newBackendLogger, dig.Name("backendLogger")))
	must(c.Provide(newEmailService))
	must(c.Provide(validator.New))
	must(c.Provide(newTranslator))

	// the backend client is the single source of every repository
	must(c.Provide(newBackendClient, dig.As(
		new(user.Authenticator),
		new(announcement.Repository),
		new(group.Repository),
		new(project.Repository),
		new(schedule.Repository),
		new(document.Repository),
		new(profile.Repository),
		new(dashboard.Repository),
	)))

	must(c.Provide(user.NewService))
	must(c.Provide(announcement.NewService))
	must(c.Provide(group.NewService))
	must(c.Provide(project.NewService))
	must(c.Provide(schedule.NewService))
	must(c.Provide(document.NewService))
	must(c.Provide(profile.NewService))
	must(c.Provide(dashboard.NewService))
	must(c.Provide(echoportal.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
