package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/user"
	emailsvc "github.com/trezcool/fyp/services/email"
	logsvc "github.com/trezcool/fyp/services/logger"
	"github.com/trezcool/fyp/storage/fypapi"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds), conf)
	logger.Enable(!conf.Debug)

	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	announcement.InitValidators(validate, translator)
	core.ParseEmailTemplates(logger)

	client := fypapi.NewClient(conf, logger)
	mailSvc := emailsvc.NewConsoleService(conf, logger)
	if !conf.Debug && conf.SendgridApiKey != "" {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// start CLI
	cli := commandLine{
		usrSvc:          user.NewService(client, validate, translator),
		announcementSvc: announcement.NewService(client, validate, translator, mailSvc, conf, logger),
		groupSvc:        group.NewService(client),
		in:              os.Stdin,
		out:             os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed: "+core.UserMessage(err), err)
		}
		os.Exit(1)
	}
}
