package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"

	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/theme"
	"github.com/prachishaw/ClassCapsule/core/user"
	logsvc "github.com/prachishaw/ClassCapsule/services/logger"
	diskkv "github.com/prachishaw/ClassCapsule/storage/keyvalue/disk"
	"github.com/prachishaw/ClassCapsule/storage/mockdata"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// the session outlives a single invocation, so the CLI always stores on disk
	store, err := diskkv.NewFromConfig(conf)
	if err != nil {
		logger.Fatal("opening store: "+err.Error(), err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		logger: logger,
		gate: user.NewGate(user.GateDeps{
			Store:    store,
			Logger:   logger,
			Validate: validate,
			Delay:    conf.Session.LoginDelay,
		}),
		courses:       course.NewService(mockdata.Catalog(), validate, logger),
		theme:         theme.NewService(store, conf.PrefersDark, logger),
		report:        mockdata.Report(),
		validate:      validate,
		translator:    translator,
		upcomingLimit: conf.Calendar.UpcomingLimit,
		out:           color.Output,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			log.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
