package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/prachishaw/ClassCapsule/apps/api/echo"
	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/theme"
	"github.com/prachishaw/ClassCapsule/core/user"
	logsvc "github.com/prachishaw/ClassCapsule/services/logger"
	diskkv "github.com/prachishaw/ClassCapsule/storage/keyvalue/disk"
	inmemkv "github.com/prachishaw/ClassCapsule/storage/keyvalue/inmem"
	"github.com/prachishaw/ClassCapsule/storage/mockdata"
)

func startManual() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up store
	store, err := setUpStore(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)

	// set up services
	gate := user.NewGate(user.GateDeps{
		Store:    store,
		Logger:   logger,
		Validate: validate,
		Delay:    conf.Session.LoginDelay,
	})
	courseSvc := course.NewService(mockdata.Catalog(), validate, logger)
	themeSvc := theme.NewService(store, conf.PrefersDark, logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err = http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Gate:       gate,
			CourseSvc:  courseSvc,
			ThemeSvc:   themeSvc,
			Report:     mockdata.Report(),
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpStore(conf *core.Config) (core.KVStore, error) {
	if conf.Storage.Driver != core.StorageDisk {
		return inmemkv.New(), nil
	}
	return diskkv.NewFromConfig(conf)
}
