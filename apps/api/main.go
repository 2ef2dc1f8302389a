package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/RedSolnishko/Digital-Teaching-Assistant/apps/api/echo"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/assignment"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/catalog"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/teacher"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/topic"
	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
	logsvc "github.com/RedSolnishko/Digital-Teaching-Assistant/services/logger"
	dummydb "github.com/RedSolnishko/Digital-Teaching-Assistant/storage/database/dummy"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up the in-memory store; all state lives for the process lifetime
	db, err := dummydb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}
	if err = dummydb.LoadFixtures(db); err != nil {
		logger.Fatal(fmt.Sprintf("loading fixtures: %v", err), err)
	}

	// set up services
	topicRepo := dummydb.NewTopicRepository(db)
	usrSvc := user.NewService(dummydb.NewUserRepository(db))
	tchSvc := teacher.NewService(dummydb.NewTeacherRepository(db))
	tpcSvc := topic.NewService(topicRepo)
	catSvc := catalog.NewService(dummydb.NewTaskRepository(db), conf.Departments)
	asgSvc := assignment.NewService(
		topicRepo,
		dummydb.NewGeneratedTaskRepository(db),
		assignment.DefaultTaskContent,
		assignment.DefaultAnswerKeys,
	)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	teacher.InitValidators(validate, translator, conf.Departments)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			UserSvc:       usrSvc,
			TeacherSvc:    tchSvc,
			TopicSvc:      tpcSvc,
			CatalogSvc:    catSvc,
			AssignmentSvc: asgSvc,
			Validate:      validate,
			Translator:    translator,
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

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
