package dig_container

import (
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/prachishaw/ClassCapsule/apps/api/echo"
	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/dashboard"
	"github.com/prachishaw/ClassCapsule/core/theme"
	"github.com/prachishaw/ClassCapsule/core/user"
	logsvc "github.com/prachishaw/ClassCapsule/services/logger"
	diskkv "github.com/prachishaw/ClassCapsule/storage/keyvalue/disk"
	inmemkv "github.com/prachishaw/ClassCapsule/storage/keyvalue/inmem"
	"github.com/prachishaw/ClassCapsule/storage/mockdata"
)

type StoreLoggerParam struct {
	dig.In
	Logger core.Logger `name:"storeLogger"`
}

type ServerParams struct {
	dig.In
	Conf       *core.Config
	Logger     core.Logger
	Gate       *user.Gate
	CourseSvc  *course.Service
	ThemeSvc   *theme.Service
	Report     dashboard.Report
	Validate   *validator.Validate
	Translator ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newStoreLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "STORE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newStore(conf *core.Config, loggerParam StoreLoggerParam) core.KVStore {
	if conf.Storage.Driver != core.StorageDisk {
		return inmemkv.New()
	}
	store, err := diskkv.NewFromConfig(conf)
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}
	return store
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)
	return validate
}

func newGate(conf *core.Config, store core.KVStore, logger core.Logger, validate *validator.Validate) *user.Gate {
	return user.NewGate(user.GateDeps{
		Store:    store,
		Logger:   logger,
		Validate: validate,
		Delay:    conf.Session.LoginDelay,
	})
}

func newCourseService(validate *validator.Validate, logger core.Logger) *course.Service {
	return course.NewService(mockdata.Catalog(), validate, logger)
}

func newThemeService(conf *core.Config, store core.KVStore, logger core.Logger) *theme.Service {
	return theme.NewService(store, conf.PrefersDark, logger)
}

func newServer(p ServerParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		Gate:       p.Gate,
		CourseSvc:  p.CourseSvc,
		ThemeSvc:   p.ThemeSvc,
		Report:     p.Report,
		Validate:   p.Validate,
		Translator: p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newStoreLogger, dig.Name("storeLogger")))
	must(c.Provide(newStore))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newGate))
	must(c.Provide(newCourseService))
	must(c.Provide(newThemeService))
	must(c.Provide(mockdata.Report))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
