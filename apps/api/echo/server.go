package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/dashboard"
	"github.com/prachishaw/ClassCapsule/core/theme"
	"github.com/prachishaw/ClassCapsule/core/user"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Gate       *user.Gate
		CourseSvc  *course.Service
		ThemeSvc   *theme.Service
		Report     dashboard.Report
		Validate   *validator.Validate
		Translator ut.Translator
	}

	// Server serves the dashboard API for the single session held by its Gate.
	Server struct {
		app      *echo.Echo
		conf     *core.Config
		logger   core.Logger
		board    *dashboard.Board
		errors   chan error
		shutdown chan os.Signal
	}
)

var nowFunc = time.Now // mockable

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		app:      echo.New(),
		conf:     deps.Conf,
		logger:   deps.Logger,
		board:    dashboard.NewBoard(deps.Gate, deps.CourseSvc),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)

	s.app.HideBanner = true
	s.app.Debug = deps.Conf.Debug
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(deps.Logger, deps.Translator, s.signalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !deps.Conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(deps.Conf.Debug || deps.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.GET("/", s.home)
	s.app.GET(user.LoginPath, loginHint)

	v1 := s.app.Group("/v1")
	guard := sessionMiddleware(deps.Gate)

	registerAuthAPI(v1, guard, deps.Gate, deps.Validate)
	registerCourseAPI(v1, guard, deps.CourseSvc, deps.Validate, s.board, deps.Report)
	registerCalendarAPI(v1, guard, deps.CourseSvc, deps.Conf.Calendar.UpcomingLimit)
	registerThemeAPI(v1, deps.ThemeSvc, deps.Validate)

	return s
}

// Start listens on the configured address; a listener failure is sent to Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error { return s.errors }

// ShutdownSignal receives interrupts and shutdown requests from handlers.
func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.stop()
	return s.app.Shutdown(ctx)
}

// Close stops the server immediately.
func (s *Server) Close() error {
	defer s.stop()
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) stop() {
	signal.Stop(s.shutdown)
	s.board.Close()
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.conf.AppName+" API!")
}
