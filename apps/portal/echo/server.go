package echoportal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/dig"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/dashboard"
	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
	appfs "github.com/trezcool/fyp/fs"
)

// Deps are the services the portal handlers are built on.
type Deps struct {
	dig.In

	Conf            *core.Config
	Logger          core.Logger
	UserSvc         *user.Service
	DashboardSvc    *dashboard.Service
	AnnouncementSvc *announcement.Service
	GroupSvc        *group.Service
	ProjectSvc      *project.Service
	ScheduleSvc     *schedule.Service
	DocumentSvc     *document.Service
	ProfileSvc      *profile.Service
}

type Server struct {
	app      *echo.Echo
	deps     Deps
	enforcer *casbin.Enforcer
	renderer *renderer
	shutdown chan os.Signal
	errors   chan error
}

func NewServer(deps Deps) (*Server, error) {
	enforcer, err := newEnforcer()
	if err != nil {
		return nil, err
	}
	rdr, err := newRenderer(deps.Conf)
	if err != nil {
		return nil, err
	}

	s := &Server{
		app:      echo.New(),
		deps:     deps,
		enforcer: enforcer,
		renderer: rdr,
		shutdown: make(chan os.Signal, 1),
		errors:   make(chan error, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s, nil
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.Renderer = s.renderer
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.SignalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	s.app.StaticFS("/assets", echo.MustSubFS(appfs.Assets, "assets"))

	s.app.Use(sessionMiddleware(conf))
	registerRoutes(s.app, s.deps, s.renderer, s.enforcer)
}

func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error { return s.errors }

func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

// SignalShutdown asks main to stop the server gracefully.
func (s *Server) SignalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
