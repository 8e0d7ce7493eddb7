package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/killua-y/kanbas-fullstack-app/core"
	"github.com/killua-y/kanbas-fullstack-app/core/answer"
	"github.com/killua-y/kanbas-fullstack-app/core/assignment"
	"github.com/killua-y/kanbas-fullstack-app/core/course"
	"github.com/killua-y/kanbas-fullstack-app/core/discussion"
	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
	"github.com/killua-y/kanbas-fullstack-app/core/folder"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
	"github.com/killua-y/kanbas-fullstack-app/core/reply"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		UserSvc       *user.Service
		CourseSvc     *course.Service
		AssignmentSvc *assignment.Service
		EnrollmentSvc *enrollment.Service
		PostSvc       *post.Service
		AnswerSvc     *answer.Service
		DiscussionSvc *discussion.Service
		ReplySvc      *reply.Service
		FolderSvc     *folder.Service

		Logger core.Logger
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
		ShutdownSignal() <-chan struct{}
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan struct{}
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan struct{}, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	api := s.app.Group("/api")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(api, jwt, s.opts.UserSvc)
	registerCourseAPI(api, jwt, s.opts.CourseSvc, s.opts.AssignmentSvc)
	registerAssignmentAPI(api, jwt, s.opts.AssignmentSvc)
	registerEnrollmentAPI(api, jwt, s.opts.EnrollmentSvc)

	piazza := api.Group("/piazza", jwt)
	registerPostAPI(piazza, s.opts.PostSvc)
	registerAnswerAPI(piazza, s.opts.AnswerSvc)
	registerDiscussionAPI(piazza, s.opts.DiscussionSvc)
	registerReplyAPI(piazza, s.opts.ReplySvc)
	registerFolderAPI(piazza, s.opts.FolderSvc)
}

// signalShutdown lets the error handler request a graceful shutdown.
func (s *server) signalShutdown() {
	select {
	case s.shutdown <- struct{}{}:
	default:
	}
}

func (s *server) ShutdownSignal() <-chan struct{} { return s.shutdown }

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Kanbas API!")
}
