package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/killua-y/kanbas-fullstack-app/apps/api/echo"
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
	"github.com/killua-y/kanbas-fullstack-app/services/email"
	"github.com/killua-y/kanbas-fullstack-app/services/logger"
	"github.com/killua-y/kanbas-fullstack-app/storage/database/mongo"
)

// postResolver lets the answer service mark posts resolved.
type postResolver struct {
	svc *post.Service
}

func (r postResolver) SetResolved(ctx context.Context, postID string, resolved bool) error {
	_, err := r.svc.SetResolved(ctx, postID, resolved)
	return err
}

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	// set up logger
	logger := logsvc.NewRollbarLogger(std, core.Conf)
	logger.Enable(!core.Conf.Debug)

	// set up DB
	db, err := mongorepos.Open(core.Conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	ctx := context.Background()
	if err = mongorepos.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("ensuring indexes", err)
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	usrRepo := mongorepos.NewUserRepository(db)
	usrSvc := user.NewService(usrRepo, mailSvc)
	enrollSvc := enrollment.NewService(mongorepos.NewEnrollmentRepository(db))
	courseSvc := course.NewService(
		mongorepos.NewCourseRepository(db),
		mongorepos.NewModuleRepository(db),
		enrollSvc,
		usrSvc,
	)
	assignmentSvc := assignment.NewService(mongorepos.NewAssignmentRepository(db))
	folderSvc := folder.NewService(mongorepos.NewFolderRepository(db))
	postSvc := post.NewService(mongorepos.NewPostRepository(db), folderSvc, usrRepo, mailSvc)
	answerSvc := answer.NewService(mongorepos.NewAnswerRepository(db), postResolver{svc: postSvc})
	discussionSvc := discussion.NewService(mongorepos.NewDiscussionRepository(db))
	replySvc := reply.NewService(mongorepos.NewReplyRepository(db))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:       core.Conf.Addr(),
			UserSvc:       usrSvc,
			CourseSvc:     courseSvc,
			AssignmentSvc: assignmentSvc,
			EnrollmentSvc: enrollSvc,
			PostSvc:       postSvc,
			AnswerSvc:     answerSvc,
			DiscussionSvc: discussionSvc,
			ReplySvc:      replySvc,
			FolderSvc:     folderSvc,
			Logger:        logger,
		},
	)

	go app.Start()

	// graceful shutdown on SIGINT/SIGTERM or on an unrecoverable app error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-app.ShutdownSignal():
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, core.Conf.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(shutdownCtx); err != nil {
		logger.Error("stopping server", err)
	}
}
