package reply

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("reply not found")

type (
	Repository interface {
		CreateReply(ctx context.Context, r Reply) (Reply, error)
		GetReply(ctx context.Context, id string) (Reply, error)
		// FindRepliesByDiscussion returns the discussion's replies, oldest first.
		FindRepliesByDiscussion(ctx context.Context, discussionID string) ([]Reply, error)
		// FindRepliesByParent returns a reply's children, oldest first.
		FindRepliesByParent(ctx context.Context, parentReplyID string) ([]Reply, error)
		UpdateReply(ctx context.Context, id string, ur UpdateReply) (Reply, error)
		DeleteReply(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nr NewReply) (Reply, error) {
	r := Reply{
		Discussion:  nr.Discussion,
		Text:        nr.Text,
		Author:      nr.Author,
		Date:        time.Now().UTC(),
		ParentReply: nr.ParentReply,
	}
	return svc.repo.CreateReply(ctx, r)
}

func (svc *Service) Get(ctx context.Context, id string) (Reply, error) {
	return svc.repo.GetReply(ctx, id)
}

func (svc *Service) ByDiscussion(ctx context.Context, discussionID string) ([]Reply, error) {
	return svc.repo.FindRepliesByDiscussion(ctx, discussionID)
}

func (svc *Service) ByParent(ctx context.Context, parentReplyID string) ([]Reply, error) {
	return svc.repo.FindRepliesByParent(ctx, parentReplyID)
}

func (svc *Service) Update(ctx context.Context, id string, ur UpdateReply) (Reply, error) {
	return svc.repo.UpdateReply(ctx, id, ur)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteReply(ctx, id)
}
