package discussion

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("discussion not found")

type (
	Repository interface {
		CreateDiscussion(ctx context.Context, d Discussion) (Discussion, error)
		GetDiscussion(ctx context.Context, id string) (Discussion, error)
		// FindDiscussionsByPost returns the post's top-level discussions,
		// newest first.
		FindDiscussionsByPost(ctx context.Context, postID string) ([]Discussion, error)
		// FindNestedDiscussions returns a discussion's children, oldest first.
		FindNestedDiscussions(ctx context.Context, parentID string) ([]Discussion, error)
		UpdateDiscussion(ctx context.Context, id string, ud UpdateDiscussion) (Discussion, error)
		SetDiscussionResolved(ctx context.Context, id string, resolved bool) (Discussion, error)
		DeleteDiscussion(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nd NewDiscussion) (Discussion, error) {
	d := Discussion{
		Post:             nd.Post,
		Text:             nd.Text,
		Author:           nd.Author,
		Date:             time.Now().UTC(),
		ParentDiscussion: nd.ParentDiscussion,
		ParentReply:      nd.ParentReply,
	}
	return svc.repo.CreateDiscussion(ctx, d)
}

func (svc *Service) Get(ctx context.Context, id string) (Discussion, error) {
	return svc.repo.GetDiscussion(ctx, id)
}

func (svc *Service) ByPost(ctx context.Context, postID string) ([]Discussion, error) {
	return svc.repo.FindDiscussionsByPost(ctx, postID)
}

func (svc *Service) Nested(ctx context.Context, parentID string) ([]Discussion, error) {
	return svc.repo.FindNestedDiscussions(ctx, parentID)
}

func (svc *Service) Update(ctx context.Context, id string, ud UpdateDiscussion) (Discussion, error) {
	return svc.repo.UpdateDiscussion(ctx, id, ud)
}

// ToggleResolved flips the discussion's resolved flag.
func (svc *Service) ToggleResolved(ctx context.Context, id string) (Discussion, error) {
	d, err := svc.repo.GetDiscussion(ctx, id)
	if err != nil {
		return Discussion{}, err
	}
	return svc.repo.SetDiscussionResolved(ctx, id, !d.IsResolved)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteDiscussion(ctx, id)
}
