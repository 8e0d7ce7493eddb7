package answer

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound     = errors.New("answer not found")
	ErrAnswerExists = errors.New("post already has an answer of this kind")
)

type (
	Repository interface {
		CreateAnswer(ctx context.Context, ans Answer) (Answer, error)
		GetAnswer(ctx context.Context, id string) (Answer, error)
		// FindAnswersByPost returns the post's answers, newest first.
		FindAnswersByPost(ctx context.Context, postID string) ([]Answer, error)
		UpdateAnswer(ctx context.Context, id string, ua UpdateAnswer) (Answer, error)
		DeleteAnswer(ctx context.Context, id string) error
	}

	// PostResolver marks posts resolved when an instructor answers them.
	PostResolver interface {
		SetResolved(ctx context.Context, postID string, resolved bool) error
	}

	Service struct {
		repo  Repository
		posts PostResolver
	}
)

func NewService(repo Repository, posts PostResolver) *Service {
	return &Service{repo: repo, posts: posts}
}

// Create stores a new Answer. At most one student answer and one instructor
// answer may exist per post; an instructor answer marks the post resolved.
func (svc *Service) Create(ctx context.Context, na NewAnswer) (Answer, error) {
	existing, err := svc.repo.FindAnswersByPost(ctx, na.Post)
	if err != nil {
		return Answer{}, errors.Wrap(err, "checking existing answers")
	}
	for _, ans := range existing {
		if ans.IsInstructorAnswer == na.IsInstructorAnswer {
			return Answer{}, ErrAnswerExists
		}
	}

	ans := Answer{
		Post:               na.Post,
		Text:               na.Text,
		Author:             na.Author,
		Date:               time.Now().UTC(),
		IsInstructorAnswer: na.IsInstructorAnswer,
	}
	ans, err = svc.repo.CreateAnswer(ctx, ans)
	if err != nil {
		return Answer{}, err
	}

	if ans.IsInstructorAnswer && svc.posts != nil {
		if err := svc.posts.SetResolved(ctx, ans.Post, true); err != nil {
			return Answer{}, errors.Wrap(err, "resolving post")
		}
	}
	return ans, nil
}

func (svc *Service) Get(ctx context.Context, id string) (Answer, error) {
	return svc.repo.GetAnswer(ctx, id)
}

func (svc *Service) ByPost(ctx context.Context, postID string) ([]Answer, error) {
	return svc.repo.FindAnswersByPost(ctx, postID)
}

func (svc *Service) Update(ctx context.Context, id string, ua UpdateAnswer) (Answer, error) {
	return svc.repo.UpdateAnswer(ctx, id, ua)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteAnswer(ctx, id)
}
