package answer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/killua-y/kanbas-fullstack-app/core/answer"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
	"github.com/killua-y/kanbas-fullstack-app/storage/database/inmem"
	"github.com/killua-y/kanbas-fullstack-app/tests"
)

// resolver satisfies answer.PostResolver over the post repository.
type resolver struct {
	repo post.Repository
}

func (r resolver) SetResolved(ctx context.Context, postID string, resolved bool) error {
	_, err := r.repo.SetResolved(ctx, postID, resolved)
	return err
}

func setup(t *testing.T) (*answer.Service, answer.Repository, post.Repository) {
	t.Helper()
	db := inmemdb.NewDB()
	postRepo := inmemdb.NewPostRepository(db)
	ansRepo := inmemdb.NewAnswerRepository(db)
	svc := answer.NewService(ansRepo, resolver{repo: postRepo})
	return svc, ansRepo, postRepo
}

func TestService_Create(t *testing.T) {
	svc, _, postRepo := setup(t)
	ctx := context.Background()

	q1 := testutil.CreatePost(t, postRepo, post.Post{Title: "Q1", Text: "halp", PostBy: "u1", Course: "c1"})

	studentAns, err := svc.Create(ctx, answer.NewAnswer{Post: q1.ID, Text: "try this", Author: "u2"})
	assert.NoError(t, err)
	assert.False(t, studentAns.IsInstructorAnswer)
	assert.NotZero(t, studentAns.Date)

	// a student answer does not resolve the post
	p, _ := postRepo.GetPost(ctx, q1.ID)
	assert.False(t, p.IsResolved)

	// second student answer is rejected
	_, err = svc.Create(ctx, answer.NewAnswer{Post: q1.ID, Text: "me too", Author: "u3"})
	assert.Equal(t, answer.ErrAnswerExists, err)

	// an instructor answer may coexist and resolves the post
	instrAns, err := svc.Create(ctx, answer.NewAnswer{Post: q1.ID, Text: "Sunday.", Author: "prof", IsInstructorAnswer: true})
	assert.NoError(t, err)
	assert.True(t, instrAns.IsInstructorAnswer)

	p, _ = postRepo.GetPost(ctx, q1.ID)
	assert.True(t, p.IsResolved)

	// second instructor answer is rejected too
	_, err = svc.Create(ctx, answer.NewAnswer{Post: q1.ID, Text: "again", Author: "prof", IsInstructorAnswer: true})
	assert.Equal(t, answer.ErrAnswerExists, err)
}

func TestService_ByPost_newestFirst(t *testing.T) {
	svc, ansRepo, postRepo := setup(t)
	ctx := context.Background()

	q1 := testutil.CreatePost(t, postRepo, post.Post{Title: "Q1", PostBy: "u1", Course: "c1"})
	q2 := testutil.CreatePost(t, postRepo, post.Post{Title: "Q2", PostBy: "u1", Course: "c1"})

	now := time.Now().UTC()
	older, err := ansRepo.CreateAnswer(ctx, answer.Answer{Post: q1.ID, Text: "students say", Author: "u2", Date: now.Add(-time.Hour)})
	assert.NoError(t, err)
	newer, err := ansRepo.CreateAnswer(ctx, answer.Answer{Post: q1.ID, Text: "prof says", Author: "prof", IsInstructorAnswer: true, Date: now})
	assert.NoError(t, err)
	if _, err := ansRepo.CreateAnswer(ctx, answer.Answer{Post: q2.ID, Text: "elsewhere", Author: "u3", Date: now}); err != nil {
		t.Fatalf("CreateAnswer() failed: %v", err)
	}

	answers, err := svc.ByPost(ctx, q1.ID)
	assert.NoError(t, err)
	if assert.Len(t, answers, 2) {
		assert.Equal(t, newer.ID, answers[0].ID)
		assert.Equal(t, older.ID, answers[1].ID)
	}
}

func TestService_Update_stampsEdit(t *testing.T) {
	svc, _, postRepo := setup(t)
	ctx := context.Background()

	q1 := testutil.CreatePost(t, postRepo, post.Post{Title: "Q1", PostBy: "u1", Course: "c1"})
	ans, err := svc.Create(ctx, answer.NewAnswer{Post: q1.ID, Text: "v1", Author: "u2"})
	assert.NoError(t, err)
	assert.False(t, ans.IsEdited)

	updated, err := svc.Update(ctx, ans.ID, answer.UpdateAnswer{Text: "v2", EditBy: "u2"})
	assert.NoError(t, err)
	assert.Equal(t, "v2", updated.Text)
	assert.True(t, updated.IsEdited)
	assert.Equal(t, "u2", updated.EditBy)
	if assert.NotNil(t, updated.EditDate) {
		assert.False(t, updated.EditDate.IsZero())
	}

	_, err = svc.Update(ctx, "nope", answer.UpdateAnswer{Text: "v3", EditBy: "u2"})
	assert.Equal(t, answer.ErrNotFound, err)
}
