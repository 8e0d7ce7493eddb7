package discussion_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/killua-y/kanbas-fullstack-app/core/discussion"
	"github.com/killua-y/kanbas-fullstack-app/storage/database/inmem"
)

func setup(t *testing.T) (*discussion.Service, discussion.Repository) {
	t.Helper()
	repo := inmemdb.NewDiscussionRepository(inmemdb.NewDB())
	return discussion.NewService(repo), repo
}

func TestService_ByPost_topLevelNewestFirst(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	now := time.Now().UTC()
	older, err := repo.CreateDiscussion(ctx, discussion.Discussion{Post: "p1", Text: "first", Author: "u1", Date: now.Add(-time.Hour)})
	assert.NoError(t, err)
	newer, err := repo.CreateDiscussion(ctx, discussion.Discussion{Post: "p1", Text: "second", Author: "u2", Date: now})
	assert.NoError(t, err)
	// children do not appear in the top-level listing
	if _, err := repo.CreateDiscussion(ctx, discussion.Discussion{Post: "p1", Text: "child", Author: "u3", Date: now, ParentDiscussion: older.ID}); err != nil {
		t.Fatalf("CreateDiscussion() failed: %v", err)
	}
	if _, err := repo.CreateDiscussion(ctx, discussion.Discussion{Post: "p2", Text: "elsewhere", Author: "u1", Date: now}); err != nil {
		t.Fatalf("CreateDiscussion() failed: %v", err)
	}

	dd, err := svc.ByPost(ctx, "p1")
	assert.NoError(t, err)
	if assert.Len(t, dd, 2) {
		assert.Equal(t, newer.ID, dd[0].ID)
		assert.Equal(t, older.ID, dd[1].ID)
	}
}

func TestService_Nested_oldestFirst(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	now := time.Now().UTC()
	parent, err := repo.CreateDiscussion(ctx, discussion.Discussion{Post: "p1", Text: "parent", Author: "u1", Date: now.Add(-2 * time.Hour)})
	assert.NoError(t, err)
	second, err := repo.CreateDiscussion(ctx, discussion.Discussion{Post: "p1", Text: "reply 2", Author: "u2", Date: now, ParentDiscussion: parent.ID})
	assert.NoError(t, err)
	first, err := repo.CreateDiscussion(ctx, discussion.Discussion{Post: "p1", Text: "reply 1", Author: "u3", Date: now.Add(-time.Hour), ParentDiscussion: parent.ID})
	assert.NoError(t, err)

	dd, err := svc.Nested(ctx, parent.ID)
	assert.NoError(t, err)
	if assert.Len(t, dd, 2) {
		assert.Equal(t, first.ID, dd[0].ID)
		assert.Equal(t, second.ID, dd[1].ID)
	}
}

func TestService_ToggleResolved(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, discussion.NewDiscussion{Post: "p1", Text: "hmm", Author: "u1"})
	assert.NoError(t, err)
	assert.False(t, d.IsResolved)

	d1, err := svc.ToggleResolved(ctx, d.ID)
	assert.NoError(t, err)
	assert.True(t, d1.IsResolved)

	d2, err := svc.ToggleResolved(ctx, d.ID)
	assert.NoError(t, err)
	assert.False(t, d2.IsResolved)

	_, err = svc.ToggleResolved(ctx, "nope")
	assert.Equal(t, discussion.ErrNotFound, err)
}
