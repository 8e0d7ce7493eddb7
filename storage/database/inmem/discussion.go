package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/killua-y/kanbas-fullstack-app/core/discussion"
)

type discussionRepository struct {
	db *DB
}

var _ discussion.Repository = (*discussionRepository)(nil) // interface compliance check

func NewDiscussionRepository(db *DB) *discussionRepository {
	return &discussionRepository{db: db}
}

func (repo *discussionRepository) query(match func(discussion.Discussion) bool, newestFirst bool) []discussion.Discussion {
	discussions := make([]discussion.Discussion, 0)
	for _, d := range repo.db.discussions {
		if match(*d) {
			discussions = append(discussions, *d)
		}
	}
	sort.Slice(discussions, func(i, j int) bool {
		if newestFirst {
			return discussions[i].Date.After(discussions[j].Date)
		}
		return discussions[i].Date.Before(discussions[j].Date)
	})
	return discussions
}

func (repo *discussionRepository) CreateDiscussion(_ context.Context, d discussion.Discussion) (discussion.Discussion, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	repo.db.discussions[d.ID] = &d
	return d, nil
}

func (repo *discussionRepository) GetDiscussion(_ context.Context, id string) (discussion.Discussion, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if d, ok := repo.db.discussions[id]; ok {
		return *d, nil
	}
	return discussion.Discussion{}, discussion.ErrNotFound
}

func (repo *discussionRepository) FindDiscussionsByPost(_ context.Context, postID string) ([]discussion.Discussion, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(d discussion.Discussion) bool {
		return d.Post == postID && d.ParentDiscussion == ""
	}, true), nil
}

func (repo *discussionRepository) FindNestedDiscussions(_ context.Context, parentID string) ([]discussion.Discussion, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(d discussion.Discussion) bool {
		return d.ParentDiscussion == parentID
	}, false), nil
}

func (repo *discussionRepository) UpdateDiscussion(_ context.Context, id string, ud discussion.UpdateDiscussion) (discussion.Discussion, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	d, ok := repo.db.discussions[id]
	if !ok {
		return discussion.Discussion{}, discussion.ErrNotFound
	}
	now := time.Now().UTC()
	d.Text = ud.Text
	d.IsEdited = true
	d.EditDate = &now
	d.EditBy = ud.EditBy
	return *d, nil
}

func (repo *discussionRepository) SetDiscussionResolved(_ context.Context, id string, resolved bool) (discussion.Discussion, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	d, ok := repo.db.discussions[id]
	if !ok {
		return discussion.Discussion{}, discussion.ErrNotFound
	}
	d.IsResolved = resolved
	return *d, nil
}

func (repo *discussionRepository) DeleteDiscussion(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.discussions[id]; !ok {
		return discussion.ErrNotFound
	}
	delete(repo.db.discussions, id)
	return nil
}
