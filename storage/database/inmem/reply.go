package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/killua-y/kanbas-fullstack-app/core/reply"
)

type replyRepository struct {
	db *DB
}

var _ reply.Repository = (*replyRepository)(nil) // interface compliance check

func NewReplyRepository(db *DB) *replyRepository {
	return &replyRepository{db: db}
}

func (repo *replyRepository) query(match func(reply.Reply) bool) []reply.Reply {
	replies := make([]reply.Reply, 0)
	for _, r := range repo.db.replies {
		if match(*r) {
			replies = append(replies, *r)
		}
	}
	// oldest first
	sort.Slice(replies, func(i, j int) bool { return replies[i].Date.Before(replies[j].Date) })
	return replies
}

func (repo *replyRepository) CreateReply(_ context.Context, r reply.Reply) (reply.Reply, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	repo.db.replies[r.ID] = &r
	return r, nil
}

func (repo *replyRepository) GetReply(_ context.Context, id string) (reply.Reply, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.replies[id]; ok {
		return *r, nil
	}
	return reply.Reply{}, reply.ErrNotFound
}

func (repo *replyRepository) FindRepliesByDiscussion(_ context.Context, discussionID string) ([]reply.Reply, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(r reply.Reply) bool { return r.Discussion == discussionID }), nil
}

func (repo *replyRepository) FindRepliesByParent(_ context.Context, parentReplyID string) ([]reply.Reply, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(r reply.Reply) bool { return r.ParentReply == parentReplyID }), nil
}

func (repo *replyRepository) UpdateReply(_ context.Context, id string, ur reply.UpdateReply) (reply.Reply, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	r, ok := repo.db.replies[id]
	if !ok {
		return reply.Reply{}, reply.ErrNotFound
	}
	now := time.Now().UTC()
	r.Text = ur.Text
	r.IsEdited = true
	r.EditDate = &now
	r.EditBy = ur.EditBy
	return *r, nil
}

func (repo *replyRepository) DeleteReply(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.replies[id]; !ok {
		return reply.ErrNotFound
	}
	delete(repo.db.replies, id)
	return nil
}
