package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/killua-y/kanbas-fullstack-app/core/answer"
)

type answerRepository struct {
	db *DB
}

var _ answer.Repository = (*answerRepository)(nil) // interface compliance check

func NewAnswerRepository(db *DB) *answerRepository {
	return &answerRepository{db: db}
}

func (repo *answerRepository) CreateAnswer(_ context.Context, ans answer.Answer) (answer.Answer, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// one student answer and one instructor answer per post
	for _, a := range repo.db.answers {
		if a.Post == ans.Post && a.IsInstructorAnswer == ans.IsInstructorAnswer {
			return answer.Answer{}, answer.ErrAnswerExists
		}
	}

	if ans.ID == "" {
		ans.ID = uuid.New().String()
	}
	repo.db.answers[ans.ID] = &ans
	return ans, nil
}

func (repo *answerRepository) GetAnswer(_ context.Context, id string) (answer.Answer, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if ans, ok := repo.db.answers[id]; ok {
		return *ans, nil
	}
	return answer.Answer{}, answer.ErrNotFound
}

func (repo *answerRepository) FindAnswersByPost(_ context.Context, postID string) ([]answer.Answer, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	answers := make([]answer.Answer, 0)
	for _, ans := range repo.db.answers {
		if ans.Post == postID {
			answers = append(answers, *ans)
		}
	}
	// newest first
	sort.Slice(answers, func(i, j int) bool { return answers[i].Date.After(answers[j].Date) })
	return answers, nil
}

func (repo *answerRepository) UpdateAnswer(_ context.Context, id string, ua answer.UpdateAnswer) (answer.Answer, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	ans, ok := repo.db.answers[id]
	if !ok {
		return answer.Answer{}, answer.ErrNotFound
	}
	now := time.Now().UTC()
	ans.Text = ua.Text
	ans.IsEdited = true
	ans.EditDate = &now
	ans.EditBy = ua.EditBy
	return *ans, nil
}

func (repo *answerRepository) DeleteAnswer(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.answers[id]; !ok {
		return answer.ErrNotFound
	}
	delete(repo.db.answers, id)
	return nil
}
