package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/killua-y/kanbas-fullstack-app/core/assignment"
)

type assignmentRepository struct {
	db *DB
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) *assignmentRepository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	repo.db.assignments[a.ID] = &a
	return a, nil
}

func (repo *assignmentRepository) GetAssignment(_ context.Context, id string) (assignment.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if a, ok := repo.db.assignments[id]; ok {
		return *a, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) FindAssignmentsByCourse(_ context.Context, courseID string) ([]assignment.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	assignments := make([]assignment.Assignment, 0)
	for _, a := range repo.db.assignments {
		if a.Course == courseID {
			assignments = append(assignments, *a)
		}
	}
	return assignments, nil
}

func (repo *assignmentRepository) UpdateAssignment(_ context.Context, id string, ua assignment.UpdateAssignment) (assignment.Assignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	a, ok := repo.db.assignments[id]
	if !ok {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	if ua.Title != "" {
		a.Title = ua.Title
	}
	if ua.Description != "" {
		a.Description = ua.Description
	}
	if ua.Points != 0 {
		a.Points = ua.Points
	}
	if ua.AvailableFrom != "" {
		a.AvailableFrom = ua.AvailableFrom
	}
	if ua.DueDate != "" {
		a.DueDate = ua.DueDate
	}
	return *a, nil
}

func (repo *assignmentRepository) DeleteAssignment(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.assignments[id]; !ok {
		return assignment.ErrNotFound
	}
	delete(repo.db.assignments, id)
	return nil
}
