package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
)

type enrollmentRepository struct {
	db *DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo *enrollmentRepository) query(match func(enrollment.Enrollment) bool) []enrollment.Enrollment {
	enrollments := make([]enrollment.Enrollment, 0)
	for _, e := range repo.db.enrollments {
		if match(*e) {
			enrollments = append(enrollments, *e)
		}
	}
	return enrollments
}

func (repo *enrollmentRepository) CreateEnrollment(_ context.Context, e enrollment.Enrollment) (enrollment.Enrollment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	repo.db.enrollments = append(repo.db.enrollments, &e)
	return e, nil
}

func (repo *enrollmentRepository) DeleteEnrollmentByUserCourse(_ context.Context, userID, courseID string) (enrollment.Enrollment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// first match wins; duplicates need repeat calls
	for i, e := range repo.db.enrollments {
		if e.User == userID && e.Course == courseID {
			deleted := *e
			repo.db.enrollments = append(repo.db.enrollments[:i], repo.db.enrollments[i+1:]...)
			return deleted, nil
		}
	}
	return enrollment.Enrollment{}, enrollment.ErrNotFound
}

func (repo *enrollmentRepository) FindAllEnrollments(_ context.Context) ([]enrollment.Enrollment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(enrollment.Enrollment) bool { return true }), nil
}

func (repo *enrollmentRepository) FindEnrollmentsByUser(_ context.Context, userID string) ([]enrollment.Enrollment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(e enrollment.Enrollment) bool { return e.User == userID }), nil
}

func (repo *enrollmentRepository) FindEnrollmentsByCourse(_ context.Context, courseID string) ([]enrollment.Enrollment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(e enrollment.Enrollment) bool { return e.Course == courseID }), nil
}
