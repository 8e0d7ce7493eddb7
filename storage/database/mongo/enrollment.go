package mongorepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
)

type enrollmentRepository struct {
	coll *mongo.Collection
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *mongo.Database) *enrollmentRepository {
	return &enrollmentRepository{coll: db.Collection(enrollmentsCollection)}
}

func (repo enrollmentRepository) find(ctx context.Context, filter bson.M) ([]enrollment.Enrollment, error) {
	cur, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "querying enrollments")
	}
	enrollments := make([]enrollment.Enrollment, 0)
	if err = cur.All(ctx, &enrollments); err != nil {
		return nil, errors.Wrap(err, "decoding enrollments")
	}
	return enrollments, nil
}

func (repo enrollmentRepository) CreateEnrollment(ctx context.Context, e enrollment.Enrollment) (enrollment.Enrollment, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, e); err != nil {
		return enrollment.Enrollment{}, errors.Wrap(err, "inserting enrollment")
	}
	return e, nil
}

func (repo enrollmentRepository) DeleteEnrollmentByUserCourse(ctx context.Context, userID, courseID string) (enrollment.Enrollment, error) {
	// removes one matching enrollment at a time; duplicates need repeat calls
	var e enrollment.Enrollment
	err := repo.coll.FindOneAndDelete(ctx, bson.M{"user": userID, "course": courseID}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return enrollment.Enrollment{}, enrollment.ErrNotFound
		}
		return enrollment.Enrollment{}, errors.Wrap(err, "deleting enrollment")
	}
	return e, nil
}

func (repo enrollmentRepository) FindAllEnrollments(ctx context.Context) ([]enrollment.Enrollment, error) {
	return repo.find(ctx, bson.M{})
}

func (repo enrollmentRepository) FindEnrollmentsByUser(ctx context.Context, userID string) ([]enrollment.Enrollment, error) {
	return repo.find(ctx, bson.M{"user": userID})
}

func (repo enrollmentRepository) FindEnrollmentsByCourse(ctx context.Context, courseID string) ([]enrollment.Enrollment, error) {
	return repo.find(ctx, bson.M{"course": courseID})
}
