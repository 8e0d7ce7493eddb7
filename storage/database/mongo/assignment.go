package mongorepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core/assignment"
)

type assignmentRepository struct {
	coll *mongo.Collection
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *mongo.Database) *assignmentRepository {
	return &assignmentRepository{coll: db.Collection(assignmentsCollection)}
}

func (repo assignmentRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return assignment.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo assignmentRepository) CreateAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, a); err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	return a, nil
}

func (repo assignmentRepository) GetAssignment(ctx context.Context, id string) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		return assignment.Assignment{}, repo.trapNoDocsErr(err, "getting assignment")
	}
	return a, nil
}

func (repo assignmentRepository) FindAssignmentsByCourse(ctx context.Context, courseID string) ([]assignment.Assignment, error) {
	cur, err := repo.coll.Find(ctx, bson.M{"course": courseID})
	if err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	assignments := make([]assignment.Assignment, 0)
	if err = cur.All(ctx, &assignments); err != nil {
		return nil, errors.Wrap(err, "decoding assignments")
	}
	return assignments, nil
}

func (repo assignmentRepository) UpdateAssignment(ctx context.Context, id string, ua assignment.UpdateAssignment) (assignment.Assignment, error) {
	// only save set fields
	set := bson.M{}
	if ua.Title != "" {
		set["title"] = ua.Title
	}
	if ua.Description != "" {
		set["description"] = ua.Description
	}
	if ua.Points != 0 {
		set["points"] = ua.Points
	}
	if ua.AvailableFrom != "" {
		set["availableFrom"] = ua.AvailableFrom
	}
	if ua.DueDate != "" {
		set["dueDate"] = ua.DueDate
	}
	if len(set) == 0 {
		return repo.GetAssignment(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a assignment.Assignment
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&a)
	if err != nil {
		return assignment.Assignment{}, repo.trapNoDocsErr(err, "updating assignment")
	}
	return a, nil
}

func (repo assignmentRepository) DeleteAssignment(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	if res.DeletedCount == 0 {
		return assignment.ErrNotFound
	}
	return nil
}
