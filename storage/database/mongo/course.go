package mongorepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core/course"
)

type courseRepository struct {
	coll *mongo.Collection
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *mongo.Database) *courseRepository {
	return &courseRepository{coll: db.Collection(coursesCollection)}
}

func (repo courseRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return course.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo courseRepository) CreateCourse(ctx context.Context, c course.Course) (course.Course, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, c); err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return c, nil
}

func (repo courseRepository) GetCourse(ctx context.Context, id string) (course.Course, error) {
	var c course.Course
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return course.Course{}, repo.trapNoDocsErr(err, "getting course")
	}
	return c, nil
}

func (repo courseRepository) FindAllCourses(ctx context.Context) ([]course.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]course.Course, 0)
	if err = cur.All(ctx, &courses); err != nil {
		return nil, errors.Wrap(err, "decoding courses")
	}
	return courses, nil
}

func (repo courseRepository) UpdateCourse(ctx context.Context, id string, uc course.UpdateCourse) (course.Course, error) {
	// only save set fields
	set := bson.M{}
	if uc.Name != "" {
		set["name"] = uc.Name
	}
	if uc.Number != "" {
		set["number"] = uc.Number
	}
	if uc.StartDate != "" {
		set["startDate"] = uc.StartDate
	}
	if uc.EndDate != "" {
		set["endDate"] = uc.EndDate
	}
	if uc.Department != "" {
		set["department"] = uc.Department
	}
	if uc.Credits != 0 {
		set["credits"] = uc.Credits
	}
	if uc.Description != "" {
		set["description"] = uc.Description
	}
	if len(set) == 0 {
		return repo.GetCourse(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c course.Course
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		return course.Course{}, repo.trapNoDocsErr(err, "updating course")
	}
	return c, nil
}

func (repo courseRepository) DeleteCourse(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}
	if res.DeletedCount == 0 {
		return course.ErrNotFound
	}
	return nil
}
