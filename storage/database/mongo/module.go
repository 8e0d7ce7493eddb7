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

type moduleRepository struct {
	coll *mongo.Collection
}

var _ course.ModuleRepository = (*moduleRepository)(nil) // interface compliance check

func NewModuleRepository(db *mongo.Database) *moduleRepository {
	return &moduleRepository{coll: db.Collection(modulesCollection)}
}

func (repo moduleRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return course.ErrModuleNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo moduleRepository) CreateModule(ctx context.Context, m course.Module) (course.Module, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, m); err != nil {
		return course.Module{}, errors.Wrap(err, "inserting module")
	}
	return m, nil
}

func (repo moduleRepository) GetModule(ctx context.Context, id string) (course.Module, error) {
	var m course.Module
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		return course.Module{}, repo.trapNoDocsErr(err, "getting module")
	}
	return m, nil
}

func (repo moduleRepository) FindModulesByCourse(ctx context.Context, courseID string) ([]course.Module, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := repo.coll.Find(ctx, bson.M{"course": courseID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying modules")
	}
	modules := make([]course.Module, 0)
	if err = cur.All(ctx, &modules); err != nil {
		return nil, errors.Wrap(err, "decoding modules")
	}
	return modules, nil
}

func (repo moduleRepository) UpdateModule(ctx context.Context, id string, um course.UpdateModule) (course.Module, error) {
	// only save set fields
	set := bson.M{}
	if um.Name != "" {
		set["name"] = um.Name
	}
	if um.Description != "" {
		set["description"] = um.Description
	}
	if um.Lessons != nil {
		set["lessons"] = um.Lessons
	}
	if len(set) == 0 {
		return repo.GetModule(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m course.Module
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		return course.Module{}, repo.trapNoDocsErr(err, "updating module")
	}
	return m, nil
}

func (repo moduleRepository) DeleteModule(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting module")
	}
	if res.DeletedCount == 0 {
		return course.ErrModuleNotFound
	}
	return nil
}
