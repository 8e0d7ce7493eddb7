package mongorepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core/folder"
)

type folderRepository struct {
	coll *mongo.Collection
}

var _ folder.Repository = (*folderRepository)(nil) // interface compliance check

func NewFolderRepository(db *mongo.Database) *folderRepository {
	return &folderRepository{coll: db.Collection(foldersCollection)}
}

func (repo folderRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return folder.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo folderRepository) find(ctx context.Context, filter bson.M) ([]folder.Folder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying folders")
	}
	folders := make([]folder.Folder, 0)
	if err = cur.All(ctx, &folders); err != nil {
		return nil, errors.Wrap(err, "decoding folders")
	}
	return folders, nil
}

func (repo folderRepository) CreateFolder(ctx context.Context, f folder.Folder) (folder.Folder, error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, f); err != nil {
		return folder.Folder{}, errors.Wrap(err, "inserting folder")
	}
	return f, nil
}

func (repo folderRepository) GetFolder(ctx context.Context, id string) (folder.Folder, error) {
	var f folder.Folder
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err != nil {
		return folder.Folder{}, repo.trapNoDocsErr(err, "getting folder")
	}
	return f, nil
}

func (repo folderRepository) GetFolderByName(ctx context.Context, courseID, name string) (folder.Folder, error) {
	var f folder.Folder
	err := repo.coll.FindOne(ctx, bson.M{"course": courseID, "name": name}).Decode(&f)
	if err != nil {
		return folder.Folder{}, repo.trapNoDocsErr(err, "getting folder by name")
	}
	return f, nil
}

func (repo folderRepository) FindAllFolders(ctx context.Context) ([]folder.Folder, error) {
	return repo.find(ctx, bson.M{})
}

func (repo folderRepository) FindFoldersByCourse(ctx context.Context, courseID string) ([]folder.Folder, error) {
	return repo.find(ctx, bson.M{"course": courseID})
}

func (repo folderRepository) FindFoldersByPost(ctx context.Context, postID string) ([]folder.Folder, error) {
	return repo.find(ctx, bson.M{"post": postID})
}

func (repo folderRepository) FindFoldersByAuthor(ctx context.Context, authorID string) ([]folder.Folder, error) {
	return repo.find(ctx, bson.M{"author": authorID})
}

func (repo folderRepository) UpdateFolder(ctx context.Context, id string, uf folder.UpdateFolder) (folder.Folder, error) {
	update := bson.M{"$set": bson.M{"name": uf.Name, "editBy": uf.EditBy}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var f folder.Folder
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&f)
	if err != nil {
		return folder.Folder{}, repo.trapNoDocsErr(err, "updating folder")
	}
	return f, nil
}

func (repo folderRepository) DeleteFolder(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting folder")
	}
	if res.DeletedCount == 0 {
		return folder.ErrNotFound
	}
	return nil
}
