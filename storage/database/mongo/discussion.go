package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core/discussion"
)

type discussionRepository struct {
	coll *mongo.Collection
}

var _ discussion.Repository = (*discussionRepository)(nil) // interface compliance check

func NewDiscussionRepository(db *mongo.Database) *discussionRepository {
	return &discussionRepository{coll: db.Collection(discussionsCollection)}
}

func (repo discussionRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return discussion.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo discussionRepository) find(ctx context.Context, filter bson.M, dateOrder int) ([]discussion.Discussion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: dateOrder}})
	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying discussions")
	}
	discussions := make([]discussion.Discussion, 0)
	if err = cur.All(ctx, &discussions); err != nil {
		return nil, errors.Wrap(err, "decoding discussions")
	}
	return discussions, nil
}

func (repo discussionRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (discussion.Discussion, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d discussion.Discussion
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&d)
	if err != nil {
		return discussion.Discussion{}, repo.trapNoDocsErr(err, "updating discussion")
	}
	return d, nil
}

func (repo discussionRepository) CreateDiscussion(ctx context.Context, d discussion.Discussion) (discussion.Discussion, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, d); err != nil {
		return discussion.Discussion{}, errors.Wrap(err, "inserting discussion")
	}
	return d, nil
}

func (repo discussionRepository) GetDiscussion(ctx context.Context, id string) (discussion.Discussion, error) {
	var d discussion.Discussion
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		return discussion.Discussion{}, repo.trapNoDocsErr(err, "getting discussion")
	}
	return d, nil
}

func (repo discussionRepository) FindDiscussionsByPost(ctx context.Context, postID string) ([]discussion.Discussion, error) {
	filter := bson.M{"post": postID, "parentDiscussion": bson.M{"$in": bson.A{nil, ""}}}
	return repo.find(ctx, filter, -1)
}

func (repo discussionRepository) FindNestedDiscussions(ctx context.Context, parentID string) ([]discussion.Discussion, error) {
	return repo.find(ctx, bson.M{"parentDiscussion": parentID}, 1)
}

func (repo discussionRepository) UpdateDiscussion(ctx context.Context, id string, ud discussion.UpdateDiscussion) (discussion.Discussion, error) {
	now := time.Now().UTC()
	return repo.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"text":     ud.Text,
		"isEdited": true,
		"editDate": now,
		"editBy":   ud.EditBy,
	}})
}

func (repo discussionRepository) SetDiscussionResolved(ctx context.Context, id string, resolved bool) (discussion.Discussion, error) {
	return repo.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"isResolved": resolved}})
}

func (repo discussionRepository) DeleteDiscussion(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting discussion")
	}
	if res.DeletedCount == 0 {
		return discussion.ErrNotFound
	}
	return nil
}
