package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core/reply"
)

type replyRepository struct {
	coll *mongo.Collection
}

var _ reply.Repository = (*replyRepository)(nil) // interface compliance check

func NewReplyRepository(db *mongo.Database) *replyRepository {
	return &replyRepository{coll: db.Collection(repliesCollection)}
}

func (repo replyRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return reply.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo replyRepository) find(ctx context.Context, filter bson.M) ([]reply.Reply, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying replies")
	}
	replies := make([]reply.Reply, 0)
	if err = cur.All(ctx, &replies); err != nil {
		return nil, errors.Wrap(err, "decoding replies")
	}
	return replies, nil
}

func (repo replyRepository) CreateReply(ctx context.Context, r reply.Reply) (reply.Reply, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, r); err != nil {
		return reply.Reply{}, errors.Wrap(err, "inserting reply")
	}
	return r, nil
}

func (repo replyRepository) GetReply(ctx context.Context, id string) (reply.Reply, error) {
	var r reply.Reply
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err != nil {
		return reply.Reply{}, repo.trapNoDocsErr(err, "getting reply")
	}
	return r, nil
}

func (repo replyRepository) FindRepliesByDiscussion(ctx context.Context, discussionID string) ([]reply.Reply, error) {
	return repo.find(ctx, bson.M{"discussion": discussionID})
}

func (repo replyRepository) FindRepliesByParent(ctx context.Context, parentReplyID string) ([]reply.Reply, error) {
	return repo.find(ctx, bson.M{"parentReply": parentReplyID})
}

func (repo replyRepository) UpdateReply(ctx context.Context, id string, ur reply.UpdateReply) (reply.Reply, error) {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"text":     ur.Text,
		"isEdited": true,
		"editDate": now,
		"editBy":   ur.EditBy,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var r reply.Reply
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&r)
	if err != nil {
		return reply.Reply{}, repo.trapNoDocsErr(err, "updating reply")
	}
	return r, nil
}

func (repo replyRepository) DeleteReply(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting reply")
	}
	if res.DeletedCount == 0 {
		return reply.ErrNotFound
	}
	return nil
}
