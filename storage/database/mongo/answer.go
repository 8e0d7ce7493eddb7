package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core/answer"
)

type answerRepository struct {
	coll *mongo.Collection
}

var _ answer.Repository = (*answerRepository)(nil) // interface compliance check

func NewAnswerRepository(db *mongo.Database) *answerRepository {
	return &answerRepository{coll: db.Collection(answersCollection)}
}

func (repo answerRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return answer.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo answerRepository) CreateAnswer(ctx context.Context, ans answer.Answer) (answer.Answer, error) {
	if ans.ID == "" {
		ans.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, ans); err != nil {
		// the unique (post, isInstructorAnswer) index backstops the service check
		if mongo.IsDuplicateKeyError(err) {
			return answer.Answer{}, answer.ErrAnswerExists
		}
		return answer.Answer{}, errors.Wrap(err, "inserting answer")
	}
	return ans, nil
}

func (repo answerRepository) GetAnswer(ctx context.Context, id string) (answer.Answer, error) {
	var ans answer.Answer
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ans)
	if err != nil {
		return answer.Answer{}, repo.trapNoDocsErr(err, "getting answer")
	}
	return ans, nil
}

func (repo answerRepository) FindAnswersByPost(ctx context.Context, postID string) ([]answer.Answer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := repo.coll.Find(ctx, bson.M{"post": postID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying answers")
	}
	answers := make([]answer.Answer, 0)
	if err = cur.All(ctx, &answers); err != nil {
		return nil, errors.Wrap(err, "decoding answers")
	}
	return answers, nil
}

func (repo answerRepository) UpdateAnswer(ctx context.Context, id string, ua answer.UpdateAnswer) (answer.Answer, error) {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"text":     ua.Text,
		"isEdited": true,
		"editDate": now,
		"editBy":   ua.EditBy,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ans answer.Answer
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&ans)
	if err != nil {
		return answer.Answer{}, repo.trapNoDocsErr(err, "updating answer")
	}
	return ans, nil
}

func (repo answerRepository) DeleteAnswer(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting answer")
	}
	if res.DeletedCount == 0 {
		return answer.ErrNotFound
	}
	return nil
}
