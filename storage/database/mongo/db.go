package mongorepos

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core"
)

// collection names
const (
	usersCollection       = "users"
	coursesCollection     = "courses"
	modulesCollection     = "modules"
	assignmentsCollection = "assignments"
	enrollmentsCollection = "enrollments"
	postsCollection       = "posts"
	answersCollection     = "answers"
	discussionsCollection = "discussions"
	repliesCollection     = "replies"
	foldersCollection     = "folders"
)

func Open(conf *core.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Database.URI))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongodb")
	}
	if err = ping(ctx, client); err != nil {
		return nil, err
	}
	return client.Database(conf.Database.Name), nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, client *mongo.Client) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = client.Ping(ctx, nil)
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// EnsureIndexes creates the indexes the repositories rely on. Safe to call
// on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// one student answer and one instructor answer per post
	_, err := db.Collection(answersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "post", Value: 1}, {Key: "isInstructorAnswer", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "creating answers index")
	}

	_, err = db.Collection(postsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "course", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "folders", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "creating posts indexes")
	}

	_, err = db.Collection(foldersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "course", Value: 1}, {Key: "name", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "creating folders index")
	}

	_, err = db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	})
	return errors.Wrap(err, "creating users indexes")
}
