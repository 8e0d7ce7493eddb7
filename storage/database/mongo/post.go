package mongorepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core/post"
)

type postRepository struct {
	coll *mongo.Collection
}

var _ post.Repository = (*postRepository)(nil) // interface compliance check

func NewPostRepository(db *mongo.Database) *postRepository {
	return &postRepository{coll: db.Collection(postsCollection)}
}

// trapNoDocsErr maps mongo "no documents" err to post.ErrNotFound
func (repo postRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return post.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo postRepository) find(ctx context.Context, filter bson.M) ([]post.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying posts")
	}
	posts := make([]post.Post, 0)
	if err = cur.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decoding posts")
	}
	return posts, nil
}

func (repo postRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (post.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p post.Post
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&p)
	if err != nil {
		return post.Post{}, repo.trapNoDocsErr(err, "updating post")
	}
	return p, nil
}

func (repo postRepository) CreatePost(ctx context.Context, p post.Post) (post.Post, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, p); err != nil {
		return post.Post{}, errors.Wrap(err, "inserting post")
	}
	return p, nil
}

func (repo postRepository) GetPost(ctx context.Context, id string) (post.Post, error) {
	var p post.Post
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return post.Post{}, repo.trapNoDocsErr(err, "getting post")
	}
	return p, nil
}

func (repo postRepository) FindPostsByCourse(ctx context.Context, courseID string) ([]post.Post, error) {
	return repo.find(ctx, bson.M{"course": courseID})
}

func (repo postRepository) FindPostsByFolder(ctx context.Context, folderID string) ([]post.Post, error) {
	return repo.find(ctx, bson.M{"folders": folderID})
}

func (repo postRepository) FindPostsByUser(ctx context.Context, userID string) ([]post.Post, error) {
	return repo.find(ctx, bson.M{"postBy": userID})
}

func (repo postRepository) FindPostsVisibleToUser(ctx context.Context, userID, courseID string) ([]post.Post, error) {
	return repo.find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"course": courseID, "postTo": post.ToCourse},
			bson.M{"individualRecipients": userID},
		},
	})
}

func (repo postRepository) UpdatePost(ctx context.Context, id string, up post.UpdatePost) (post.Post, error) {
	// only save set fields
	set := bson.M{}
	if up.PostType != "" {
		set["postType"] = up.PostType
	}
	if up.PostTo != "" {
		set["postTo"] = up.PostTo
	}
	if up.Title != "" {
		set["title"] = up.Title
	}
	if up.Text != "" {
		set["text"] = up.Text
	}
	if up.Folders != nil {
		set["folders"] = up.Folders
	}
	if up.IndividualRecipients != nil {
		set["individualRecipients"] = up.IndividualRecipients
	}
	if len(set) == 0 {
		return repo.GetPost(ctx, id)
	}
	return repo.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (repo postRepository) DeletePost(ctx context.Context, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting post")
	}
	if res.DeletedCount == 0 {
		return post.ErrNotFound
	}
	return nil
}

func (repo postRepository) AddViewer(ctx context.Context, id, userID string) (post.Post, error) {
	return repo.findOneAndUpdate(ctx, id, bson.M{"$addToSet": bson.M{"viewedBy": userID}})
}

func (repo postRepository) MarkPostRead(ctx context.Context, id string) (post.Post, error) {
	return repo.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"isRead": true}})
}

func (repo postRepository) SetResolved(ctx context.Context, id string, resolved bool) (post.Post, error) {
	return repo.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"isResolved": resolved}})
}

func (repo postRepository) SetPinned(ctx context.Context, id string, pinned bool) (post.Post, error) {
	return repo.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"isPinned": pinned}})
}
