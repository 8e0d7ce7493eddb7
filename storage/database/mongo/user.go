package mongorepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/killua-y/kanbas-fullstack-app/core/user"
)

type userRepository struct {
	coll *mongo.Collection
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *mongo.Database) *userRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

// trapNoDocsErr maps mongo "no documents" err to user.ErrNotFound
func (repo userRepository) trapNoDocsErr(err error, msg string) error {
	if err == mongo.ErrNoDocuments {
		return user.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo userRepository) getOne(ctx context.Context, filter bson.M) (user.User, error) {
	var usr user.User
	err := repo.coll.FindOne(ctx, filter).Decode(&usr)
	if err != nil {
		return user.User{}, repo.trapNoDocsErr(err, "getting user")
	}
	return usr, nil
}

func (repo userRepository) CheckUsernameUniqueness(ctx context.Context, username, email string, excludedUsers ...user.User) error {
	excludedIDs := make([]string, 0, len(excludedUsers))
	for _, usr := range excludedUsers {
		excludedIDs = append(excludedIDs, usr.ID)
	}

	check := func(field, value string, dupErr error) error {
		if value == "" {
			return nil
		}
		filter := bson.M{field: value}
		if len(excludedIDs) > 0 {
			filter["_id"] = bson.M{"$nin": excludedIDs}
		}
		n, err := repo.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return errors.Wrap(err, "checking user uniqueness")
		}
		if n > 0 {
			return dupErr
		}
		return nil
	}

	if err := check("username", username, user.ErrUsernameExists); err != nil {
		return err
	}
	return check("email", email, user.ErrEmailExists)
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, usr); err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	cur, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	users := make([]user.User, 0)
	if err = cur.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}

func (repo userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	return repo.getOne(ctx, bson.M{"_id": id})
}

func (repo userRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	return repo.getOne(ctx, bson.M{"username": username})
}

func (repo userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return repo.getOne(ctx, bson.M{"email": email})
}

func (repo userRepository) GetUserByUsernameOrEmail(ctx context.Context, username string) (user.User, error) {
	return repo.getOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": username},
	}})
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User, isActive *bool) (user.User, error) {
	// only save set fields
	set := bson.M{}
	if usr.Name != "" {
		set["name"] = usr.Name
	}
	if usr.Username != "" {
		set["username"] = usr.Username
	}
	if usr.Email != "" {
		set["email"] = usr.Email
	}
	if usr.Roles != nil {
		set["roles"] = usr.Roles
	}
	if usr.PasswordHash != nil {
		set["password_hash"] = usr.PasswordHash
	}
	if isActive != nil {
		set["is_active"] = *isActive
	}
	if !usr.UpdatedAt.IsZero() {
		set["updated_at"] = usr.UpdatedAt
	}
	if !usr.LastLogin.IsZero() {
		set["last_login"] = usr.LastLogin
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated user.User
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": usr.ID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return user.User{}, repo.trapNoDocsErr(err, "updating user")
	}
	return updated, nil
}

func (repo userRepository) UpdateOrCreateUser(ctx context.Context, usr user.User) (user.User, error) {
	if usr.ID == "" {
		return repo.CreateUser(ctx, usr)
	}
	usr.UpdatedAt = time.Now().UTC()
	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)

	var updated user.User
	err := repo.coll.FindOneAndReplace(ctx, bson.M{"_id": usr.ID}, usr, opts).Decode(&updated)
	if err != nil {
		return user.User{}, errors.Wrap(err, "upserting user")
	}
	return updated, nil
}

func (repo userRepository) DeleteUsersByID(ctx context.Context, ids ...string) error {
	_, err := repo.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return errors.Wrap(err, "deleting users")
}
