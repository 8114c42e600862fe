package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/assignflow/assignment-api/internal/constants"
	"github.com/assignflow/assignment-api/internal/models"
)

// MongoUserRepository is a mongo-driver implementation of UserRepository
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a UserRepository backed by the users collection
func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{collection: db.Collection(constants.UsersCollection)}
}

// Insert stores a new user and fills in its assigned ID
func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByUsername finds a user by username
func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByUsernameAndRole finds a user by username restricted to a role
func (r *MongoUserRepository) FindByUsernameAndRole(ctx context.Context, username, role string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username, "role": role})
}

// FindByRole lists all users with the given role
func (r *MongoUserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
