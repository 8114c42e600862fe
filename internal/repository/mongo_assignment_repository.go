package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/assignflow/assignment-api/internal/constants"
	"github.com/assignflow/assignment-api/internal/models"
)

// MongoAssignmentRepository is a mongo-driver implementation of AssignmentRepository
type MongoAssignmentRepository struct {
	collection *mongo.Collection
}

// NewAssignmentRepository creates an AssignmentRepository backed by the assignments collection
func NewAssignmentRepository(db *mongo.Database) AssignmentRepository {
	return &MongoAssignmentRepository{collection: db.Collection(constants.AssignmentsCollection)}
}

// Insert stores a new assignment and fills in its assigned ID
func (r *MongoAssignmentRepository) Insert(ctx context.Context, assignment *models.Assignment) error {
	result, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		assignment.ID = oid
	}
	return nil
}

// FindByAdminName lists assignments addressed to the given admin username
func (r *MongoAssignmentRepository) FindByAdminName(ctx context.Context, admin string) ([]models.Assignment, error) {
	return r.find(ctx, bson.M{"admin": admin})
}

// FindByAdminID lists assignments addressed to the given admin's store id
func (r *MongoAssignmentRepository) FindByAdminID(ctx context.Context, adminID primitive.ObjectID) ([]models.Assignment, error) {
	return r.find(ctx, bson.M{"admin_id": adminID})
}

// UpdateStatus overwrites the status field of one assignment. The write
// is unconditional: there is no guard on the previous status value.
func (r *MongoAssignmentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAssignmentRepository) find(ctx context.Context, filter bson.M) ([]models.Assignment, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}
