package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is a document in the assignments collection. OwnerID is the
// store id of the user who uploaded it; UserID is free text supplied by
// the caller and is not validated against the users collection. Admin is
// the target admin's username, denormalized alongside AdminID.
type Assignment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   primitive.ObjectID `bson:"user_id" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	Task      string             `bson:"task" json:"task"`
	AdminID   primitive.ObjectID `bson:"admin_id" json:"-"`
	Admin     string             `bson:"admin" json:"admin"`
	Status    string             `bson:"status" json:"status"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
