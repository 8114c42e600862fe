package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the users collection. Password holds the bcrypt
// hash, never the plain text. IsActive defaults to true; documents
// written without the field read back as active.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
	IsActive *bool              `bson:"is_active,omitempty" json:"is_active"`
	Role     string             `bson:"role" json:"role"`
}

// Active reports whether the account may call protected endpoints.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
