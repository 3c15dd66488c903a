package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"` // bcrypt hash
	DisplayName string             `bson:"displayName" json:"displayName"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Session is the authenticated identity handed to view models and
// handlers. A nil *Session means unauthenticated. It is created by the
// auth layer on login and read-only everywhere else.
type Session struct {
	UserID      primitive.ObjectID
	DisplayName string
}
