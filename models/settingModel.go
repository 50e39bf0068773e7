package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is a platform-level key/value pair maintained by admins.
type Setting struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	Key                string              `bson:"key" json:"key"`
	Value              interface{}         `bson:"value" json:"value"`
	Updated_by_user_id *primitive.ObjectID `bson:"updated_by_user_id,omitempty" json:"updated_by_user_id,omitempty"`
	Created_at         time.Time           `bson:"created_at" json:"created_at"`
	Updated_at         time.Time           `bson:"updated_at" json:"updated_at"`
}
