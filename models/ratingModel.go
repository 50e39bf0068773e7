package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is upserted per (user_id, kitchen_id); a customer keeps one review
// per kitchen.
type Rating struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Rating_id  string             `bson:"rating_id" json:"rating_id"`
	User_id    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Kitchen_id primitive.ObjectID `bson:"kitchen_id" json:"kitchen_id"`
	Rating     *int               `bson:"rating" json:"rating" validate:"required,gte=1,lte=5"`
	Feedback   string             `bson:"feedback" json:"feedback"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}
