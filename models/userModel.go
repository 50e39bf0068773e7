package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleKitchen  = "kitchen"
	RoleAdmin    = "admin"
)

type User struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"-"`
	User_id          string               `bson:"user_id" json:"user_id"`
	Name             *string              `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email            *string              `bson:"email" json:"email" validate:"required,email"`
	Password         *string              `bson:"password,omitempty" json:"-"`
	Role             string               `bson:"role" json:"role"`
	Is_activated     bool                 `bson:"is_activated" json:"is_activated"`
	Phone            *string              `bson:"phone,omitempty" json:"phone,omitempty"`
	FavoriteKitchens []primitive.ObjectID `bson:"favorite_kitchens" json:"favorite_kitchens"`
	Created_at       time.Time            `bson:"created_at" json:"created_at"`
	Updated_at       time.Time            `bson:"updated_at" json:"updated_at"`
}
