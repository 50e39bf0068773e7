package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/services"
)

// KitchenRepo implements services.KitchenStore on the kitchen collection.
type KitchenRepo struct {
	col *mongo.Collection
}

func NewKitchenRepo(col *mongo.Collection) *KitchenRepo {
	return &KitchenRepo{col: col}
}

// FindActiveByID returns the kitchen only while it is active; suspended
// kitchens are treated as absent for booking purposes.
func (r *KitchenRepo) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.Kitchen, error) {
	var kitchen models.Kitchen
	err := r.col.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&kitchen)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrKitchenNotFound
	}
	if err != nil {
		return nil, err
	}
	return &kitchen, nil
}
