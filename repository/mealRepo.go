package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/services"
)

// MealRepo implements services.MealStore on the meal collection.
type MealRepo struct {
	col *mongo.Collection
}

func NewMealRepo(col *mongo.Collection) *MealRepo {
	return &MealRepo{col: col}
}

// Reserve locates the offering for (kitchen, day, mealType) that is available
// and has at least qty remaining, and increments sold_qty in the same
// conditional update. The remaining-quantity check runs at write time, so
// concurrent reservations cannot jointly oversell.
func (r *MealRepo) Reserve(ctx context.Context, kitchenID primitive.ObjectID, day time.Time, mealType string, qty int) (*models.Meal, error) {
	filter := bson.M{
		"kitchen_id":   kitchenID,
		"date":         day,
		"meal_type":    mealType,
		"is_available": true,
		"$expr": bson.M{
			"$gte": bson.A{
				bson.M{"$subtract": bson.A{"$total_qty", "$sold_qty"}},
				qty,
			},
		},
	}
	update := bson.M{
		"$inc": bson.M{"sold_qty": qty},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var meal models.Meal
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrMealUnavailable
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Release hands qty back to the offering, clamped at zero so a replayed
// release cannot drive sold_qty negative.
func (r *MealRepo) Release(ctx context.Context, mealID primitive.ObjectID, qty int) error {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"sold_qty": bson.M{
				"$max": bson.A{0, bson.M{"$subtract": bson.A{"$sold_qty", qty}}},
			},
			"updated_at": "$$NOW",
		}}},
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": mealID}, update)
	return err
}
