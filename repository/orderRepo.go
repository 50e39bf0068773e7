package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/services"
)

// OrderRepo implements services.OrderStore on the order collection.
type OrderRepo struct {
	col *mongo.Collection
}

func NewOrderRepo(col *mongo.Collection) *OrderRepo {
	return &OrderRepo{col: col}
}

// CountActiveForDay counts the kitchen's non-cancelled orders for the day.
// This feeds the daily capacity gate.
func (r *OrderRepo) CountActiveForDay(ctx context.Context, kitchenID primitive.ObjectID, day time.Time) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{
		"kitchen_id": kitchenID,
		"date":       day,
		"status":     bson.M{"$ne": models.OrderCancelled},
	})
}

func (r *OrderRepo) Insert(ctx context.Context, order *models.Order) error {
	_, err := r.col.InsertOne(ctx, order)
	return err
}

func (r *OrderRepo) FindForUser(ctx context.Context, orderID, userID primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"_id": orderID, "user_id": userID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) FindForKitchen(ctx context.Context, orderID, kitchenID primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"_id": orderID, "kitchen_id": kitchenID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, services.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus flips status from->to only when the order is still in `from`.
// The condition and the write are one operation, so two racing transitions
// cannot both succeed.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, from, to string) (bool, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": orderID, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}

func (r *OrderRepo) SetPaymentMethod(ctx context.Context, orderID primitive.ObjectID, method string) (bool, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": orderID, "status": models.OrderPrebooked},
		bson.M{"$set": bson.M{"payment_method": method, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}
