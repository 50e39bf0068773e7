package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

// MealStore is the inventory ledger. Reserve must be a single conditional
// update that re-checks remaining quantity at write time; Release must never
// drive sold quantity below zero.
type MealStore interface {
	Reserve(ctx context.Context, kitchenID primitive.ObjectID, day time.Time, mealType string, qty int) (*models.Meal, error)
	Release(ctx context.Context, mealID primitive.ObjectID, qty int) error
}

type OrderStore interface {
	CountActiveForDay(ctx context.Context, kitchenID primitive.ObjectID, day time.Time) (int64, error)
	Insert(ctx context.Context, order *models.Order) error
	FindForUser(ctx context.Context, orderID, userID primitive.ObjectID) (*models.Order, error)
	FindForKitchen(ctx context.Context, orderID, kitchenID primitive.ObjectID) (*models.Order, error)
	// UpdateStatus flips status from->to in one conditional write and reports
	// whether a document matched.
	UpdateStatus(ctx context.Context, orderID primitive.ObjectID, from, to string) (bool, error)
	// SetPaymentMethod sets the payment method while the order is still
	// prebooked and reports whether a document matched.
	SetPaymentMethod(ctx context.Context, orderID primitive.ObjectID, method string) (bool, error)
}

type KitchenStore interface {
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.Kitchen, error)
}
