package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeSnacks    = "snacks"
	MealTypeDinner    = "dinner"
)

// ValidMealType reports whether s is one of the four serving slots.
func ValidMealType(s string) bool {
	switch s {
	case MealTypeBreakfast, MealTypeLunch, MealTypeSnacks, MealTypeDinner:
		return true
	}
	return false
}

// Meal is one sellable slot: a kitchen's offering for one date and meal type.
// At most one Meal exists per (kitchen_id, date, meal_type); the unique index
// backing that lives in the collection.
type Meal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Meal_id      string             `bson:"meal_id" json:"meal_id"`
	Kitchen_id   primitive.ObjectID `bson:"kitchen_id" json:"kitchen_id"`
	Date         time.Time          `bson:"date" json:"date"`
	Meal_type    string             `bson:"meal_type" json:"meal_type" validate:"required"`
	Title        *string            `bson:"title" json:"title" validate:"required,min=2,max=120"`
	Description  string             `bson:"description" json:"description"`
	Image_url    string             `bson:"image_url" json:"image_url"`
	Price        *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Total_qty    *int               `bson:"total_qty" json:"total_qty" validate:"required,gte=0"`
	Sold_qty     int                `bson:"sold_qty" json:"sold_qty"`
	Is_available bool               `bson:"is_available" json:"is_available"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
	Updated_at   time.Time          `bson:"updated_at" json:"updated_at"`
}

// RemainingQty is derived, never stored.
func (m *Meal) RemainingQty() int {
	total := 0
	if m.Total_qty != nil {
		total = *m.Total_qty
	}
	if rem := total - m.Sold_qty; rem > 0 {
		return rem
	}
	return 0
}
