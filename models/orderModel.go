package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderPrebooked = "prebooked"
	OrderAccepted  = "accepted"
	OrderRejected  = "rejected"
	OrderCancelled = "cancelled"
	OrderFulfilled = "fulfilled"
)

const (
	PaymentUPI  = "upi"
	PaymentCard = "card"
)

// ValidPaymentMethod reports whether s is an accepted payment method.
func ValidPaymentMethod(s string) bool {
	return s == PaymentUPI || s == PaymentCard
}

// Order is a customer's reservation against a Meal. Qty is fixed at creation;
// only status and payment method change afterwards.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Order_id       string             `bson:"order_id" json:"order_id"`
	User_id        primitive.ObjectID `bson:"user_id" json:"user_id"`
	Kitchen_id     primitive.ObjectID `bson:"kitchen_id" json:"kitchen_id"`
	Meal_id        primitive.ObjectID `bson:"meal_id" json:"meal_id"`
	Date           time.Time          `bson:"date" json:"date"`
	Meal_type      string             `bson:"meal_type" json:"meal_type"`
	Qty            int                `bson:"qty" json:"qty"`
	Status         string             `bson:"status" json:"status"`
	Payment_method string             `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	Created_at     time.Time          `bson:"created_at" json:"created_at"`
	Updated_at     time.Time          `bson:"updated_at" json:"updated_at"`
}
