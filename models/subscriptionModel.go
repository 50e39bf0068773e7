package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PlanWeekly  = "weekly"
	PlanMonthly = "monthly"
)

const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// SubscriptionPlan is unique per (plan_type, meals_per_day).
type SubscriptionPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Plan_id       string             `bson:"plan_id" json:"plan_id"`
	Plan_type     string             `bson:"plan_type" json:"plan_type" validate:"required"`
	Meals_per_day int                `bson:"meals_per_day" json:"meals_per_day" validate:"gte=1,lte=3"`
	Price         float64            `bson:"price" json:"price" validate:"gte=0"`
	Is_active     bool               `bson:"is_active" json:"is_active"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}

type UserSubscription struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Subscription_id string             `bson:"subscription_id" json:"subscription_id"`
	User_id         primitive.ObjectID `bson:"user_id" json:"user_id"`
	Plan_id         primitive.ObjectID `bson:"plan_id" json:"plan_id"`
	Start_date      time.Time          `bson:"start_date" json:"start_date"`
	End_date        time.Time          `bson:"end_date" json:"end_date"`
	Status          string             `bson:"status" json:"status"`
	Created_at      time.Time          `bson:"created_at" json:"created_at"`
	Updated_at      time.Time          `bson:"updated_at" json:"updated_at"`
}
