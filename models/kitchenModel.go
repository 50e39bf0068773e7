package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

const (
	VideoCallNotRequested = "not_requested"
	VideoCallRequested    = "requested"
	VideoCallScheduled    = "scheduled"
	VideoCallCompleted    = "completed"
)

const (
	TrialOrderNotRequested = "not_requested"
	TrialOrderRequested    = "requested"
	TrialOrderPassed       = "passed"
	TrialOrderFailed       = "failed"
)

// FSSAI license details submitted by the kitchen and validated by an admin.
type Fssai struct {
	License_number    string     `bson:"license_number" json:"license_number"`
	Business_name     string     `bson:"business_name" json:"business_name"`
	Expiry_date       *time.Time `bson:"expiry_date,omitempty" json:"expiry_date,omitempty"`
	Validation_status string     `bson:"validation_status" json:"validation_status"`
	Rejection_reason  string     `bson:"rejection_reason" json:"rejection_reason"`
	Validation_notes  string     `bson:"validation_notes" json:"validation_notes"`
}

type VideoCall struct {
	Status              string     `bson:"status" json:"status"`
	Preferred_slot_text string     `bson:"preferred_slot_text" json:"preferred_slot_text"`
	Scheduled_at        *time.Time `bson:"scheduled_at,omitempty" json:"scheduled_at,omitempty"`
}

type PremiumVerification struct {
	Trial_order_status string `bson:"trial_order_status" json:"trial_order_status"`
	Notes              string `bson:"notes" json:"notes"`
}

type Kitchen struct {
	ID                           primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	Kitchen_id                   string              `bson:"kitchen_id" json:"kitchen_id"`
	Owner_user_id                primitive.ObjectID  `bson:"owner_user_id" json:"owner_user_id"`
	Name                         *string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description                  string              `bson:"description" json:"description"`
	Verified                     bool                `bson:"verified" json:"verified"`
	Verification_status          string              `bson:"verification_status" json:"verification_status"`
	Verification_rejected_reason string              `bson:"verification_rejected_reason" json:"verification_rejected_reason"`
	Verified_badge               bool                `bson:"verified_badge" json:"verified_badge"`
	Verified_at                  *time.Time          `bson:"verified_at,omitempty" json:"verified_at,omitempty"`
	Address_text                 string              `bson:"address_text" json:"address_text"`
	Pincode                      string              `bson:"pincode" json:"pincode"`
	Pincode_verification_status  string              `bson:"pincode_verification_status" json:"pincode_verification_status"`
	Daily_order_limit            int                 `bson:"daily_order_limit" json:"daily_order_limit"`
	Is_active                    bool                `bson:"is_active" json:"is_active"`
	Fssai                        Fssai               `bson:"fssai" json:"fssai"`
	Video_call                   VideoCall           `bson:"video_call" json:"video_call"`
	Premium_verification         PremiumVerification `bson:"premium_verification" json:"premium_verification"`
	Created_at                   time.Time           `bson:"created_at" json:"created_at"`
	Updated_at                   time.Time           `bson:"updated_at" json:"updated_at"`
}
