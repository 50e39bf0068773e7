package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ComplaintTypeComplaint       = "complaint"
	ComplaintTypePolicyViolation = "policy_violation"
	ComplaintTypeReviewFlag      = "review_flag"
)

const (
	ComplaintOpen          = "open"
	ComplaintInvestigating = "investigating"
	ComplaintResolved      = "resolved"
	ComplaintRejected      = "rejected"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

func ValidComplaintType(s string) bool {
	return s == ComplaintTypeComplaint || s == ComplaintTypePolicyViolation || s == ComplaintTypeReviewFlag
}

func ValidComplaintStatus(s string) bool {
	return s == ComplaintOpen || s == ComplaintInvestigating || s == ComplaintResolved || s == ComplaintRejected
}

func ValidSeverity(s string) bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh || s == SeverityCritical
}

type Complaint struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	Complaint_id     string              `bson:"complaint_id" json:"complaint_id"`
	Reporter_user_id *primitive.ObjectID `bson:"reporter_user_id,omitempty" json:"reporter_user_id,omitempty"`
	Kitchen_id       *primitive.ObjectID `bson:"kitchen_id,omitempty" json:"kitchen_id,omitempty"`
	Order_id         *primitive.ObjectID `bson:"order_id,omitempty" json:"order_id,omitempty"`
	Type             string              `bson:"type" json:"type"`
	Category         string              `bson:"category" json:"category"`
	Message          *string             `bson:"message" json:"message" validate:"required"`
	Status           string              `bson:"status" json:"status"`
	Severity         string              `bson:"severity" json:"severity"`
	Admin_notes      string              `bson:"admin_notes" json:"admin_notes"`
	Labels           []string            `bson:"labels" json:"labels"`
	Created_at       time.Time           `bson:"created_at" json:"created_at"`
	Updated_at       time.Time           `bson:"updated_at" json:"updated_at"`
}
