package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AudienceAll       = "all"
	AudienceCustomers = "customers"
	AudienceKitchens  = "kitchens"
	AudienceAdmins    = "admins"
)

const (
	AnnouncementDraft     = "draft"
	AnnouncementScheduled = "scheduled"
	AnnouncementPublished = "published"
	AnnouncementArchived  = "archived"
)

func ValidAudience(s string) bool {
	return s == AudienceAll || s == AudienceCustomers || s == AudienceKitchens || s == AudienceAdmins
}

func ValidAnnouncementStatus(s string) bool {
	return s == AnnouncementDraft || s == AnnouncementScheduled || s == AnnouncementPublished || s == AnnouncementArchived
}

func ValidPriority(s string) bool {
	return s == "low" || s == "normal" || s == "high"
}

type Announcement struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	Announcement_id    string              `bson:"announcement_id" json:"announcement_id"`
	Title              *string             `bson:"title" json:"title" validate:"required"`
	Body               *string             `bson:"body" json:"body" validate:"required"`
	Audience           string              `bson:"audience" json:"audience"`
	Status             string              `bson:"status" json:"status"`
	Priority           string              `bson:"priority" json:"priority"`
	Publish_at         *time.Time          `bson:"publish_at,omitempty" json:"publish_at,omitempty"`
	Created_by_user_id *primitive.ObjectID `bson:"created_by_user_id,omitempty" json:"created_by_user_id,omitempty"`
	Created_at         time.Time           `bson:"created_at" json:"created_at"`
	Updated_at         time.Time           `bson:"updated_at" json:"updated_at"`
}
