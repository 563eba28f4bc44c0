package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuideRate is the daily rate for a licensed guide speaking a given language.
// One active rate is expected per language; when several exist the oldest
// active row wins (see PricingRuleRepository ordering).
type GuideRate struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ServiceCode string             `json:"service_code" bson:"service_code" validate:"required"`
	Language    string             `json:"language" bson:"language" validate:"required"`
	BaseRate    float64            `json:"base_rate" bson:"base_rate" validate:"required,min=0"`
	Currency    string             `json:"currency" bson:"currency" default:"EUR"`
	IsActive    bool               `json:"is_active" bson:"is_active" default:"true"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
