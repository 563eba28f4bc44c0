package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransportRate is a priced vehicle offering for a city and service type.
// A rate is eligible for a party of size p iff CapacityMin <= p <= CapacityMax
// and the rate is active.
type TransportRate struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ServiceCode string             `json:"service_code" bson:"service_code" validate:"required"`
	City        string             `json:"city" bson:"city" validate:"required"`
	ServiceType string             `json:"service_type" bson:"service_type" validate:"required"`
	VehicleType string             `json:"vehicle_type" bson:"vehicle_type" validate:"required"`
	CapacityMin int                `json:"capacity_min" bson:"capacity_min" validate:"required,min=1"`
	CapacityMax int                `json:"capacity_max" bson:"capacity_max" validate:"required,gtefield=CapacityMin"`
	BaseRate    float64            `json:"base_rate" bson:"base_rate" validate:"required,min=0"`
	Currency    string             `json:"currency" bson:"currency" default:"EUR"`
	IsActive    bool               `json:"is_active" bson:"is_active" default:"true"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Fits reports whether the rate can legally carry a party of the given size.
func (r *TransportRate) Fits(travelers int) bool {
	return travelers >= r.CapacityMin && travelers <= r.CapacityMax
}
