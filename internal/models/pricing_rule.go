package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TourType string

const (
	TourTypeDayTour TourType = "day_tour"
	TourTypePackage TourType = "package"
)

func (t TourType) IsValid() bool {
	return t == TourTypeDayTour || t == TourTypePackage
}

// RuleType is the closed set of pricing rule categories. Every category has a
// documented default value so a quote can always be produced when the rate
// tables are incomplete.
type RuleType string

const (
	RuleTipsPerPersonPerDay   RuleType = "tips_per_person_per_day"
	RuleWaterPerPersonPerDay  RuleType = "water_per_person_per_day"
	RuleLunchPerPerson        RuleType = "lunch_per_person"
	RuleDinnerPerPerson       RuleType = "dinner_per_person"
	RuleChildDiscountPercent  RuleType = "child_discount_percent"
	RuleOutsideDestinationFee RuleType = "outside_destination_fee"
	RuleAirportAssistant      RuleType = "airport_assistant"
	RuleHotelAssistant        RuleType = "hotel_assistant"
	RuleProfitMarginPercent   RuleType = "profit_margin_percent"
	RuleMinimumBooking        RuleType = "minimum_booking"
)

// DefaultRuleValues substitutes for missing rate-table rows. Quotes are
// compared against these figures, so changing any entry changes prices.
var DefaultRuleValues = map[RuleType]float64{
	RuleTipsPerPersonPerDay:   5,
	RuleWaterPerPersonPerDay:  2,
	RuleLunchPerPerson:        10,
	RuleDinnerPerPerson:       10,
	RuleChildDiscountPercent:  50,
	RuleOutsideDestinationFee: 10,
	RuleAirportAssistant:      18,
	RuleHotelAssistant:        12,
	RuleProfitMarginPercent:   25,
	RuleMinimumBooking:        100,
}

// PricingRule is a generic rate-table row for fixed costs, meal costs,
// discounts, surcharges, assistant rates, profit margins, and the minimum
// booking amount. Margin rules are additionally keyed by tour type.
type PricingRule struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RuleType  RuleType           `json:"rule_type" bson:"rule_type" validate:"required"`
	TourType  TourType           `json:"tour_type,omitempty" bson:"tour_type,omitempty"`
	Value     float64            `json:"value" bson:"value" validate:"min=0"`
	IsActive  bool               `json:"is_active" bson:"is_active" default:"true"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// RuleValues holds the resolved value for every rule category consumed by the
// cost waterfall, after default substitution.
type RuleValues struct {
	TipsPerPersonPerDay   float64
	WaterPerPersonPerDay  float64
	LunchPerPerson        float64
	DinnerPerPerson       float64
	ChildDiscountPercent  float64
	OutsideDestinationFee float64
	AirportAssistant      float64
	HotelAssistant        float64
	ProfitMarginPercent   float64
	MinimumBooking        float64
}
