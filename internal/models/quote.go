package models

import "fmt"

// QuoteRequest is the inbound shape of a pricing request. Optional fields
// default to their zero values; cross-field checks (at least one traveler)
// live in the validators package.
type QuoteRequest struct {
	NumAdults              int      `json:"num_adults" validate:"min=0"`
	NumChildren            int      `json:"num_children" validate:"min=0"`
	DurationDays           int      `json:"duration_days" validate:"required,min=1"`
	TourType               TourType `json:"tour_type" validate:"required,tour_type"`
	City                   string   `json:"city" validate:"required"`
	TransportationService  string   `json:"transportation_service" validate:"required"`
	OverrideTransportation string   `json:"override_transportation,omitempty" validate:"omitempty,service_code"`
	Language               string   `json:"language" validate:"required,language_name"`
	EntranceFeesPerPerson  float64  `json:"entrance_fees_per_person" validate:"min=0"`
	IncludesLunch          bool     `json:"includes_lunch"`
	IncludesDinner         bool     `json:"includes_dinner"`
	OutsideDestination     bool     `json:"outside_destination"`
	AirportTransfers       int      `json:"airport_transfers" validate:"min=0"`
	HotelCheckins          int      `json:"hotel_checkins" validate:"min=0"`
}

// TotalTravelers is the party size the vehicle must carry.
func (q *QuoteRequest) TotalTravelers() int {
	return q.NumAdults + q.NumChildren
}

// GroupCosts are incurred once per day regardless of party size.
type GroupCosts struct {
	Vehicle float64 `json:"vehicle"`
	Guide   float64 `json:"guide"`
	Tips    float64 `json:"tips"`
	Total   float64 `json:"total"`
}

// PerPersonCosts scale linearly with traveler count, subject to the child
// discount.
type PerPersonCosts struct {
	EntranceFees  float64 `json:"entrance_fees"`
	Water         float64 `json:"water"`
	Lunch         float64 `json:"lunch"`
	Dinner        float64 `json:"dinner"`
	AdultsTotal   float64 `json:"adults_total"`
	ChildrenTotal float64 `json:"children_total"`
	Total         float64 `json:"total"`
}

type AdditionalCosts struct {
	OutsideDestination float64 `json:"outside_destination"`
	Assistants         float64 `json:"assistants"`
}

// PricingBreakdown is the itemized cost breakdown attached to every quote.
// It is constructed fresh per request and never persisted by the engine.
type PricingBreakdown struct {
	GroupCosts            GroupCosts      `json:"group_costs"`
	PerPersonCosts        PerPersonCosts  `json:"per_person_costs"`
	AdditionalCosts       AdditionalCosts `json:"additional_costs"`
	BaseCost              float64         `json:"base_cost"`
	ProfitMargin          string          `json:"profit_margin"`
	ProfitAmount          float64         `json:"profit_amount"`
	MinimumBookingApplied bool            `json:"minimum_booking_applied"`
}

type Travelers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Total    int `json:"total"`
}

// SelectedVehicle describes the vehicle the quote was priced against.
type SelectedVehicle struct {
	ServiceCode   string  `json:"service_code"`
	Type          string  `json:"type"`
	Capacity      string  `json:"capacity"`
	CostPerDay    float64 `json:"cost_per_day"`
	WasOverridden bool    `json:"was_overridden"`
}

// VehicleAlternative is one entry of the full eligible-vehicle set, returned
// for UI transparency only; it never affects the price.
type VehicleAlternative struct {
	ServiceCode string  `json:"service_code"`
	Type        string  `json:"type"`
	Capacity    string  `json:"capacity"`
	CostPerDay  float64 `json:"cost_per_day"`
	IsSelected  bool    `json:"is_selected"`
}

type VehicleSelection struct {
	Selected     SelectedVehicle      `json:"selected"`
	Alternatives []VehicleAlternative `json:"alternatives"`
}

// QuotePricing is the pricing payload of a successful quote response.
type QuotePricing struct {
	PricePerPerson float64          `json:"price_per_person"`
	TotalPrice     float64          `json:"total_price"`
	Currency       string           `json:"currency"`
	Breakdown      PricingBreakdown `json:"breakdown"`
	Travelers      Travelers        `json:"travelers"`
	Vehicle        VehicleSelection `json:"vehicle"`
}

// CapacityLabel renders a capacity range the way the sales UI displays it.
func CapacityLabel(min, max int) string {
	return fmt.Sprintf("%d-%d pax", min, max)
}
