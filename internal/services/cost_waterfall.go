package services

import (
	"tourquote/internal/models"
	"tourquote/internal/utils"
)

// waterfallResult carries the unrounded pipeline outputs; rounding happens
// only at the response boundary.
type waterfallResult struct {
	Breakdown      models.PricingBreakdown
	TotalPrice     float64
	PricePerPerson float64
}

// computeCost runs the cost waterfall. It is a pure function: identical
// inputs always produce identical outputs. The caller guarantees at least one
// traveler.
func computeCost(vehicleRate, guideRate float64, rules models.RuleValues, req *models.QuoteRequest) waterfallResult {
	travelers := float64(req.TotalTravelers())
	days := float64(req.DurationDays)

	// Stage 1: group costs, shared by the whole party and scaled by duration.
	// Tips are a per-person daily rate in the rate tables but enter here as a
	// flat group addend; historical quotes depend on this, so it stays.
	groupCostPerDay := vehicleRate + guideRate + rules.TipsPerPersonPerDay
	totalGroupCost := groupCostPerDay * days

	// Stage 2: per-person daily rate.
	perPersonPerDay := rules.WaterPerPersonPerDay + req.EntranceFeesPerPerson
	lunch := 0.0
	if req.IncludesLunch {
		lunch = rules.LunchPerPerson
		perPersonPerDay += lunch
	}
	dinner := 0.0
	if req.IncludesDinner {
		dinner = rules.DinnerPerPerson
		perPersonPerDay += dinner
	}

	// Stage 3: per-person totals with child discount.
	adultsTotal := float64(req.NumAdults) * perPersonPerDay * days
	childMultiplier := 1 - rules.ChildDiscountPercent/100
	childrenTotal := float64(req.NumChildren) * perPersonPerDay * days * childMultiplier
	totalPerPersonCost := adultsTotal + childrenTotal

	// Stage 4: outside-destination surcharge.
	surcharge := 0.0
	if req.OutsideDestination {
		surcharge = rules.OutsideDestinationFee * travelers
	}

	// Stage 5: assistant costs for airport transfers and hotel check-ins.
	assistants := float64(req.AirportTransfers)*rules.AirportAssistant +
		float64(req.HotelCheckins)*rules.HotelAssistant

	// Stage 6: base cost.
	baseCost := totalGroupCost + totalPerPersonCost + surcharge + assistants

	// Stage 7: profit margin.
	finalPricePerPerson := (baseCost / travelers) * (1 + rules.ProfitMarginPercent/100)
	finalTotalPrice := finalPricePerPerson * travelers
	profitAmount := finalTotalPrice - baseCost

	// Stage 8: minimum booking floor.
	actualTotalPrice := finalTotalPrice
	minimumApplied := finalTotalPrice < rules.MinimumBooking
	if minimumApplied {
		actualTotalPrice = rules.MinimumBooking
	}
	actualPricePerPerson := actualTotalPrice / travelers

	return waterfallResult{
		Breakdown: models.PricingBreakdown{
			GroupCosts: models.GroupCosts{
				Vehicle: vehicleRate,
				Guide:   guideRate,
				Tips:    rules.TipsPerPersonPerDay,
				Total:   totalGroupCost,
			},
			PerPersonCosts: models.PerPersonCosts{
				EntranceFees:  req.EntranceFeesPerPerson,
				Water:         rules.WaterPerPersonPerDay,
				Lunch:         lunch,
				Dinner:        dinner,
				AdultsTotal:   adultsTotal,
				ChildrenTotal: childrenTotal,
				Total:         totalPerPersonCost,
			},
			AdditionalCosts: models.AdditionalCosts{
				OutsideDestination: surcharge,
				Assistants:         assistants,
			},
			BaseCost:              baseCost,
			ProfitMargin:          utils.FormatPercent(rules.ProfitMarginPercent),
			ProfitAmount:          profitAmount,
			MinimumBookingApplied: minimumApplied,
		},
		TotalPrice:     actualTotalPrice,
		PricePerPerson: actualPricePerPerson,
	}
}
