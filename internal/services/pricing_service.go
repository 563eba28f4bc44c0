package services

import (
	"context"
	"errors"
	"fmt"

	"tourquote/internal/models"
	"tourquote/internal/repositories/interfaces"
	"tourquote/internal/utils"
	"tourquote/pkg/logger"
)

type PricingService interface {
	// PriceQuote prices a tour for a validated request: vehicle selection,
	// cost waterfall, response assembly.
	PriceQuote(ctx context.Context, req *models.QuoteRequest) (*models.QuotePricing, error)

	// ListEligibleTransport returns the active vehicles that could carry the
	// party, cheapest first.
	ListEligibleTransport(ctx context.Context, city, serviceType string, travelers int) ([]*models.TransportRate, error)
}

type pricingService struct {
	transportRepo interfaces.TransportRateRepository
	guideRepo     interfaces.GuideRateRepository
	ruleRepo      interfaces.PricingRuleRepository
	logger        *logger.Logger
}

func NewPricingService(
	transportRepo interfaces.TransportRateRepository,
	guideRepo interfaces.GuideRateRepository,
	ruleRepo interfaces.PricingRuleRepository,
	log *logger.Logger,
) PricingService {
	return &pricingService{
		transportRepo: transportRepo,
		guideRepo:     guideRepo,
		ruleRepo:      ruleRepo,
		logger:        log,
	}
}

func (s *pricingService) PriceQuote(ctx context.Context, req *models.QuoteRequest) (*models.QuotePricing, error) {
	selection, err := s.selectTransport(ctx, req)
	if err != nil {
		return nil, err
	}

	guide, err := s.guideRepo.GetByLanguage(ctx, req.Language)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, &NoGuideAvailableError{Language: req.Language}
		}
		return nil, fmt.Errorf("guide lookup failed: %w", err)
	}

	rules, err := s.resolveRules(ctx, req.TourType)
	if err != nil {
		return nil, err
	}

	result := computeCost(selection.Selected.BaseRate, guide.BaseRate, rules, req)

	pricing := s.assemblePricing(req, selection, result)

	s.logger.WithFields(map[string]interface{}{
		"city":          req.City,
		"tour_type":     string(req.TourType),
		"travelers":     req.TotalTravelers(),
		"vehicle":       selection.Selected.ServiceCode,
		"total_price":   pricing.TotalPrice,
		"floor_applied": pricing.Breakdown.MinimumBookingApplied,
	}).Info("Quote priced")

	return pricing, nil
}

func (s *pricingService) ListEligibleTransport(ctx context.Context, city, serviceType string, travelers int) ([]*models.TransportRate, error) {
	rates, err := s.transportRepo.FindEligible(ctx, city, serviceType, travelers)
	if err != nil {
		return nil, fmt.Errorf("transport lookup failed: %w", err)
	}
	return rates, nil
}

// resolveRules fetches every rule category the waterfall consumes. A missing
// rule is not an error: the documented default is substituted so a quote can
// always be produced once a vehicle and guide are found. Any other lookup
// failure is terminal.
func (s *pricingService) resolveRules(ctx context.Context, tourType models.TourType) (models.RuleValues, error) {
	values := models.RuleValues{}

	assign := map[models.RuleType]*float64{
		models.RuleTipsPerPersonPerDay:   &values.TipsPerPersonPerDay,
		models.RuleWaterPerPersonPerDay:  &values.WaterPerPersonPerDay,
		models.RuleLunchPerPerson:        &values.LunchPerPerson,
		models.RuleDinnerPerPerson:       &values.DinnerPerPerson,
		models.RuleChildDiscountPercent:  &values.ChildDiscountPercent,
		models.RuleOutsideDestinationFee: &values.OutsideDestinationFee,
		models.RuleAirportAssistant:      &values.AirportAssistant,
		models.RuleHotelAssistant:        &values.HotelAssistant,
		models.RuleMinimumBooking:        &values.MinimumBooking,
	}

	for ruleType, target := range assign {
		rule, err := s.ruleRepo.GetByType(ctx, ruleType)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				*target = models.DefaultRuleValues[ruleType]
				continue
			}
			return values, fmt.Errorf("rule lookup failed: %w", err)
		}
		*target = rule.Value
	}

	margin, err := s.ruleRepo.GetProfitMargin(ctx, tourType)
	if err != nil {
		if !errors.Is(err, interfaces.ErrNotFound) {
			return values, fmt.Errorf("rule lookup failed: %w", err)
		}
		values.ProfitMarginPercent = models.DefaultRuleValues[models.RuleProfitMarginPercent]
	} else {
		values.ProfitMarginPercent = margin.Value
	}

	return values, nil
}

// assemblePricing shapes the response. Monetary amounts are rounded to two
// decimals here, at the presentation boundary, never mid-pipeline.
func (s *pricingService) assemblePricing(req *models.QuoteRequest, selection *vehicleSelection, result waterfallResult) *models.QuotePricing {
	b := result.Breakdown
	b.GroupCosts.Total = utils.Round2(b.GroupCosts.Total)
	b.PerPersonCosts.AdultsTotal = utils.Round2(b.PerPersonCosts.AdultsTotal)
	b.PerPersonCosts.ChildrenTotal = utils.Round2(b.PerPersonCosts.ChildrenTotal)
	b.PerPersonCosts.Total = utils.Round2(b.PerPersonCosts.Total)
	b.BaseCost = utils.Round2(b.BaseCost)
	b.ProfitAmount = utils.Round2(b.ProfitAmount)

	selected := selection.Selected

	return &models.QuotePricing{
		PricePerPerson: utils.Round2(result.PricePerPerson),
		TotalPrice:     utils.Round2(result.TotalPrice),
		Currency:       utils.HomeCurrency,
		Breakdown:      b,
		Travelers: models.Travelers{
			Adults:   req.NumAdults,
			Children: req.NumChildren,
			Total:    req.TotalTravelers(),
		},
		Vehicle: models.VehicleSelection{
			Selected: models.SelectedVehicle{
				ServiceCode:   selected.ServiceCode,
				Type:          selected.VehicleType,
				Capacity:      models.CapacityLabel(selected.CapacityMin, selected.CapacityMax),
				CostPerDay:    selected.BaseRate,
				WasOverridden: selection.WasOverridden,
			},
			Alternatives: selection.alternatives(),
		},
	}
}
