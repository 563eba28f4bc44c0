package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"testing"

	"tourquote/internal/models"
	"tourquote/internal/repositories/interfaces"
	"tourquote/pkg/logger"
)

type fakeTransportRepo struct {
	rates []*models.TransportRate
	err   error
}

func (f *fakeTransportRepo) GetByServiceCode(ctx context.Context, serviceCode string) (*models.TransportRate, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rates {
		if r.ServiceCode == serviceCode && r.IsActive {
			return r, nil
		}
	}
	return nil, fmt.Errorf("transport rate %s: %w", serviceCode, interfaces.ErrNotFound)
}

func (f *fakeTransportRepo) FindEligible(ctx context.Context, city, serviceType string, travelers int) ([]*models.TransportRate, error) {
	if f.err != nil {
		return nil, f.err
	}
	var eligible []*models.TransportRate
	for _, r := range f.rates {
		if r.City == city && r.ServiceType == serviceType && r.IsActive && r.Fits(travelers) {
			eligible = append(eligible, r)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].BaseRate < eligible[j].BaseRate
	})
	return eligible, nil
}

type fakeGuideRepo struct {
	rates map[string]*models.GuideRate
}

func (f *fakeGuideRepo) GetByLanguage(ctx context.Context, language string) (*models.GuideRate, error) {
	if rate, ok := f.rates[language]; ok {
		return rate, nil
	}
	return nil, fmt.Errorf("guide rate for language %s: %w", language, interfaces.ErrNotFound)
}

type fakeRuleRepo struct {
	rules   map[models.RuleType]float64
	margins map[models.TourType]float64
}

func (f *fakeRuleRepo) GetByType(ctx context.Context, ruleType models.RuleType) (*models.PricingRule, error) {
	if value, ok := f.rules[ruleType]; ok {
		return &models.PricingRule{RuleType: ruleType, Value: value, IsActive: true}, nil
	}
	return nil, fmt.Errorf("pricing rule %s: %w", ruleType, interfaces.ErrNotFound)
}

func (f *fakeRuleRepo) GetProfitMargin(ctx context.Context, tourType models.TourType) (*models.PricingRule, error) {
	if value, ok := f.margins[tourType]; ok {
		return &models.PricingRule{RuleType: models.RuleProfitMarginPercent, TourType: tourType, Value: value, IsActive: true}, nil
	}
	return nil, fmt.Errorf("pricing rule %s:%s: %w", models.RuleProfitMarginPercent, tourType, interfaces.ErrNotFound)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.SetOutput(io.Discard)
	return log
}

func cairoFixture() (*fakeTransportRepo, *fakeGuideRepo, *fakeRuleRepo) {
	transport := &fakeTransportRepo{rates: []*models.TransportRate{
		{ServiceCode: "CAI-HIACE", City: "Cairo", ServiceType: "day_tour", VehicleType: "Toyota Hiace",
			CapacityMin: 4, CapacityMax: 10, BaseRate: 110, IsActive: true},
		{ServiceCode: "CAI-COASTER", City: "Cairo", ServiceType: "day_tour", VehicleType: "Toyota Coaster",
			CapacityMin: 6, CapacityMax: 18, BaseRate: 150, IsActive: true},
		{ServiceCode: "CAI-SEDAN", City: "Cairo", ServiceType: "day_tour", VehicleType: "Sedan",
			CapacityMin: 1, CapacityMax: 4, BaseRate: 60, IsActive: true},
	}}
	guides := &fakeGuideRepo{rates: map[string]*models.GuideRate{
		"english": {ServiceCode: "GUIDE-EN", Language: "english", BaseRate: 50, IsActive: true},
	}}
	// No rule rows configured: every category falls back to its default.
	rules := &fakeRuleRepo{rules: map[models.RuleType]float64{}, margins: map[models.TourType]float64{}}
	return transport, guides, rules
}

func cairoRequest() *models.QuoteRequest {
	return &models.QuoteRequest{
		NumAdults:             6,
		NumChildren:           0,
		DurationDays:          1,
		TourType:              models.TourTypeDayTour,
		City:                  "Cairo",
		TransportationService: "day_tour",
		Language:              "english",
		EntranceFeesPerPerson: 14,
		IncludesLunch:         true,
	}
}

func TestPriceQuoteCairoDayTour(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	pricing, err := svc.PriceQuote(context.Background(), cairoRequest())
	if err != nil {
		t.Fatalf("PriceQuote: %v", err)
	}

	if got := pricing.Breakdown.GroupCosts.Total; got != 165 {
		t.Errorf("group costs total = %v, want 165", got)
	}
	if got := pricing.Breakdown.PerPersonCosts.AdultsTotal; got != 156 {
		t.Errorf("adults total = %v, want 156", got)
	}
	if got := pricing.Breakdown.BaseCost; got != 321 {
		t.Errorf("base cost = %v, want 321", got)
	}
	if got := pricing.TotalPrice; got != 401.25 {
		t.Errorf("total price = %v, want 401.25", got)
	}
	if got := pricing.PricePerPerson; got != 66.88 {
		t.Errorf("price per person = %v, want 66.88", got)
	}
	if pricing.Breakdown.MinimumBookingApplied {
		t.Error("minimum booking floor should not apply above €100")
	}
	if pricing.Breakdown.ProfitMargin != "25%" {
		t.Errorf("profit margin = %q, want \"25%%\"", pricing.Breakdown.ProfitMargin)
	}
	if pricing.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", pricing.Currency)
	}

	vehicle := pricing.Vehicle.Selected
	if vehicle.ServiceCode != "CAI-HIACE" {
		t.Errorf("selected vehicle = %s, want CAI-HIACE (cheapest that fits 6)", vehicle.ServiceCode)
	}
	if vehicle.WasOverridden {
		t.Error("auto-selected vehicle reported as overridden")
	}
	if vehicle.Capacity != "4-10 pax" {
		t.Errorf("capacity label = %q, want \"4-10 pax\"", vehicle.Capacity)
	}
}

func TestPriceQuoteCheapestFit(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	pricing, err := svc.PriceQuote(context.Background(), cairoRequest())
	if err != nil {
		t.Fatalf("PriceQuote: %v", err)
	}

	selected := pricing.Vehicle.Selected
	var selectedFlagged int
	for _, alt := range pricing.Vehicle.Alternatives {
		if alt.CostPerDay < selected.CostPerDay {
			t.Errorf("alternative %s at %v is cheaper than selected %v", alt.ServiceCode, alt.CostPerDay, selected.CostPerDay)
		}
		if alt.IsSelected {
			selectedFlagged++
			if alt.ServiceCode != selected.ServiceCode {
				t.Errorf("alternative %s flagged selected, want %s", alt.ServiceCode, selected.ServiceCode)
			}
		}
	}
	if selectedFlagged != 1 {
		t.Errorf("%d alternatives flagged selected, want exactly 1", selectedFlagged)
	}
	// The sedan does not fit six travelers and must not be offered.
	for _, alt := range pricing.Vehicle.Alternatives {
		if alt.ServiceCode == "CAI-SEDAN" {
			t.Error("under-capacity sedan listed as an alternative")
		}
	}
}

func TestPriceQuoteOverride(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	req := cairoRequest()
	req.OverrideTransportation = "CAI-COASTER"

	pricing, err := svc.PriceQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("PriceQuote: %v", err)
	}

	if pricing.Vehicle.Selected.ServiceCode != "CAI-COASTER" {
		t.Errorf("selected = %s, want override CAI-COASTER", pricing.Vehicle.Selected.ServiceCode)
	}
	if !pricing.Vehicle.Selected.WasOverridden {
		t.Error("override not reported")
	}
	// Alternatives still list the full eligible set for the party.
	if len(pricing.Vehicle.Alternatives) != 2 {
		t.Errorf("alternatives = %d, want 2", len(pricing.Vehicle.Alternatives))
	}
}

func TestPriceQuoteOverrideCapacityViolation(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	req := cairoRequest()
	req.OverrideTransportation = "CAI-SEDAN" // holds at most 4, party of 6

	_, err := svc.PriceQuote(context.Background(), req)
	var capacityErr *CapacityViolationError
	if !errors.As(err, &capacityErr) {
		t.Fatalf("err = %v, want CapacityViolationError", err)
	}
	if capacityErr.CapacityMin != 1 || capacityErr.CapacityMax != 4 || capacityErr.Travelers != 6 {
		t.Errorf("bounds = %d-%d for %d travelers, want 1-4 for 6", capacityErr.CapacityMin, capacityErr.CapacityMax, capacityErr.Travelers)
	}
	if capacityErr.VehicleType != "Sedan" {
		t.Errorf("vehicle type = %q, want Sedan", capacityErr.VehicleType)
	}
}

func TestPriceQuoteOverrideUnknownCode(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	req := cairoRequest()
	req.OverrideTransportation = "CAI-NOPE"

	_, err := svc.PriceQuote(context.Background(), req)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestPriceQuoteNoVehicleAvailable(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	req := cairoRequest()
	req.City = "Luxor"

	_, err := svc.PriceQuote(context.Background(), req)
	var noVehicle *NoVehicleAvailableError
	if !errors.As(err, &noVehicle) {
		t.Fatalf("err = %v, want NoVehicleAvailableError", err)
	}
	if noVehicle.City != "Luxor" || noVehicle.Travelers != 6 {
		t.Errorf("error details = %+v, want city Luxor, 6 travelers", noVehicle)
	}
}

func TestPriceQuoteNoGuideAvailable(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	req := cairoRequest()
	req.Language = "japanese"

	_, err := svc.PriceQuote(context.Background(), req)
	var noGuide *NoGuideAvailableError
	if !errors.As(err, &noGuide) {
		t.Fatalf("err = %v, want NoGuideAvailableError", err)
	}
	if noGuide.Language != "japanese" {
		t.Errorf("language = %q, want japanese", noGuide.Language)
	}
}

func TestPriceQuoteMinimumBookingFloor(t *testing.T) {
	transport := &fakeTransportRepo{rates: []*models.TransportRate{
		{ServiceCode: "CAI-SEDAN", City: "Cairo", ServiceType: "day_tour", VehicleType: "Sedan",
			CapacityMin: 1, CapacityMax: 4, BaseRate: 20, IsActive: true},
	}}
	guides := &fakeGuideRepo{rates: map[string]*models.GuideRate{
		"english": {ServiceCode: "GUIDE-EN", Language: "english", BaseRate: 15, IsActive: true},
	}}
	rules := &fakeRuleRepo{rules: map[models.RuleType]float64{}, margins: map[models.TourType]float64{}}
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	req := &models.QuoteRequest{
		NumAdults:             1,
		DurationDays:          1,
		TourType:              models.TourTypeDayTour,
		City:                  "Cairo",
		TransportationService: "day_tour",
		Language:              "english",
	}

	pricing, err := svc.PriceQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("PriceQuote: %v", err)
	}

	// base = (20+15+5) + 1*2*1 = 42; with 25% margin = 52.5, below the €100 floor.
	if pricing.TotalPrice != 100 {
		t.Errorf("total price = %v, want the €100 floor", pricing.TotalPrice)
	}
	if pricing.PricePerPerson != 100 {
		t.Errorf("price per person = %v, want 100 for a single traveler", pricing.PricePerPerson)
	}
	if !pricing.Breakdown.MinimumBookingApplied {
		t.Error("minimum_booking_applied = false, want true")
	}
}

func TestPriceQuoteChildDiscount(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	req := cairoRequest()
	req.NumAdults = 3
	req.NumChildren = 3

	pricing, err := svc.PriceQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("PriceQuote: %v", err)
	}

	// At the default 50% discount a child contributes exactly half an adult.
	adults := pricing.Breakdown.PerPersonCosts.AdultsTotal
	children := pricing.Breakdown.PerPersonCosts.ChildrenTotal
	if children != adults/2 {
		t.Errorf("children total = %v, want half of adults total %v", children, adults)
	}
}

func TestPriceQuoteDurationMonotonicity(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	prev := 0.0
	for days := 1; days <= 10; days++ {
		req := cairoRequest()
		req.DurationDays = days
		req.TourType = models.TourTypePackage

		pricing, err := svc.PriceQuote(context.Background(), req)
		if err != nil {
			t.Fatalf("PriceQuote(%d days): %v", days, err)
		}
		if pricing.TotalPrice < prev {
			t.Errorf("total price decreased from %v to %v when duration grew to %d days", prev, pricing.TotalPrice, days)
		}
		prev = pricing.TotalPrice
	}
}

func TestPriceQuoteDeterminism(t *testing.T) {
	transport, guides, rules := cairoFixture()
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	req := cairoRequest()
	req.NumChildren = 2
	req.OutsideDestination = true
	req.AirportTransfers = 1
	req.HotelCheckins = 2

	first, err := svc.PriceQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("PriceQuote: %v", err)
	}
	second, err := svc.PriceQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("PriceQuote: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical requests produced different breakdowns:\n%+v\n%+v", first, second)
	}
}

func TestPriceQuoteConfiguredRulesOverrideDefaults(t *testing.T) {
	transport, guides, rules := cairoFixture()
	rules.rules[models.RuleTipsPerPersonPerDay] = 8
	rules.margins[models.TourTypeDayTour] = 30
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	pricing, err := svc.PriceQuote(context.Background(), cairoRequest())
	if err != nil {
		t.Fatalf("PriceQuote: %v", err)
	}

	// group = 110+50+8 = 168; base = 168+156 = 324; ×1.30 = 421.2
	if pricing.Breakdown.GroupCosts.Tips != 8 {
		t.Errorf("tips = %v, want configured 8", pricing.Breakdown.GroupCosts.Tips)
	}
	if pricing.TotalPrice != 421.2 {
		t.Errorf("total price = %v, want 421.2", pricing.TotalPrice)
	}
	if pricing.Breakdown.ProfitMargin != "30%" {
		t.Errorf("profit margin = %q, want \"30%%\"", pricing.Breakdown.ProfitMargin)
	}
}

func TestPriceQuoteRepositoryFailureIsTerminal(t *testing.T) {
	transport, guides, rules := cairoFixture()
	transport.err = errors.New("connection reset")
	svc := NewPricingService(transport, guides, rules, testLogger(t))

	if _, err := svc.PriceQuote(context.Background(), cairoRequest()); err == nil {
		t.Fatal("expected lookup failure to fail the quote")
	}
}
