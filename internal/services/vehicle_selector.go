package services

import (
	"context"
	"errors"
	"fmt"

	"tourquote/internal/models"
	"tourquote/internal/repositories/interfaces"
)

// vehicleSelection is the outcome of transport selection: the vehicle the
// quote is priced against plus the full eligible set for UI transparency.
type vehicleSelection struct {
	Selected      *models.TransportRate
	Eligible      []*models.TransportRate
	WasOverridden bool
}

// selectTransport picks a vehicle for the party. With an override code the
// vehicle is looked up directly and hard-checked against the party size;
// otherwise the cheapest eligible vehicle wins. The eligible list is computed
// in both modes.
func (s *pricingService) selectTransport(ctx context.Context, req *models.QuoteRequest) (*vehicleSelection, error) {
	travelers := req.TotalTravelers()

	eligible, err := s.transportRepo.FindEligible(ctx, req.City, req.TransportationService, travelers)
	if err != nil {
		return nil, fmt.Errorf("transport lookup failed: %w", err)
	}

	if req.OverrideTransportation != "" {
		vehicle, err := s.transportRepo.GetByServiceCode(ctx, req.OverrideTransportation)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil, &NotFoundError{Resource: "transportation service", Key: req.OverrideTransportation}
			}
			return nil, fmt.Errorf("transport lookup failed: %w", err)
		}
		// The capacity check holds even for an explicit override; an
		// under-capacity vehicle cannot legally carry the party.
		if !vehicle.Fits(travelers) {
			return nil, &CapacityViolationError{
				VehicleType: vehicle.VehicleType,
				CapacityMin: vehicle.CapacityMin,
				CapacityMax: vehicle.CapacityMax,
				Travelers:   travelers,
			}
		}
		return &vehicleSelection{Selected: vehicle, Eligible: eligible, WasOverridden: true}, nil
	}

	if len(eligible) == 0 {
		return nil, &NoVehicleAvailableError{
			City:        req.City,
			ServiceType: req.TransportationService,
			Travelers:   travelers,
		}
	}

	// Repository returns rates ordered by base rate ascending, so the first
	// entry is the cheapest that fits.
	return &vehicleSelection{Selected: eligible[0], Eligible: eligible}, nil
}

// alternatives flags the eligible set against the selected vehicle's code.
func (v *vehicleSelection) alternatives() []models.VehicleAlternative {
	alts := make([]models.VehicleAlternative, 0, len(v.Eligible))
	for _, rate := range v.Eligible {
		alts = append(alts, models.VehicleAlternative{
			ServiceCode: rate.ServiceCode,
			Type:        rate.VehicleType,
			Capacity:    models.CapacityLabel(rate.CapacityMin, rate.CapacityMax),
			CostPerDay:  rate.BaseRate,
			IsSelected:  rate.ServiceCode == v.Selected.ServiceCode,
		})
	}
	return alts
}
