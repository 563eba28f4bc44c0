package validators

import (
	"fmt"

	"tourquote/internal/models"
	"tourquote/internal/utils"
)

// ValidateQuoteRequest checks the request shape and numeric ranges before any
// rate lookup runs. The waterfall divides by the party size, so a quote with
// zero travelers must be rejected here.
func ValidateQuoteRequest(req *models.QuoteRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.TotalTravelers() < 1 {
		errors = append(errors, ValidationError{
			Field:   "num_adults",
			Message: "at least one traveler is required",
		})
	}

	if req.TotalTravelers() > utils.MaxPartySize {
		errors = append(errors, ValidationError{
			Field:   "num_adults",
			Message: fmt.Sprintf("party size cannot exceed %d travelers", utils.MaxPartySize),
		})
	}

	if req.DurationDays > utils.MaxDurationDays {
		errors = append(errors, ValidationError{
			Field:   "duration_days",
			Message: fmt.Sprintf("duration cannot exceed %d days", utils.MaxDurationDays),
		})
	}

	if req.AirportTransfers > utils.MaxAddonServices {
		errors = append(errors, ValidationError{
			Field:   "airport_transfers",
			Message: fmt.Sprintf("airport transfers cannot exceed %d", utils.MaxAddonServices),
		})
	}

	if req.HotelCheckins > utils.MaxAddonServices {
		errors = append(errors, ValidationError{
			Field:   "hotel_checkins",
			Message: fmt.Sprintf("hotel check-ins cannot exceed %d", utils.MaxAddonServices),
		})
	}

	return errors
}
