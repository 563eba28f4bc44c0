package interfaces

import (
	"context"
	"errors"

	"tourquote/internal/models"
)

// ErrNotFound is wrapped by repository implementations when a lookup matches
// no active record; callers test with errors.Is.
var ErrNotFound = errors.New("not found")

// The rate repositories are read-only from the engine's point of view; rate
// tables are owned and mutated by the surrounding back-office application and
// treated as immutable for the duration of one pricing call.

type TransportRateRepository interface {
	// GetByServiceCode returns the active rate with the exact service code.
	GetByServiceCode(ctx context.Context, serviceCode string) (*models.TransportRate, error)

	// FindEligible returns all active rates for the city and service type
	// whose capacity range contains the party size, ordered by base rate
	// ascending.
	FindEligible(ctx context.Context, city, serviceType string, travelers int) ([]*models.TransportRate, error)
}

type GuideRateRepository interface {
	// GetByLanguage returns the first active rate for the language
	// (first match wins on duplicate active rows).
	GetByLanguage(ctx context.Context, language string) (*models.GuideRate, error)
}

type PricingRuleRepository interface {
	// GetByType returns the first active rule of the given category.
	GetByType(ctx context.Context, ruleType models.RuleType) (*models.PricingRule, error)

	// GetProfitMargin returns the first active margin rule for the tour type.
	GetProfitMargin(ctx context.Context, tourType models.TourType) (*models.PricingRule, error)
}
