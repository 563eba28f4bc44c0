package services

import "fmt"

// Quote failures are terminal: the whole quote fails and no partial price is
// returned. The handler maps each type to an HTTP status.

// NotFoundError reports an explicitly requested record that does not exist,
// such as an unknown override vehicle code.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.Key)
}

// NoVehicleAvailableError reports that auto-selection found no active vehicle
// fitting the party.
type NoVehicleAvailableError struct {
	City        string
	ServiceType string
	Travelers   int
}

func (e *NoVehicleAvailableError) Error() string {
	return fmt.Sprintf("no vehicle available in %s for service type '%s' and %d travelers",
		e.City, e.ServiceType, e.Travelers)
}

// CapacityViolationError reports an override vehicle that cannot legally carry
// the party. The bounds are included so the sales UI can explain the
// rejection.
type CapacityViolationError struct {
	VehicleType string
	CapacityMin int
	CapacityMax int
	Travelers   int
}

func (e *CapacityViolationError) Error() string {
	return fmt.Sprintf("vehicle '%s' holds %d-%d passengers, cannot carry %d travelers",
		e.VehicleType, e.CapacityMin, e.CapacityMax, e.Travelers)
}

// NoGuideAvailableError reports that no active guide rate exists for the
// requested language.
type NoGuideAvailableError struct {
	Language string
}

func (e *NoGuideAvailableError) Error() string {
	return fmt.Sprintf("no guide available for language '%s'", e.Language)
}
