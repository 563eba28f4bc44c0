package utils

// Application Constants
const (
	AppName    = "TourQuote"
	AppVersion = "1.0.0"

	// All rate tables quote in the home currency; conversion is the
	// surrounding application's concern.
	HomeCurrency = "EUR"

	// Quote Constants
	MaxDurationDays  = 60
	MaxPartySize     = 200
	MaxAddonServices = 20
)
