package validators

import (
	"fmt"
	"regexp"
	"strings"

	"tourquote/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("tour_type", validateTourType)
	validate.RegisterValidation("service_code", validateServiceCode)
	validate.RegisterValidation("language_name", validateLanguageName)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be below %s", err.Field(), err.Param())
	case "tour_type":
		return fmt.Sprintf("%s must be one of: day_tour, package", err.Field())
	case "service_code":
		return fmt.Sprintf("%s must be a valid service code", err.Field())
	case "language_name":
		return fmt.Sprintf("%s must be a valid language name", err.Field())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

func validateTourType(fl validator.FieldLevel) bool {
	return models.TourType(fl.Field().String()).IsValid()
}

var serviceCodeRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{1,31}$`)

func validateServiceCode(fl validator.FieldLevel) bool {
	return serviceCodeRegex.MatchString(fl.Field().String())
}

var languageNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z ]{1,39}$`)

func validateLanguageName(fl validator.FieldLevel) bool {
	return languageNameRegex.MatchString(fl.Field().String())
}
