package handlers

import (
	"errors"
	"strconv"

	"tourquote/internal/models"
	"tourquote/internal/services"
	"tourquote/internal/utils"
	"tourquote/internal/validators"
	"tourquote/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingService services.PricingService
	logger         *logger.Logger
}

func NewPricingHandler(pricingService services.PricingService, log *logger.Logger) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		logger:         log,
	}
}

// PriceQuote prices a tour quote for the requested group
func (h *PricingHandler) PriceQuote(c *gin.Context) {
	var request models.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if validationErrors := validators.ValidateQuoteRequest(&request); len(validationErrors) > 0 {
		utils.BadRequestResponse(c, validationErrors.Error())
		return
	}

	pricing, err := h.pricingService.PriceQuote(c.Request.Context(), &request)
	if err != nil {
		h.respondPricingError(c, err)
		return
	}

	utils.SuccessResponse(c, "pricing", pricing)
}

// ListTransportRates lists the active vehicles eligible for a party, cheapest
// first, for sales UI transparency
func (h *PricingHandler) ListTransportRates(c *gin.Context) {
	city := c.Query("city")
	serviceType := c.Query("service_type")
	travelers, err := strconv.Atoi(c.Query("travelers"))
	if city == "" || serviceType == "" || err != nil || travelers < 1 {
		utils.BadRequestResponse(c, "city, service_type and a positive travelers count are required")
		return
	}

	rates, err := h.pricingService.ListEligibleTransport(c.Request.Context(), city, serviceType, travelers)
	if err != nil {
		h.logger.WithError(err).Error("Transport rate listing failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "transport", rates)
}

// respondPricingError maps the quote error taxonomy to HTTP statuses. All
// listed failures are terminal for the one quote; none returns a partial
// price.
func (h *PricingHandler) respondPricingError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var noVehicle *services.NoVehicleAvailableError
	var noGuide *services.NoGuideAvailableError
	var capacity *services.CapacityViolationError

	switch {
	case errors.As(err, &notFound):
		utils.NotFoundResponse(c, notFound.Error())
	case errors.As(err, &noVehicle):
		utils.NotFoundResponse(c, noVehicle.Error())
	case errors.As(err, &noGuide):
		utils.NotFoundResponse(c, noGuide.Error())
	case errors.As(err, &capacity):
		utils.UnprocessableResponse(c, capacity.Error())
	default:
		h.logger.WithError(err).Error("Quote pricing failed")
		utils.InternalServerErrorResponse(c)
	}
}
