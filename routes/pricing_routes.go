package routes

import (
	"tourquote/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPricingRoutes sets up routes for quote pricing
func SetupPricingRoutes(r *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	quotes := r.Group("/quotes")
	{
		quotes.POST("/price", pricingHandler.PriceQuote)
	}

	rates := r.Group("/rates")
	{
		// Read-only; rate-table mutation stays with the back office.
		rates.GET("/transport", pricingHandler.ListTransportRates)
	}
}
