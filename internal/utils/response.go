package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire envelope is part of the quoting contract: successful calls return
// {"success": true, "<key>": ...}, failures {"success": false, "error": msg}.

func SuccessResponse(c *gin.Context, key string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		key:       data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func UnprocessableResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnprocessableEntity, message)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
