package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelwise/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP responses.
// Every user action funnels its failure through here; nothing propagates to a crash.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrProtectedAccount):
		RespondError(c, http.StatusForbidden, "Cannot delete the main admin account")
	case errors.Is(err, ErrConversationNotFound):
		RespondError(c, http.StatusNotFound, "Conversation not found")
	case errors.Is(err, ErrNonPositiveAmount):
		RespondError(c, http.StatusBadRequest, "Please enter a valid amount")
	case errors.Is(err, ErrUnknownCategory):
		RespondError(c, http.StatusBadRequest, "Unknown expense category")
	case errors.Is(err, ErrInvalidDuration):
		RespondError(c, http.StatusBadRequest, "Trip duration must be between 1 and 30 days")
	case errors.Is(err, ErrInvalidBudget):
		RespondError(c, http.StatusBadRequest, "Total budget is below the minimum")
	case errors.Is(err, ErrRateUnavailable):
		RespondError(c, http.StatusBadGateway, "Could not fetch the exchange rate. Please check the currency codes and try again")
	case errors.Is(err, ErrChatUnavailable):
		RespondError(c, http.StatusBadGateway, "The travel assistant is unavailable right now. Please try again")
	case errors.Is(err, ErrDatabaseError):
		logger.Get().Error("database error", logger.Err(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Get().Error("unhandled service error", logger.Err(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
