package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizledger/backoffice/internal/apperrors"
	"github.com/bizledger/backoffice/internal/dto"
)

// respondServiceError translates a service error into the HTTP response:
// validation 400 (with the full violation list), not found 404,
// referential integrity 409, deadline expiry 504, anything else 500 with
// the detail kept out of the body.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Request rejected", slog.Any("violations", validationErr.Violations))
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:      "validation failed",
			Violations: validationErr.Violations,
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrReferentialIntegrity):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTimeout):
		logger.Error("Operation timed out", slog.String("error", err.Error()))
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Operation timed out"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
