package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sadmanCR7/aeropulse/internal/domain"
)

// respondError maps domain sentinels to HTTP status codes. Every domain
// failure surfaces to the caller; nothing is retried or swallowed here.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrAirportNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientSeats),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotEligible):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRegistrationToken):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
