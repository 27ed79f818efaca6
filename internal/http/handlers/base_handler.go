// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mftnb/internal/modules/booking"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// renderError answers a page request that failed for a reason the visitor cannot fix.
func renderError(c *gin.Context, err error) {
	status := bookingErrorStatus(err)
	msg := "Something went wrong on our side. Please try again."
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	_ = c.Error(err)
	c.HTML(status, "error.html", gin.H{"Title": "Error", "Message": msg})
}
