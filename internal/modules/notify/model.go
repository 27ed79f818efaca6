// README: Booking events emitted when a visitor submits a move request.
package notify

import (
	"time"

	"mftnb/internal/modules/estimate"
)

const TypeBookingSubmitted = "booking.submitted"

// BookingSubmitted carries the contact details and quote of one submission.
type BookingSubmitted struct {
	Type        string         `json:"type"`
	SessionID   string         `json:"session_id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	MoveDate    string         `json:"move_date"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Notes       string         `json:"notes"`
	Quote       estimate.Quote `json:"quote"`
	ItemCount   int            `json:"item_count"`
	SubmittedAt time.Time      `json:"submitted_at"`
}
