// README: Visitor session aggregate and booking stage definitions.
package booking

import (
	"time"

	"mftnb/internal/modules/estimate"
)

type Stage string

const (
	StageStart              Stage = "start"
	StageInventoryCollected Stage = "inventory_collected"
	StageBookingSubmitted   Stage = "booking_submitted"
	StageConfirmed          Stage = "confirmed"
)

// AllowedTransitions represents the home details -> inventory -> booking -> confirmation flow as code.
// Visitors may go back and edit earlier steps; confirmation is only reachable from a submitted booking.
var AllowedTransitions = map[Stage][]Stage{
	StageStart:              {StageInventoryCollected, StageBookingSubmitted},
	StageInventoryCollected: {StageInventoryCollected, StageBookingSubmitted},
	StageBookingSubmitted:   {StageInventoryCollected, StageBookingSubmitted, StageConfirmed},
	StageConfirmed:          {StageInventoryCollected, StageBookingSubmitted, StageConfirmed},
}

func CanTransition(from, to Stage) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// Contact is echoed back on the confirmation page as entered.
type Contact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	MoveDate    string `json:"move_date"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Notes       string `json:"notes"`
}

// Session is one visitor's form progress. It is serialised whole into the session store.
type Session struct {
	ID            string          `json:"id"`
	Stage         Stage           `json:"stage"`
	InventoryData string          `json:"inventory_data,omitempty"`
	Contact       Contact         `json:"contact"`
	Quote         *estimate.Quote `json:"estimate,omitempty"`
	Flashes       []string        `json:"flashes,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (s *Session) advance(to Stage) error {
	if !CanTransition(s.Stage, to) {
		return ErrInvalidState
	}
	s.Stage = to
	return nil
}

func (s *Session) addFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}
