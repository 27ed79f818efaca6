// README: Booking form parsing from raw submitted strings.
package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mftnb/internal/modules/estimate"
)

// Form holds the raw booking submission. Numeric fields are nil when the
// field was not submitted at all, which selects the default value.
type Form struct {
	Name        string
	Email       string
	Phone       string
	MoveDate    string
	Origin      string
	Destination string
	Notes       string

	Bedrooms          *string
	StairsOrigin      *string
	StairsDestination *string
	HeavyItems        *string
	DistanceKm        *string
}

func (f Form) contact() Contact {
	return Contact{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		MoveDate:    f.MoveDate,
		Origin:      f.Origin,
		Destination: f.Destination,
		Notes:       f.Notes,
	}
}

// distanceBlank reports whether the visitor left the distance empty.
func (f Form) distanceBlank() bool {
	return f.DistanceKm == nil || strings.TrimSpace(*f.DistanceKm) == ""
}

// MoveRequest parses the numeric fields and derives the peak-season flag from the move date.
func (f Form) MoveRequest() (estimate.MoveRequest, error) {
	var req estimate.MoveRequest
	var err error

	if req.Bedrooms, err = parseCount("bedrooms", f.Bedrooms, 1); err != nil {
		return req, err
	}
	if req.StairsOrigin, err = parseCount("stairs_origin", f.StairsOrigin, 0); err != nil {
		return req, err
	}
	if req.StairsDestination, err = parseCount("stairs_destination", f.StairsDestination, 0); err != nil {
		return req, err
	}
	if req.HeavyItems, err = parseCount("heavy_items", f.HeavyItems, 0); err != nil {
		return req, err
	}
	if req.DistanceKm, err = parseDistance("distance_km", f.DistanceKm); err != nil {
		return req, err
	}
	req.PeakSeason = estimate.IsPeakSeason(f.MoveDate)
	return req, nil
}

func parseCount(field string, raw *string, def int) (int, error) {
	if raw == nil {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a whole number of zero or more", ErrInvalidInput, field)
	}
	return n, nil
}

func parseDistance(field string, raw *string) (float64, error) {
	if raw == nil {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > estimate.MaxDistanceKm {
		return 0, fmt.Errorf("%w: %s must be a number from 0 to %g", ErrInvalidInput, field, estimate.MaxDistanceKm)
	}
	return v, nil
}
