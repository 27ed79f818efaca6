// README: Move estimate inputs, outputs and the rate tables they are priced against.
package estimate

// MoveRequest is the set of move parameters the estimate is a pure function of.
type MoveRequest struct {
	Bedrooms          int     `json:"bedrooms"`
	StairsOrigin      int     `json:"stairs_origin"`
	StairsDestination int     `json:"stairs_destination"`
	HeavyItems        int     `json:"heavy_items"`
	DistanceKm        float64 `json:"distance_km"`
	PeakSeason        bool    `json:"peak_season"`
}

// Estimate is the crew size, duration and price for one MoveRequest.
// Hours is rounded to one decimal place and Cost to two.
type Estimate struct {
	Movers int     `json:"movers"`
	Hours  float64 `json:"hours"`
	Cost   float64 `json:"cost"`
}

// Quote echoes the request next to its estimate, the shape stored in a visitor session.
type Quote struct {
	Estimate
	MoveRequest
	Currency string `json:"currency"`
}

// Breakdown itemises how an estimate was reached. Values are rounded for display only.
type Breakdown struct {
	BaseHours     float64 `json:"base_hours"`
	HeavyItemHrs  float64 `json:"heavy_item_hours"`
	TravelHours   float64 `json:"travel_hours"`
	StairsHours   float64 `json:"stairs_hours"`
	HourlyRate    float64 `json:"hourly_rate"`
	LabourCost    float64 `json:"labour_cost"`
	FuelSurcharge float64 `json:"fuel_surcharge"`
}

const (
	Currency = "CAD"

	// MaxDistanceKm bounds accepted move distances so costs stay finite.
	MaxDistanceKm = 20000.0

	heavyItemHours    = 0.5
	stairsFlightHours = 0.5
	averageSpeedKmh   = 50.0
	peakMultiplier    = 1.2

	localDistanceKm = 100.0
	localFuelFee    = 40.0
	fuelPerKm       = 0.72
)

// hourlyRates is keyed by crew size.
var hourlyRates = map[int]float64{
	2: 140.0,
	3: 160.0,
	4: 180.0,
}
