// README: Estimate service computes crew size, hours and cost for a move.
package estimate

import (
	"context"

	"go.uber.org/zap"
)

// ComputeEstimate returns the crew size, rounded hours and rounded cost for a move.
// It is total over non-negative inputs; bedroom counts above four use the largest tier.
func ComputeEstimate(bedrooms, stairsOrigin, stairsDestination, heavyItems int, distanceKm float64, peakSeason bool) (int, float64, float64) {
	movers := crewSize(bedrooms)
	hours := rawHours(bedrooms, stairsOrigin, stairsDestination, heavyItems, distanceKm)
	rate := hourlyRate(movers, peakSeason)

	// cost uses full-precision hours; rounding is for the returned values only
	cost := hours*rate + fuelSurcharge(distanceKm)

	return movers, roundTo(hours, 1), roundTo(cost, 2)
}

// Compute is the struct form of ComputeEstimate.
func Compute(req MoveRequest) Estimate {
	movers, hours, cost := ComputeEstimate(req.Bedrooms, req.StairsOrigin, req.StairsDestination,
		req.HeavyItems, req.DistanceKm, req.PeakSeason)
	return Estimate{Movers: movers, Hours: hours, Cost: cost}
}

// Explain itemises the components behind Compute(req).
func Explain(req MoveRequest) Breakdown {
	movers := crewSize(req.Bedrooms)
	hours := rawHours(req.Bedrooms, req.StairsOrigin, req.StairsDestination, req.HeavyItems, req.DistanceKm)
	rate := hourlyRate(movers, req.PeakSeason)
	return Breakdown{
		BaseHours:     baseHours(req.Bedrooms),
		HeavyItemHrs:  roundTo(heavyItemHours*float64(req.HeavyItems), 2),
		TravelHours:   roundTo(req.DistanceKm/averageSpeedKmh, 2),
		StairsHours:   roundTo(stairsFlightHours*(float64(req.StairsOrigin)+float64(req.StairsDestination)), 2),
		HourlyRate:    roundTo(rate, 2),
		LabourCost:    roundTo(hours*rate, 2),
		FuelSurcharge: roundTo(fuelSurcharge(req.DistanceKm), 2),
	}
}

func crewSize(bedrooms int) int {
	switch {
	case bedrooms <= 1:
		return 2
	case bedrooms == 2:
		return 3
	default:
		return 4
	}
}

func baseHours(bedrooms int) float64 {
	switch {
	case bedrooms <= 1:
		return 4.0
	case bedrooms == 2:
		return 6.0
	case bedrooms == 3:
		return 8.0
	default:
		return 10.0
	}
}

// rawHours keeps the addition order fixed so float results are reproducible.
func rawHours(bedrooms, stairsOrigin, stairsDestination, heavyItems int, distanceKm float64) float64 {
	hours := baseHours(bedrooms)
	hours += heavyItemHours * float64(heavyItems)
	hours += distanceKm / averageSpeedKmh
	hours += stairsFlightHours * (float64(stairsOrigin) + float64(stairsDestination))
	return hours
}

func hourlyRate(movers int, peakSeason bool) float64 {
	rate := hourlyRates[movers]
	if peakSeason {
		rate *= peakMultiplier
	}
	return rate
}

func fuelSurcharge(distanceKm float64) float64 {
	if distanceKm <= localDistanceKm {
		return localFuelFee
	}
	return distanceKm * fuelPerKm
}

// Service wraps the pure estimator for callers that want a Quote and logging.
type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger.Named("estimate")}
}

// Quote computes the estimate for req and echoes req alongside it.
func (s *Service) Quote(ctx context.Context, req MoveRequest) Quote {
	est := Compute(req)
	s.logger.Debug("estimate computed",
		zap.Int("bedrooms", req.Bedrooms),
		zap.Float64("distance_km", req.DistanceKm),
		zap.Bool("peak_season", req.PeakSeason),
		zap.Int("movers", est.Movers),
		zap.Float64("hours", est.Hours),
		zap.Float64("cost", est.Cost),
	)
	return Quote{Estimate: est, MoveRequest: req, Currency: Currency}
}
