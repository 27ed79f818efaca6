package maps

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"
)

var ErrNoRoute = errors.New("no route found")

// RouteService handles interactions with Google Maps API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// DistanceKm returns the driving distance of the first leg of the first suggested route.
// A request without waypoints has exactly one leg.
func (s *RouteService) DistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    "en",
		Region:      "ca",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("maps api error: %w", err)
	}
	return firstLegKm(routes)
}

func firstLegKm(routes []maps.Route) (float64, error) {
	if len(routes) == 0 || len(routes[0].Legs) == 0 || routes[0].Legs[0] == nil {
		return 0, ErrNoRoute
	}
	return metersToKm(routes[0].Legs[0].Distance.Meters), nil
}

func metersToKm(m int) float64 {
	return float64(m) / 1000.0
}
