package maps

import (
	"errors"
	"testing"

	"googlemaps.github.io/maps"
)

func TestNewRouteService_RequiresKey(t *testing.T) {
	if _, err := NewRouteService(""); err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestMetersToKm(t *testing.T) {
	cases := map[int]float64{
		0:      0,
		1500:   1.5,
		100000: 100,
	}
	for in, want := range cases {
		if got := metersToKm(in); got != want {
			t.Errorf("metersToKm(%d) = %v, want %v", in, got, want)
		}
	}
}

func TestFirstLegKm(t *testing.T) {
	leg := func(m int) *maps.Leg { return &maps.Leg{Distance: maps.Distance{Meters: m}} }

	tests := []struct {
		name    string
		routes  []maps.Route
		want    float64
		wantErr error
	}{
		{name: "no routes", wantErr: ErrNoRoute},
		{name: "no legs", routes: []maps.Route{{}}, wantErr: ErrNoRoute},
		{name: "single leg", routes: []maps.Route{{Legs: []*maps.Leg{leg(42500)}}}, want: 42.5},
		{
			name: "only the first leg of the first route",
			routes: []maps.Route{
				{Legs: []*maps.Leg{leg(10000), leg(5000)}},
				{Legs: []*maps.Leg{leg(99000)}},
			},
			want: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := firstLegKm(tt.routes)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("firstLegKm() = %v, want %v", got, tt.want)
			}
		})
	}
}
