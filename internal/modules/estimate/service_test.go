package estimate

import (
	"context"
	"math"
	"testing"
)

func TestComputeEstimate(t *testing.T) {
	tests := []struct {
		name       string
		req        MoveRequest
		wantMovers int
		wantHours  float64
		wantCost   float64
	}{
		{
			name:       "one bedroom local move",
			req:        MoveRequest{Bedrooms: 1, DistanceKm: 20},
			wantMovers: 2,
			wantHours:  4.4, // 4.0 + 20/50
			wantCost:   656.0,
		},
		{
			name: "three bedroom long distance in peak season",
			req: MoveRequest{
				Bedrooms:          3,
				StairsOrigin:      1,
				StairsDestination: 1,
				HeavyItems:        2,
				DistanceKm:        150,
				PeakSeason:        true,
			},
			// 8.0 + 1.0 + 3.0 + 1.0 = 13.0 hours at 180*1.2, plus 150*0.72 fuel
			wantMovers: 4,
			wantHours:  13.0,
			wantCost:   2916.0,
		},
		{
			name:       "studio",
			req:        MoveRequest{Bedrooms: 0},
			wantMovers: 2,
			wantHours:  4.0,
			wantCost:   600.0,
		},
		{
			name:       "two bedroom",
			req:        MoveRequest{Bedrooms: 2},
			wantMovers: 3,
			wantHours:  6.0,
			wantCost:   1000.0,
		},
		{
			name:       "three bedroom",
			req:        MoveRequest{Bedrooms: 3},
			wantMovers: 4,
			wantHours:  8.0,
			wantCost:   1480.0,
		},
		{
			name:       "four bedroom",
			req:        MoveRequest{Bedrooms: 4},
			wantMovers: 4,
			wantHours:  10.0,
			wantCost:   1840.0,
		},
		{
			name:       "oversized home uses largest tier",
			req:        MoveRequest{Bedrooms: 9},
			wantMovers: 4,
			wantHours:  10.0,
			wantCost:   1840.0,
		},
		{
			name:       "stairs and heavy items",
			req:        MoveRequest{Bedrooms: 2, StairsOrigin: 1, StairsDestination: 2, HeavyItems: 3},
			wantMovers: 3,
			wantHours:  9.0, // 6.0 + 1.5 + 1.5
			wantCost:   1480.0,
		},
		{
			name:       "exactly 100 km keeps flat fuel fee",
			req:        MoveRequest{Bedrooms: 1, DistanceKm: 100},
			wantMovers: 2,
			wantHours:  6.0,
			wantCost:   880.0,
		},
		{
			name:       "peak season small move",
			req:        MoveRequest{Bedrooms: 1, PeakSeason: true},
			wantMovers: 2,
			wantHours:  4.0,
			wantCost:   712.0, // 4 * 168 + 40
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movers, hours, cost := ComputeEstimate(tt.req.Bedrooms, tt.req.StairsOrigin, tt.req.StairsDestination,
				tt.req.HeavyItems, tt.req.DistanceKm, tt.req.PeakSeason)
			if movers != tt.wantMovers {
				t.Errorf("movers = %d, want %d", movers, tt.wantMovers)
			}
			if hours != tt.wantHours {
				t.Errorf("hours = %v, want %v", hours, tt.wantHours)
			}
			if cost != tt.wantCost {
				t.Errorf("cost = %v, want %v", cost, tt.wantCost)
			}

			got := Compute(tt.req)
			if got != (Estimate{Movers: movers, Hours: hours, Cost: cost}) {
				t.Errorf("Compute() = %+v, differs from ComputeEstimate()", got)
			}
		})
	}
}

func TestBaseHoursByTier(t *testing.T) {
	cases := []struct {
		bedrooms   int
		wantMovers int
		wantBase   float64
	}{
		{0, 2, 4.0},
		{1, 2, 4.0},
		{2, 3, 6.0},
		{3, 4, 8.0},
		{4, 4, 10.0},
		{6, 4, 10.0},
		{50, 4, 10.0},
	}
	for _, tc := range cases {
		if got := crewSize(tc.bedrooms); got != tc.wantMovers {
			t.Errorf("crewSize(%d) = %d, want %d", tc.bedrooms, got, tc.wantMovers)
		}
		if got := baseHours(tc.bedrooms); got != tc.wantBase {
			t.Errorf("baseHours(%d) = %v, want %v", tc.bedrooms, got, tc.wantBase)
		}
		// with no adjustments the rounded hours equal the base
		if _, hours, _ := ComputeEstimate(tc.bedrooms, 0, 0, 0, 0, false); hours != tc.wantBase {
			t.Errorf("ComputeEstimate(%d) hours = %v, want %v", tc.bedrooms, hours, tc.wantBase)
		}
	}
}

func TestFuelSurchargeBoundary(t *testing.T) {
	if got := fuelSurcharge(100); got != 40.0 {
		t.Errorf("fuelSurcharge(100) = %v, want 40", got)
	}
	if got, want := fuelSurcharge(100.0001), 100.0001*0.72; got != want {
		t.Errorf("fuelSurcharge(100.0001) = %v, want %v", got, want)
	}
	if got := fuelSurcharge(0); got != 40.0 {
		t.Errorf("fuelSurcharge(0) = %v, want 40", got)
	}
}

func TestComputeEstimate_Monotonic(t *testing.T) {
	base := MoveRequest{Bedrooms: 2, StairsOrigin: 1, StairsDestination: 1, HeavyItems: 1, DistanceKm: 40}

	bumps := map[string]func(r MoveRequest, n int) MoveRequest{
		"heavy items": func(r MoveRequest, n int) MoveRequest { r.HeavyItems += n; return r },
		"distance":    func(r MoveRequest, n int) MoveRequest { r.DistanceKm += 7.5 * float64(n); return r },
		"stairs origin": func(r MoveRequest, n int) MoveRequest {
			r.StairsOrigin += n
			return r
		},
		"stairs destination": func(r MoveRequest, n int) MoveRequest {
			r.StairsDestination += n
			return r
		},
	}

	for name, bump := range bumps {
		t.Run(name, func(t *testing.T) {
			for _, peak := range []bool{false, true} {
				req := base
				req.PeakSeason = peak
				prev := Compute(req)
				for i := 1; i <= 30; i++ {
					next := Compute(bump(req, i))
					if next.Hours < prev.Hours || next.Cost < prev.Cost {
						t.Fatalf("step %d (peak=%v): %+v decreased from %+v", i, peak, next, prev)
					}
					prev = next
				}
			}
		})
	}
}

// Stair counts are summed as floats so the largest ints cannot wrap negative.
func TestComputeEstimate_MonotonicAtMaxInt(t *testing.T) {
	steps := []MoveRequest{
		{Bedrooms: 1, StairsOrigin: math.MaxInt - 1},
		{Bedrooms: 1, StairsOrigin: math.MaxInt},
		{Bedrooms: 1, StairsOrigin: math.MaxInt, StairsDestination: 1},
		{Bedrooms: 1, StairsOrigin: math.MaxInt, StairsDestination: math.MaxInt},
	}
	prev := Compute(steps[0])
	if prev.Hours <= 0 || prev.Cost <= 0 {
		t.Fatalf("Compute(%+v) = %+v, want positive", steps[0], prev)
	}
	for _, req := range steps[1:] {
		next := Compute(req)
		if next.Hours < prev.Hours || next.Cost < prev.Cost {
			t.Fatalf("Compute(%+v) = %+v decreased from %+v", req, next, prev)
		}
		prev = next
	}
	if b := Explain(steps[3]); b.StairsHours <= 0 {
		t.Errorf("Explain stairs hours = %v, want positive", b.StairsHours)
	}
}

func TestComputeEstimate_PeakAppliesToLabourOnly(t *testing.T) {
	reqs := []MoveRequest{
		{Bedrooms: 1, DistanceKm: 20},
		{Bedrooms: 2, StairsOrigin: 2, HeavyItems: 1, DistanceKm: 95},
		{Bedrooms: 3, StairsOrigin: 1, StairsDestination: 1, HeavyItems: 2, DistanceKm: 150},
		{Bedrooms: 5, HeavyItems: 4, DistanceKm: 420.5},
	}
	for _, req := range reqs {
		offPeak := Compute(req)
		req.PeakSeason = true
		peak := Compute(req)

		fuel := fuelSurcharge(req.DistanceKm)
		want := (offPeak.Cost-fuel)*1.2 + fuel
		// both costs are rounded to cents independently
		if math.Abs(peak.Cost-want) > 0.02 {
			t.Errorf("%+v: peak cost = %v, want about %v", req, peak.Cost, want)
		}
		if peak.Hours != offPeak.Hours || peak.Movers != offPeak.Movers {
			t.Errorf("%+v: peak season changed hours or crew: %+v vs %+v", req, peak, offPeak)
		}
	}
}

func TestComputeEstimate_Idempotent(t *testing.T) {
	req := MoveRequest{Bedrooms: 3, StairsOrigin: 2, StairsDestination: 3, HeavyItems: 5, DistanceKm: 123.456, PeakSeason: true}
	first := Compute(req)
	for i := 0; i < 100; i++ {
		if got := Compute(req); got != first {
			t.Fatalf("call %d returned %+v, first call returned %+v", i, got, first)
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   float64
	}{
		{4.4000000000000004, 1, 4.4},
		{2.675, 2, 2.67},   // stored as 2.67499999...
		{1.005, 2, 1.0},    // stored as 1.00499999...
		{0.125, 2, 0.12},   // exact tie rounds to even
		{0.375, 2, 0.38},   // exact tie rounds to even
		{656.0000000000001, 2, 656.0},
		{12.96, 1, 13.0},
	}
	for _, tc := range cases {
		if got := roundTo(tc.v, tc.places); got != tc.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tc.v, tc.places, got, tc.want)
		}
	}
}

func TestExplain(t *testing.T) {
	b := Explain(MoveRequest{Bedrooms: 3, StairsOrigin: 1, StairsDestination: 1, HeavyItems: 2, DistanceKm: 150, PeakSeason: true})
	want := Breakdown{
		BaseHours:     8.0,
		HeavyItemHrs:  1.0,
		TravelHours:   3.0,
		StairsHours:   1.0,
		HourlyRate:    216.0,
		LabourCost:    2808.0,
		FuelSurcharge: 108.0,
	}
	if b != want {
		t.Errorf("Explain() = %+v, want %+v", b, want)
	}
}

func TestService_Quote(t *testing.T) {
	s := NewService(nil)
	req := MoveRequest{Bedrooms: 1, DistanceKm: 20}
	q := s.Quote(context.Background(), req)
	if q.MoveRequest != req {
		t.Errorf("quote did not echo request: %+v", q.MoveRequest)
	}
	if q.Estimate != (Estimate{Movers: 2, Hours: 4.4, Cost: 656.0}) {
		t.Errorf("quote estimate = %+v", q.Estimate)
	}
	if q.Currency != Currency {
		t.Errorf("currency = %q, want %q", q.Currency, Currency)
	}
}
