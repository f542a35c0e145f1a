package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/logger"
	"tripplanner/metrics"
)

type stubResolver struct {
	coords Coordinates
	err    error
	calls  int
}

func (s *stubResolver) Resolve(ctx context.Context, location string) (Coordinates, error) {
	s.calls++
	if s.err != nil {
		return Coordinates{}, s.err
	}
	return s.coords, nil
}

var paris = Coordinates{Lat: 48.8566, Lon: 2.3522}

func newTestPlanner(t *testing.T, resolver Resolver, seed uint64) *Planner {
	return NewPlanner(resolver, NewOffsetSampler(), NewCatalog(), NewRandom(seed), logger.NewTestLogger(t))
}

func testRequest() TripRequest {
	return TripRequest{
		Location:           "Paris, France",
		Interests:          "culture, food, nature",
		Budget:             40000,
		Days:               5,
		TravelStyle:        "budget",
		StartDate:          NewDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		PreferredTransport: "bike_rental",
		PreferredStay:      "budget_hotel",
	}
}

func candidateNames() map[string]bool {
	names := map[string]bool{}
	for _, o := range candidateOffsets {
		names[o.name] = true
	}
	return names
}

func TestPlanner_Build_DayPlansMatchDayCount(t *testing.T) {
	for days := 1; days <= 14; days++ {
		t.Run(fmt.Sprintf("%d days", days), func(t *testing.T) {
			p := newTestPlanner(t, &stubResolver{coords: paris}, uint64(days))
			req := testRequest()
			req.Days = days

			it, err := p.Build(context.Background(), req)
			require.NoError(t, err)
			require.NotNil(t, it)

			assert.Equal(t, days, it.Days)
			require.Len(t, it.Plans, days)
			for i, day := range it.Plans {
				assert.Len(t, day.Meals, 3, "day %d", i+1)
				assert.Len(t, day.Activities, 2, "day %d", i+1)
				assert.Equal(t, req.StartDate.AddDays(i), day.Date)
			}
		})
	}
}

func TestPlanner_Build_FixedMealsAndAccommodation(t *testing.T) {
	p := newTestPlanner(t, &stubResolver{coords: paris}, 7)

	it, err := p.Build(context.Background(), testRequest())
	require.NoError(t, err)

	wantMeals := []Meal{
		{Meal: "breakfast", Type: "street_food", Cost: 400},
		{Meal: "lunch", Type: "budget_restaurant", Cost: 800},
		{Meal: "dinner", Type: "mid_range_restaurant", Cost: 1200},
	}
	for _, day := range it.Plans {
		assert.Equal(t, wantMeals, day.Meals)
		assert.Equal(t, Accommodation{Name: "budget_hotel", CostPerNight: 3700, Comfort: "standard"}, day.Accommodation)
	}
}

func TestPlanner_Build_ActivityDraws(t *testing.T) {
	p := newTestPlanner(t, &stubResolver{coords: paris}, 42)
	req := testRequest()
	req.Days = 14

	it, err := p.Build(context.Background(), req)
	require.NoError(t, err)

	known := candidateNames()
	pool := map[string]bool{}
	for _, day := range it.Plans {
		require.Len(t, day.Activities, 2)
		assert.Equal(t, "Morning", day.Activities[0].TimeSlot)
		assert.Equal(t, "Afternoon", day.Activities[1].TimeSlot)
		assert.NotEqual(t, day.Activities[0].Name, day.Activities[1].Name)

		for _, act := range day.Activities {
			assert.True(t, known[act.Name], "unexpected place %q", act.Name)
			pool[act.Name] = true

			assert.GreaterOrEqual(t, act.EstimatedCost, 200.0)
			assert.LessOrEqual(t, act.EstimatedCost, 800.0)
			assert.Equal(t, "bike_rental", act.Transport.Mode)
			assert.GreaterOrEqual(t, act.Transport.Cost, 40.0)
			assert.LessOrEqual(t, act.Transport.Cost, 120.0)
			assert.GreaterOrEqual(t, act.Transport.TimeMinutes, 15)
			assert.LessOrEqual(t, act.Transport.TimeMinutes, 45)
		}
	}
	assert.LessOrEqual(t, len(pool), DefaultPoolSize, "places must come from a single sampled pool")
}

func TestPlanner_Build_UnknownPreferencesFallBack(t *testing.T) {
	p := newTestPlanner(t, &stubResolver{coords: paris}, 3)
	req := testRequest()
	req.PreferredTransport = "teleport"
	req.PreferredStay = "castle"

	it, err := p.Build(context.Background(), req)
	require.NoError(t, err)

	for _, day := range it.Plans {
		assert.Equal(t, Accommodation{Name: "hostel", CostPerNight: 1600, Comfort: "basic"}, day.Accommodation)
		for _, act := range day.Activities {
			assert.Equal(t, Transport{Mode: "public_transport", Cost: 50, TimeMinutes: 30}, act.Transport)
		}
	}
	assert.Equal(t, "teleport", it.PreferredTransport)
	assert.Equal(t, "castle", it.PreferredStay)
}

func TestPlanner_Build_LocationNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"resolver location error", &LocationError{Location: "Atlantis"}},
		{"plain resolver error", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.ItinerariesBuilt.WithLabelValues(metrics.ResultLocationNotFound))
			p := newTestPlanner(t, &stubResolver{err: tt.err}, 1)
			req := testRequest()
			req.Location = "Atlantis"

			it, err := p.Build(context.Background(), req)
			assert.Nil(t, it)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrLocationNotFound)

			var locErr *LocationError
			require.ErrorAs(t, err, &locErr)
			assert.Equal(t, "Atlantis", locErr.Location)
			assert.Equal(t, "could not find coordinates for Atlantis", err.Error())

			after := testutil.ToFloat64(metrics.ItinerariesBuilt.WithLabelValues(metrics.ResultLocationNotFound))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestPlanner_Build_SameSeedSameItinerary(t *testing.T) {
	first, err := newTestPlanner(t, &stubResolver{coords: paris}, 99).Build(context.Background(), testRequest())
	require.NoError(t, err)
	second, err := newTestPlanner(t, &stubResolver{coords: paris}, 99).Build(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanner_Build_DegenerateInputs(t *testing.T) {
	p := newTestPlanner(t, &stubResolver{coords: paris}, 5)
	req := testRequest()
	req.Days = 0
	req.StartDate = Date{}

	it, err := p.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, it.Days)
	require.Len(t, it.Plans, 1)
	assert.Equal(t, Today(), it.StartDate)
	assert.Equal(t, Today(), it.Plans[0].Date)
}

func TestPlanner_Build_DatesCrossMonthEnd(t *testing.T) {
	p := newTestPlanner(t, &stubResolver{coords: paris}, 5)
	req := testRequest()
	req.Days = 3
	req.StartDate = NewDate(time.Date(2024, 2, 28, 15, 30, 0, 0, time.UTC))

	it, err := p.Build(context.Background(), req)
	require.NoError(t, err)

	got := []string{it.Plans[0].Date.String(), it.Plans[1].Date.String(), it.Plans[2].Date.String()}
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, got)
}

func TestPlanner_Build_SmallPool(t *testing.T) {
	p := NewPlanner(&stubResolver{coords: paris}, &OffsetSampler{PoolSize: 1}, NewCatalog(), NewRandom(11), logger.NewNoOpLogger())

	it, err := p.Build(context.Background(), testRequest())
	require.NoError(t, err)

	for _, day := range it.Plans {
		require.Len(t, day.Activities, 1)
		assert.Equal(t, "Morning", day.Activities[0].TimeSlot)
	}
}

func TestPlanner_Build_Metadata(t *testing.T) {
	resolver := &stubResolver{coords: paris}
	p := newTestPlanner(t, resolver, 8)
	req := testRequest()

	it, err := p.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, paris, it.Coordinates)
	assert.Equal(t, AllocateBudget(40000, 5), it.Allocation)
	assert.Equal(t,
		"A 5-day budget trip in Paris, France, exploring culture, food, nature. Preferred transport: bike_rental, Stay: budget_hotel.",
		it.Description)
	assert.Equal(t, "culture, food, nature", it.Interests)
	assert.Equal(t, "budget", it.TravelStyle)
}
