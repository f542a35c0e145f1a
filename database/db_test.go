package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/services"
)

func sampleItinerary(t *testing.T) *services.Itinerary {
	t.Helper()
	start, err := services.ParseDate("2025-06-01")
	require.NoError(t, err)

	return &services.Itinerary{
		Location:    "Lisbon",
		Interests:   "food",
		Budget:      5000,
		Days:        1,
		TravelStyle: "budget",
		StartDate:   start,
		Description: services.Describe("Lisbon", "food", 1, "budget", "walking", "hostel"),
		Allocation:  services.AllocateBudget(5000, 1),
		Plans: []services.DayPlan{{
			Date:          start,
			Accommodation: services.Accommodation{Name: "hostel", CostPerNight: 1600, Comfort: "basic"},
			Meals: []services.Meal{
				{Meal: "breakfast", Type: "street_food", Cost: 400},
				{Meal: "lunch", Type: "budget_restaurant", Cost: 800},
				{Meal: "dinner", Type: "mid_range_restaurant", Cost: 1200},
			},
			Activities: []services.Activity{{
				TimeSlot: "Morning", Name: "City Museum", Lat: 38.74, Lon: -9.12, EstimatedCost: 500,
				Transport: services.Transport{Mode: "walking", Cost: 50, TimeMinutes: 30},
			}},
		}},
		Coordinates:        services.Coordinates{Lat: 38.72, Lon: -9.14},
		PreferredTransport: "walking",
		PreferredStay:      "hostel",
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(sampleItinerary(t))

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 4550.0, s.TotalCost)
	assert.Equal(t, 450.0, s.RemainingBudget)
	assert.NotEqual(t, s.ID, NewSession(sampleItinerary(t)).ID)
}

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	s := NewSession(sampleItinerary(t))
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, store.Ping(ctx))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	old := NewSession(sampleItinerary(t))
	require.NoError(t, store.Save(ctx, old))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	fresh := NewSession(sampleItinerary(t))
	require.NoError(t, store.Save(ctx, fresh))
	assert.Len(t, store.sessions, 1)
}

func TestMemoryStore_RejectsEmptyID(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	assert.Error(t, store.Save(context.Background(), &Session{}))
	assert.Error(t, store.Save(context.Background(), nil))
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	store := NewRedisStore(client, 2*time.Hour)
	require.NoError(t, store.Ping(ctx))

	s := NewSession(sampleItinerary(t))
	s.PDFData = []byte("%PDF-1.3 test")
	require.NoError(t, store.Save(ctx, s))

	assert.True(t, mr.Exists("session:"+s.ID))
	assert.Equal(t, 2*time.Hour, mr.TTL("session:"+s.ID))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.Itinerary, got.Itinerary)
	assert.Equal(t, s.TotalCost, got.TotalCost)
	assert.Equal(t, s.PDFData, got.PDFData)
	assert.WithinDuration(t, s.CreatedAt, got.CreatedAt, time.Second)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	mr.FastForward(3 * time.Hour)
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Corrupt(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set("session:bad", "{not json"))
	_, err = NewRedisStore(client, time.Hour).Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}
