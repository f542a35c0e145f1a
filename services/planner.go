package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tripplanner/logger"
	"tripplanner/metrics"
)

// Fixed per-day meal plan. Meal tiers do not depend on travel style.
var dailyMeals = []struct {
	meal string
	tier string
}{
	{"breakfast", "street_food"},
	{"lunch", "budget_restaurant"},
	{"dinner", "mid_range_restaurant"},
}

const activitiesPerDay = 2

var timeSlots = []string{"Morning", "Afternoon"}

// Draw ranges for activity and transport estimates.
const (
	activityCostMin  = 200
	activityCostMax  = 800
	transportCostMin = 40
	transportCostMax = 120
	transportTimeMin = 15
	transportTimeMax = 45
)

// fallbackTransport is used when the preferred mode is not in the catalog.
var fallbackTransport = Transport{Mode: "public_transport", Cost: 50, TimeMinutes: 30}

// Planner turns a TripRequest into an Itinerary.
type Planner struct {
	resolver Resolver
	sampler  PlaceSampler
	catalog  *Catalog
	logger   logger.Logger

	// mu serializes access to rng, which is not safe for concurrent use.
	mu  sync.Mutex
	rng Random
}

// NewPlanner wires a planner. The resolver is owned by the caller.
func NewPlanner(resolver Resolver, sampler PlaceSampler, catalog *Catalog, rng Random, log logger.Logger) *Planner {
	return &Planner{
		resolver: resolver,
		sampler:  sampler,
		catalog:  catalog,
		rng:      rng,
		logger:   log.WithFields(map[string]interface{}{"component": "planner"}),
	}
}

// Catalog exposes the planner's option tables.
func (p *Planner) Catalog() *Catalog {
	return p.catalog
}

// Build resolves the destination and assembles a day-by-day plan. The only
// error it returns is a *LocationError; no partial itinerary is produced.
func (p *Planner) Build(ctx context.Context, req TripRequest) (*Itinerary, error) {
	start := time.Now()
	defer func() {
		metrics.BuildDuration.Observe(time.Since(start).Seconds())
	}()

	coords, err := p.resolver.Resolve(ctx, req.Location)
	if err != nil {
		metrics.ItinerariesBuilt.WithLabelValues(metrics.ResultLocationNotFound).Inc()
		p.logger.Warn("location could not be resolved", map[string]interface{}{
			"location": req.Location,
			"error":    err.Error(),
		})
		var locErr *LocationError
		if !errors.As(err, &locErr) {
			err = &LocationError{Location: req.Location, Err: err}
		}
		return nil, err
	}

	days := req.Days
	if days < 1 {
		days = 1
	}
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = Today()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	allocation := AllocateBudget(req.Budget, days)
	pool := p.sampler.Sample(coords, p.rng)

	plans := make([]DayPlan, 0, days)
	current := startDate
	for d := 0; d < days; d++ {
		plans = append(plans, DayPlan{
			Date:          current,
			Accommodation: p.selectAccommodation(req.PreferredStay),
			Meals:         p.dailyMeals(),
			Activities:    p.pickActivities(pool, req.PreferredTransport),
		})
		current = current.AddDays(1)
	}

	it := &Itinerary{
		Location:           req.Location,
		Interests:          req.Interests,
		Budget:             req.Budget,
		Days:               days,
		TravelStyle:        req.TravelStyle,
		StartDate:          startDate,
		Description:        Describe(req.Location, req.Interests, days, req.TravelStyle, req.PreferredTransport, req.PreferredStay),
		Allocation:         allocation,
		Plans:              plans,
		Coordinates:        coords,
		PreferredTransport: req.PreferredTransport,
		PreferredStay:      req.PreferredStay,
	}

	metrics.ItinerariesBuilt.WithLabelValues(metrics.ResultSuccess).Inc()
	p.logger.Info("itinerary built", map[string]interface{}{
		"location":  it.Location,
		"days":      it.Days,
		"places":    len(pool),
		"totalCost": TotalCost(it),
	})
	return it, nil
}

func (p *Planner) selectAccommodation(preferredStay string) Accommodation {
	opt := p.catalog.Lookup(CategoryAccommodation, preferredStay)
	return Accommodation{
		Name:         opt.Name,
		CostPerNight: opt.Cost,
		Comfort:      opt.Tag,
	}
}

func (p *Planner) dailyMeals() []Meal {
	meals := make([]Meal, 0, len(dailyMeals))
	for _, m := range dailyMeals {
		meals = append(meals, Meal{
			Meal: m.meal,
			Type: m.tier,
			Cost: p.catalog.Lookup(CategoryFood, m.tier).Cost,
		})
	}
	return meals
}

func (p *Planner) pickActivities(pool []Place, preferredTransport string) []Activity {
	places := samplePlaces(pool, activitiesPerDay, p.rng)
	activities := make([]Activity, 0, len(places))
	for i, place := range places {
		activities = append(activities, Activity{
			TimeSlot:      timeSlots[i],
			Name:          place.Name,
			Lat:           place.Lat,
			Lon:           place.Lon,
			EstimatedCost: float64(intBetween(p.rng, activityCostMin, activityCostMax)),
			Transport:     p.selectTransport(preferredTransport),
		})
	}
	return activities
}

func (p *Planner) selectTransport(preferredTransport string) Transport {
	if !p.catalog.Has(CategoryTransport, preferredTransport) {
		return fallbackTransport
	}
	return Transport{
		Mode:        preferredTransport,
		Cost:        float64(intBetween(p.rng, transportCostMin, transportCostMax)),
		TimeMinutes: intBetween(p.rng, transportTimeMin, transportTimeMax),
	}
}

// Describe fills the itinerary description template.
func Describe(location, interests string, days int, style, transport, stay string) string {
	return fmt.Sprintf("A %d-day %s trip in %s, exploring %s. Preferred transport: %s, Stay: %s.",
		days, style, location, interests, transport, stay)
}
