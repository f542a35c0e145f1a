package services

import (
	"fmt"
	"slices"
	"strings"
)

// TravelStyles are the accepted travel style values. The style is echoed into
// the description only.
var TravelStyles = []string{"budget", "comfort", "adventure"}

// Input defaults, matching the first choice offered by the input form.
const (
	DefaultTravelStyle = "budget"
	DefaultTransport   = "walking"
	DefaultStay        = "hostel"
	DefaultInterests   = "culture, food, nature"
)

// Limits bounds the values the input surface accepts.
type Limits struct {
	MinBudget float64
	MaxBudget float64
	MinDays   int
	MaxDays   int
}

// TripRequest carries everything Planner.Build needs.
type TripRequest struct {
	Location           string
	Interests          string
	Budget             float64
	Days               int
	TravelStyle        string
	StartDate          Date
	PreferredTransport string
	PreferredStay      string
}

// ApplyDefaults fills empty optional fields.
func (r *TripRequest) ApplyDefaults() {
	r.Location = strings.TrimSpace(r.Location)
	if strings.TrimSpace(r.Interests) == "" {
		r.Interests = DefaultInterests
	}
	if r.TravelStyle == "" {
		r.TravelStyle = DefaultTravelStyle
	}
	if r.PreferredTransport == "" {
		r.PreferredTransport = DefaultTransport
	}
	if r.PreferredStay == "" {
		r.PreferredStay = DefaultStay
	}
	if r.StartDate.IsZero() {
		r.StartDate = Today()
	}
}

// Validate checks a request against the input surface constraints. The
// planner itself never calls it: Build degrades bad values to defaults.
func (r *TripRequest) Validate(limits Limits, catalog *Catalog) error {
	if strings.TrimSpace(r.Location) == "" {
		return &ValidationError{Field: "location", Message: "destination is required"}
	}
	if r.Budget < limits.MinBudget || r.Budget > limits.MaxBudget {
		return &ValidationError{
			Field:   "budget",
			Message: fmt.Sprintf("must be between %.0f and %.0f", limits.MinBudget, limits.MaxBudget),
		}
	}
	if r.Days < limits.MinDays || r.Days > limits.MaxDays {
		return &ValidationError{
			Field:   "days",
			Message: fmt.Sprintf("must be between %d and %d", limits.MinDays, limits.MaxDays),
		}
	}
	if !slices.Contains(TravelStyles, r.TravelStyle) {
		return &ValidationError{
			Field:   "travel_style",
			Message: "must be one of " + strings.Join(TravelStyles, ", "),
		}
	}
	if !catalog.Has(CategoryTransport, r.PreferredTransport) {
		return &ValidationError{
			Field:   "preferred_transport",
			Message: "must be one of " + strings.Join(catalog.Names(CategoryTransport), ", "),
		}
	}
	if !catalog.Has(CategoryAccommodation, r.PreferredStay) {
		return &ValidationError{
			Field:   "preferred_stay",
			Message: "must be one of " + strings.Join(catalog.Names(CategoryAccommodation), ", "),
		}
	}
	return nil
}
