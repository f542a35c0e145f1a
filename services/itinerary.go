package services

import (
	"encoding/json"
	"fmt"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day at UTC midnight.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return Date{t}, nil
}

// Today returns the current calendar day.
func Today() Date {
	return NewDate(time.Now())
}

// AddDays moves the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Coordinates is a latitude/longitude pair. It travels as [lat, lon].
type Coordinates struct {
	Lat float64
	Lon float64
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lon})
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinates: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinates: expected [lat, lon], got %d values", len(pair))
	}
	c.Lat, c.Lon = pair[0], pair[1]
	return nil
}

// Place is a named point of interest near the destination.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type Transport struct {
	Mode        string  `json:"mode"`
	Cost        float64 `json:"cost"`
	TimeMinutes int     `json:"time_minutes"`
}

// Activity is one visit to a Place. Lat/Lon are copied from the Place.
type Activity struct {
	TimeSlot      string    `json:"time_slot"`
	Name          string    `json:"name"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	EstimatedCost float64   `json:"estimated_cost"`
	Transport     Transport `json:"transport"`
}

type Meal struct {
	Meal string  `json:"meal"`
	Type string  `json:"type"`
	Cost float64 `json:"cost"`
}

type Accommodation struct {
	Name         string  `json:"name"`
	CostPerNight float64 `json:"cost_per_night"`
	Comfort      string  `json:"comfort"`
}

// DayPlan always has one accommodation and three meals. Activities never
// outnumber the sampled place pool.
type DayPlan struct {
	Date          Date          `json:"date"`
	Accommodation Accommodation `json:"accommodation"`
	Meals         []Meal        `json:"meals"`
	Activities    []Activity    `json:"activities"`
}

// Itinerary is the root aggregate returned by Planner.Build. len(Plans) == Days.
type Itinerary struct {
	Location           string           `json:"location"`
	Interests          string           `json:"interests"`
	Budget             float64          `json:"budget"`
	Days               int              `json:"days"`
	TravelStyle        string           `json:"travel_style"`
	StartDate          Date             `json:"start_date"`
	Description        string           `json:"ai_description"`
	Allocation         BudgetAllocation `json:"daily_budget_allocation"`
	Plans              []DayPlan        `json:"itinerary"`
	Coordinates        Coordinates      `json:"coordinates"`
	PreferredTransport string           `json:"preferred_transport"`
	PreferredStay      string           `json:"preferred_stay"`
}
