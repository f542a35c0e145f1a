package handlers

import (
	"tripplanner/database"
	"tripplanner/logger"
	"tripplanner/services"
)

// Defaults are the values the input form preselects.
type Defaults struct {
	Budget float64 `json:"budget"`
	Days   int     `json:"days"`
}

// Handler serves the itinerary API. Sessions live in store until they expire.
type Handler struct {
	planner  *services.Planner
	store    database.Store
	limits   services.Limits
	defaults Defaults
	logger   logger.Logger
}

func New(planner *services.Planner, store database.Store, limits services.Limits, defaults Defaults, log logger.Logger) *Handler {
	return &Handler{
		planner:  planner,
		store:    store,
		limits:   limits,
		defaults: defaults,
		logger:   log.WithFields(map[string]interface{}{"component": "api"}),
	}
}
