package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/services"
)

// Map returns the marker data for a stored itinerary.
func (h *Handler) Map(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.BuildMapView(s.Itinerary))
}

// MapHTML serves a standalone Leaflet page with one pin per activity.
func (h *Handler) MapHTML(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := services.RenderMapHTML(c.Writer, services.BuildMapView(s.Itinerary)); err != nil {
		h.logger.Error("map render failed", map[string]interface{}{"session": s.ID, "error": err.Error()})
	}
}

// Catalog lists the option tables and form constraints, which is everything
// a client needs to draw the input form.
func (h *Handler) Catalog(c *gin.Context) {
	catalog := h.planner.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"transport":     catalog.Options(services.CategoryTransport),
		"accommodation": catalog.Options(services.CategoryAccommodation),
		"food":          catalog.Options(services.CategoryFood),
		"travel_styles": services.TravelStyles,
		"limits": gin.H{
			"min_budget": h.limits.MinBudget,
			"max_budget": h.limits.MaxBudget,
			"min_days":   h.limits.MinDays,
			"max_days":   h.limits.MaxDays,
		},
		"defaults": h.defaults,
	})
}
