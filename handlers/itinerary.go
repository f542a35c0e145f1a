package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/database"
	"tripplanner/services"
)

type GenerateRequest struct {
	Location           string  `json:"location" binding:"required"`
	Interests          string  `json:"interests"`
	Budget             float64 `json:"budget"`
	Days               int     `json:"days"`
	TravelStyle        string  `json:"travel_style"`
	StartDate          string  `json:"start_date"`
	PreferredTransport string  `json:"preferred_transport"`
	PreferredStay      string  `json:"preferred_stay"`
}

type ItineraryResponse struct {
	SessionID       string              `json:"session_id"`
	Itinerary       *services.Itinerary `json:"itinerary"`
	TotalCost       float64             `json:"total_cost"`
	RemainingBudget float64             `json:"remaining_budget"`
	JSONURL         string              `json:"json_url"`
	PDFURL          string              `json:"pdf_url"`
	MapURL          string              `json:"map_url"`
}

func newItineraryResponse(s *database.Session) ItineraryResponse {
	base := "/api/itinerary/" + s.ID
	return ItineraryResponse{
		SessionID:       s.ID,
		Itinerary:       s.Itinerary,
		TotalCost:       s.TotalCost,
		RemainingBudget: s.RemainingBudget,
		JSONURL:         base + "/json",
		PDFURL:          base + "/pdf",
		MapURL:          base + "/map.html",
	}
}

// toTripRequest applies form defaults and checks input constraints.
func (h *Handler) toTripRequest(req GenerateRequest) (services.TripRequest, error) {
	trip := services.TripRequest{
		Location:           req.Location,
		Interests:          req.Interests,
		Budget:             req.Budget,
		Days:               req.Days,
		TravelStyle:        req.TravelStyle,
		PreferredTransport: req.PreferredTransport,
		PreferredStay:      req.PreferredStay,
	}
	if trip.Budget == 0 {
		trip.Budget = h.defaults.Budget
	}
	if trip.Days == 0 {
		trip.Days = h.defaults.Days
	}
	if req.StartDate != "" {
		d, err := services.ParseDate(req.StartDate)
		if err != nil {
			return trip, &services.ValidationError{Field: "start_date", Message: "use YYYY-MM-DD"}
		}
		trip.StartDate = d
	}

	trip.ApplyDefaults()
	return trip, trip.Validate(h.limits, h.planner.Catalog())
}

// Generate builds a new itinerary and stores it as a session.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error(), "code": "INVALID_REQUEST"})
		return
	}

	trip, err := h.toTripRequest(req)
	if err != nil {
		respondValidation(c, err)
		return
	}

	it, err := h.planner.Build(c.Request.Context(), trip)
	if err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": services.ErrLocationNotFound.Error()})
			return
		}
		h.logger.Error("itinerary build failed", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build itinerary"})
		return
	}

	h.saveSession(c, database.NewSession(it), http.StatusOK)
}

// Import turns an uploaded itinerary document into a new session.
func (h *Handler) Import(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is empty", "code": services.ErrInvalidDocument.Error()})
		return
	}

	it, err := services.ImportJSON(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": services.ErrInvalidDocument.Error()})
		return
	}

	h.saveSession(c, database.NewSession(it), http.StatusCreated)
}

// Get returns a stored session.
func (h *Handler) Get(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newItineraryResponse(s))
}

// saveSession renders the PDF up front so downloads are instant, then
// stores the session. A failed render is retried on download.
func (h *Handler) saveSession(c *gin.Context, s *database.Session, status int) {
	pdfBytes, err := services.GeneratePDFBytes(s.Itinerary)
	if err != nil {
		h.logger.Warn("PDF generation failed, deferring to download", map[string]interface{}{
			"session": s.ID,
			"error":   err.Error(),
		})
	} else {
		s.PDFData = pdfBytes
	}

	if err := h.store.Save(c.Request.Context(), s); err != nil {
		h.logger.Error("failed to save session", map[string]interface{}{
			"session": s.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save itinerary"})
		return
	}

	h.logger.Info("itinerary stored", map[string]interface{}{
		"session":  s.ID,
		"location": s.Itinerary.Location,
		"days":     s.Itinerary.Days,
		"pdfBytes": len(s.PDFData),
	})
	c.JSON(status, newItineraryResponse(s))
}

func (h *Handler) loadSession(c *gin.Context) (*database.Session, bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing itinerary ID"})
		return nil, false
	}

	s, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, database.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found", "code": database.ErrSessionNotFound.Error()})
		return nil, false
	}
	if err != nil {
		h.logger.Error("failed to load session", map[string]interface{}{"session": id, "error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load itinerary"})
		return nil, false
	}
	return s, true
}

func respondValidation(c *gin.Context, err error) {
	body := gin.H{"error": err.Error(), "code": services.ErrInvalidRequest.Error()}
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		body["field"] = vErr.Field
	}
	c.JSON(http.StatusBadRequest, body)
}
