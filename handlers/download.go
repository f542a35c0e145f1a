package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/services"
)

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")
}

// DownloadJSON sends the itinerary document.
func (h *Handler) DownloadJSON(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}

	data, err := services.ExportJSON(s.Itinerary)
	if err != nil {
		h.logger.Error("JSON export failed", map[string]interface{}{"session": s.ID, "error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export itinerary"})
		return
	}

	attachment(c, services.ExportFilename(s.Itinerary.Location, "json"))
	c.Data(http.StatusOK, "application/json", data)
}

// DownloadPDF sends the rendered PDF, rendering it now if the eager
// render at generation time failed.
func (h *Handler) DownloadPDF(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}

	if len(s.PDFData) == 0 {
		pdfBytes, err := services.GeneratePDFBytes(s.Itinerary)
		if err != nil {
			h.logger.Error("PDF generation failed", map[string]interface{}{"session": s.ID, "error": err.Error()})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
		s.PDFData = pdfBytes
		if err := h.store.Save(c.Request.Context(), s); err != nil {
			h.logger.Warn("failed to cache PDF", map[string]interface{}{"session": s.ID, "error": err.Error()})
		}
	}

	attachment(c, services.ExportFilename(s.Itinerary.Location, "pdf"))
	c.Data(http.StatusOK, "application/pdf", s.PDFData)
}

// Health reports liveness plus session store reachability.
func (h *Handler) Health(c *gin.Context) {
	storeStatus := "ok"
	if err := h.store.Ping(c.Request.Context()); err != nil {
		storeStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Budget Trip Planner API",
		"store":   storeStatus,
	})
}
