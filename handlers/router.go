package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripplanner/logger"
)

// NewRouter wires the API routes, CORS for the given frontend origins,
// request logging and the Prometheus endpoint.
func NewRouter(h *Handler, allowedOrigins []string, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))

	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/catalog", h.Catalog)
		api.POST("/itinerary", h.Generate)
		api.POST("/itinerary/import", h.Import)
		api.GET("/itinerary/:id", h.Get)
		api.GET("/itinerary/:id/json", h.DownloadJSON)
		api.GET("/itinerary/:id/pdf", h.DownloadPDF)
		api.GET("/itinerary/:id/map", h.Map)
		api.GET("/itinerary/:id/map.html", h.MapHTML)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
