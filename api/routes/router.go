// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"wayfinder/internal/analytics"
	"wayfinder/internal/assistant"
	"wayfinder/internal/maprender"
	"wayfinder/internal/session"
	"wayfinder/internal/shared/config"
	"wayfinder/internal/speech"
	"wayfinder/internal/venue"
	"wayfinder/pkg/cache"
	"wayfinder/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	venues    venue.Service
	relay     *speech.Relay
	publisher analytics.Publisher

	// Built during setup; the assistant and map routes reuse it.
	sessionService session.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, venues venue.Service, relay *speech.Relay, publisher analytics.Publisher) *Router {
	return &Router{
		config:    cfg,
		venues:    venues,
		relay:     relay,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupVenueRoutes(api)

		// Session routes come before assistant/map routes so the shared
		// session service exists when they wire up.
		r.setupSessionRoutes(api)

		r.setupAssistantRoutes(api)
		r.setupMapRoutes(api)
		r.setupSpeechRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		v := r.venues.Venue(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"venue":     v.Name,
			"locations": len(v.Locations),
			"timestamp": time.Now(),
			"service":   "wayfinder-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"redis":       cache.IsInitialized(),
			"timestamp":   time.Now(),
		})
	})
}

// setupVenueRoutes configures venue data routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueController := venue.NewController(r.venues)
	venue.SetupVenueRoutes(rg, venueController)
}

// setupSessionRoutes configures UI session routes
func (r *Router) setupSessionRoutes(rg *gin.RouterGroup) {
	sessionRepo := session.NewMemoryRepository(session.DefaultTTL)
	r.sessionService = session.NewService(sessionRepo, r.venues)
	sessionController := session.NewController(r.sessionService)

	session.SetupSessionRoutes(rg, sessionController)
}

// setupAssistantRoutes configures the query resolver routes
func (r *Router) setupAssistantRoutes(rg *gin.RouterGroup) {
	assistantService := assistant.NewService(r.venues, r.sessionService, r.relay,
		r.publisher, r.config.Assistant, logger.GetDefault())
	assistantController := assistant.NewController(assistantService)

	assistant.SetupAssistantRoutes(rg, assistantController)
}

// setupMapRoutes configures the server-rendered map routes
func (r *Router) setupMapRoutes(rg *gin.RouterGroup) {
	mapService := maprender.NewService(r.venues, r.sessionService)
	mapController := maprender.NewController(mapService)

	maprender.SetupMapRoutes(rg, mapController)
}

// setupSpeechRoutes configures the text-to-speech proxy routes
func (r *Router) setupSpeechRoutes(rg *gin.RouterGroup) {
	speechClient := speech.NewElevenLabsClient(r.config.Speech.BaseURL,
		r.config.Speech.APIKey, r.config.Speech.DefaultVoiceID)
	speechService := speech.NewService(speechClient, cache.NewService(cache.Client()), logger.GetDefault())
	speechController := speech.NewController(speechService)

	speech.SetupSpeechRoutes(rg, speechController)
}
