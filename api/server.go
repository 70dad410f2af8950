package api

import (
	"net/http"

	"reelsmith/assets"
	"reelsmith/config"
	"reelsmith/jobs"
	"reelsmith/keywords"
	"reelsmith/pipeline"
	"reelsmith/session"
	"reelsmith/transcript"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Deps are the services the HTTP layer dispatches into.
type Deps struct {
	Fetcher    *assets.Fetcher
	Search     *assets.SearchClient
	Sessions   session.Store
	Extractor  keywords.Extractor
	Transcript *transcript.Service // nil when no YouTube API key is configured
	Jobs       *jobs.Store
	Processor  *pipeline.Processor
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())
	r.Use(rateLimitMiddleware())

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterAssetRoutes(r, deps.Fetcher, deps.Search)
	RegisterKeywordRoutes(r, deps.Extractor)
	RegisterSessionRoutes(r, deps.Sessions)
	RegisterRenderRoutes(r, deps.Processor, deps.Jobs)
	RegisterJobRoutes(r, deps.Jobs)
	RegisterTranscriptRoutes(r, deps.Transcript)
	return r
}

// rateLimitMiddleware applies a process-wide token bucket.
func rateLimitMiddleware() gin.HandlerFunc {
	perMinute := config.GetEnvIntOrDefault("RATE_LIMIT_PER_MINUTE", 120)
	burst := config.GetEnvIntOrDefault("RATE_LIMIT_BURST", 20)
	limiter := rate.NewLimiter(rate.Limit(perMinute)/60, burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded, try again shortly",
			})
			return
		}
		c.Next()
	}
}
