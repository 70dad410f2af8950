package api

import (
	"net/http"

	"reelsmith/keywords"

	"github.com/gin-gonic/gin"
)

// RegisterKeywordRoutes registers the keyword extraction endpoint.
func RegisterKeywordRoutes(r *gin.Engine, extractor keywords.Extractor) {
	r.POST("/api/keywords", handleKeywordExtract(extractor))
}

type keywordRequest struct {
	Quote string `json:"quote" binding:"required"`
}

// handleKeywordExtract suggests search keywords for a quote.
// POST /api/keywords {"quote": "..."}
func handleKeywordExtract(extractor keywords.Extractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req keywordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quote is required"})
			return
		}

		words, err := extractor.Extract(c.Request.Context(), req.Quote)
		if err != nil {
			// The heuristic always works; degrade rather than fail the call.
			words = keywords.Fallback(req.Quote)
		}
		c.JSON(http.StatusOK, gin.H{
			"keywords": words,
			"model":    extractor.ModelName(),
		})
	}
}
