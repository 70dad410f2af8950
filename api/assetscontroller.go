package api

import (
	"net/http"
	"strconv"

	"reelsmith/assets"

	"github.com/gin-gonic/gin"
)

// RegisterAssetRoutes registers asset search and page scraping endpoints.
func RegisterAssetRoutes(r *gin.Engine, fetcher *assets.Fetcher, search *assets.SearchClient) {
	g := r.Group("/api/assets")
	g.GET("/search", handleAssetSearch(search))
	g.POST("/scrape", handlePageScrape(fetcher))
}

// handleAssetSearch proxies a query to the asset search API.
// GET /api/assets/search?q=ocean&type=backgrounds&min_width=1080&limit=12
func handleAssetSearch(search *assets.SearchClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}

		minWidth, _ := strconv.Atoi(c.DefaultQuery("min_width", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

		result, err := search.Search(c.Request.Context(), assets.SearchParams{
			Query:    query,
			Type:     c.Query("type"),
			MinWidth: minWidth,
			Ext:      c.Query("ext"),
			Limit:    limit,
			Quality:  c.Query("quality") == "true",
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

type scrapeRequest struct {
	URL string `json:"url" binding:"required"`
}

// handlePageScrape extracts every image URL from an arbitrary web page.
// POST /api/assets/scrape {"url": "..."}
func handlePageScrape(fetcher *assets.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scrapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}

		urls, err := fetcher.PageImages(c.Request.Context(), req.URL)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"images": urls, "count": len(urls)})
	}
}
