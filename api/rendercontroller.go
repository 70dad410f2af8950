package api

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"net/http"

	"reelsmith/jobs"
	"reelsmith/pipeline"
	"reelsmith/render"
	"reelsmith/types"

	"github.com/gin-gonic/gin"
)

// RegisterRenderRoutes registers the synchronous image and asynchronous
// video render endpoints.
func RegisterRenderRoutes(r *gin.Engine, processor *pipeline.Processor, store *jobs.Store) {
	g := r.Group("/api/render")
	g.GET("/templates", handleTemplateList)
	g.POST("/image", handleRenderImage(processor))
	g.POST("/video", handleRenderVideo(processor, store))
}

// handleTemplateList lists the selectable templates with their descriptions.
// GET /api/render/templates
func handleTemplateList(c *gin.Context) {
	names := render.TemplateNames()
	out := make([]gin.H, 0, len(names))
	for _, name := range names {
		t := render.LookupTemplate(name)
		out = append(out, gin.H{"name": t.Name, "description": t.Description})
	}
	c.JSON(http.StatusOK, gin.H{"templates": out})
}

// handleRenderImage renders the poster frame and returns it as PNG.
// POST /api/render/image
func handleRenderImage(processor *pipeline.Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RenderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid render request"})
			return
		}

		img, err := processor.RenderImage(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	}
}

// handleRenderVideo queues a video render and returns 202 with the job ID.
// The job runs in the background; clients poll /api/jobs/:id.
// POST /api/render/video
func handleRenderVideo(processor *pipeline.Processor, store *jobs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RenderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid render request"})
			return
		}
		if req.Text == "" && req.BackgroundURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text or background_url is required"})
			return
		}

		job := store.Create(req)
		log.Printf("📥 Queued render job %s", job.ID())

		go processor.ProcessJob(context.Background(), job)

		c.JSON(http.StatusAccepted, gin.H{
			"id":    job.ID(),
			"state": job.GetState(),
		})
	}
}
