package api

import (
	"net/http"

	"reelsmith/jobs"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers job polling and artifact download endpoints.
func RegisterJobRoutes(r *gin.Engine, store *jobs.Store) {
	g := r.Group("/api/jobs")
	g.GET("", handleJobList(store))
	g.GET("/:id", handleJobStatus(store))
	g.GET("/:id/download", handleJobDownload(store))
}

// handleJobList lists every job's status snapshot.
// GET /api/jobs
func handleJobList(store *jobs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"jobs": store.Statuses()})
	}
}

// handleJobStatus returns one job's snapshot for polling.
// GET /api/jobs/:id
func handleJobStatus(store *jobs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, ok := store.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusOK, job.GetStatus())
	}
}

// handleJobDownload streams the finished MP4.
// GET /api/jobs/:id/download
func handleJobDownload(store *jobs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, ok := store.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}

		status := job.GetStatus()
		if status.State != jobs.StateComplete || status.OutputPath == "" {
			c.JSON(http.StatusConflict, gin.H{
				"error": "job not complete",
				"state": status.State,
			})
			return
		}

		c.FileAttachment(status.OutputPath, job.ID()+".mp4")
	}
}
