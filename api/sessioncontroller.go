package api

import (
	"net/http"

	"reelsmith/session"
	"reelsmith/types"

	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers session state endpoints.
func RegisterSessionRoutes(r *gin.Engine, store session.Store) {
	g := r.Group("/api/session")
	g.GET("/:id", handleSessionGet(store))
	g.PUT("/:id", handleSessionPut(store))
	g.POST("/:id/select", handleSessionSelect(store))
}

// handleSessionGet returns the session snapshot, empty for unknown IDs.
// GET /api/session/:id
func handleSessionGet(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := store.Load(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// handleSessionPut replaces the session snapshot.
// PUT /api/session/:id
func handleSessionPut(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var state session.State
		if err := c.ShouldBindJSON(&state); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session payload"})
			return
		}
		state.ID = c.Param("id")

		if err := store.Save(c.Request.Context(), &state); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// handleSessionSelect stashes the chosen asset on the session.
// POST /api/session/:id/select
func handleSessionSelect(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var asset types.Asset
		if err := c.ShouldBindJSON(&asset); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset payload"})
			return
		}

		state, err := store.Load(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		state.Selected = &asset

		if err := store.Save(c.Request.Context(), state); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}
