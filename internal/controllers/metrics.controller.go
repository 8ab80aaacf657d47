package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hwpanel/internal/services"
)

// GetSnapshot returns the latest collected hardware snapshot.
func GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, services.CurrentSnapshot())
}

// GetHistory returns snapshots from the recent window. The window is given
// as a duration string, defaulting to five minutes.
func GetHistory(c *gin.Context) {
	window := 5 * time.Minute
	if raw := c.Query("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window: " + err.Error()})
			return
		}
		window = parsed
	}
	c.JSON(http.StatusOK, services.GetHistory(window))
}

// GetHealth is a liveness probe.
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
