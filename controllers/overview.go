package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artwala-io/gateway/configs"
	"artwala-io/gateway/helper"
	"artwala-io/gateway/services"
)

// GetOverview serves the combined dashboard: all five collections behind a
// joined fetch, swapped wholesale for the demo dataset when the join fails
// under the demo fallback policy.
// GET /api/overview
func GetOverview(client *services.Client, fallback configs.FallbackPolicy, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		overview := services.FetchOverview(c.Request.Context(), client, fallback, log)

		message := "ArtWala overview"
		if overview.DemoMode {
			message = "ArtWala overview (demo mode)"
		}

		helper.HandleSuccess(c, http.StatusOK, message, gin.H{
			"summary": gin.H{
				"products":   len(overview.Products),
				"artists":    len(overview.Artists),
				"categories": len(overview.Categories),
				"chapters":   len(overview.Chapters),
				"posts":      len(overview.Posts),
			},
			"overview": overview,
		})
	}
}
