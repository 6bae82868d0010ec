package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/database"
)

// GetMyUsage returns usage stats for the authenticated API key
func (h *Handler) GetMyUsage(c *gin.Context) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	var usage []database.APIUsage
	if err := h.DB.Where("key_id = ?", apiKey.ID).Order("date desc").Limit(30).Find(&usage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}

	// Calculate totals
	var totalRequests, totalEvents, totalWorkers int64
	for _, u := range usage {
		totalRequests += int64(u.RequestCount)
		totalEvents += int64(u.TotalEvents)
		totalWorkers += int64(u.TotalWorkers)
	}

	c.JSON(http.StatusOK, gin.H{
		"key_name":      apiKey.Name,
		"rate_limit":    apiKey.RateLimit,
		"usage_history": usage,
		"totals": gin.H{
			"requests": totalRequests,
			"events":   totalEvents,
			"workers":  totalWorkers,
		},
	})
}
