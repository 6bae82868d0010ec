package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

// ValidateInput checks an {events, workers} payload without planning it
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	// Basic validation of data structures
	if len(input.Workers) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one worker is required",
		})
		return
	}

	if len(input.Events) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one event is required",
		})
		return
	}

	if err := input.NormalizeAndValidate(); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"event_count":  len(input.Events),
			"worker_count": len(input.Workers),
		},
	})
}
