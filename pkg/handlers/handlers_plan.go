package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

// ComputePlan runs one planning pass over the stored rosters
func (h *Handler) ComputePlan(c *gin.Context) {
	events, workers := h.Store.Snapshot()
	h.respondWithPlan(c, events, workers)
}

// PreviewPlan runs the planner over rosters carried in the request body,
// leaving the store untouched
func (h *Handler) PreviewPlan(c *gin.Context) {
	var input models.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.NormalizeAndValidate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondWithPlan(c, input.Events, input.Workers)
}

func (h *Handler) respondWithPlan(c *gin.Context, events []models.Event, workers []models.Worker) {
	plan := h.Planner.Plan(events, workers)

	planned, failed := 0, 0
	for _, res := range plan {
		if res.Status == models.PlanOK {
			planned++
		} else {
			failed++
		}
	}

	h.RecordUsage(c, len(events), len(workers))

	logrus.WithFields(logrus.Fields{
		"events":  len(events),
		"workers": len(workers),
		"planned": planned,
		"failed":  failed,
	}).Info("Plan computed")

	c.JSON(http.StatusOK, models.PlanResponse{
		Plan:          plan,
		EventsPlanned: planned,
		EventsFailed:  failed,
	})
}
