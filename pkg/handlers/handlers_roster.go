package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/store"
)

// eventRequest is the create/update payload for events. Besides the record
// itself it carries the entry-form conveniences of the original tool: a
// single date, and hotel night flags that widen the date list by one day on
// either side.
type eventRequest struct {
	models.Event
	Date        models.Date `json:"date"`
	HotelBefore bool        `json:"hotel_before"`
	HotelAfter  bool        `json:"hotel_after"`
}

func (req *eventRequest) toEvent() (models.Event, error) {
	ev := req.Event
	if len(ev.RequiredDates) == 0 && req.Date != "" {
		ev.RequiredDates = []models.Date{req.Date}
	}
	if req.HotelBefore || req.HotelAfter {
		expanded, err := expandHotelDates(ev.RequiredDates, req.HotelBefore, req.HotelAfter)
		if err != nil {
			return models.Event{}, err
		}
		ev.RequiredDates = expanded
	}
	return ev, nil
}

// expandHotelDates adds the day before the first date and the day after the
// last one. Workers staying at a hotel are blocked on the travel days too.
func expandHotelDates(dates []models.Date, before, after bool) ([]models.Date, error) {
	if len(dates) == 0 {
		return dates, nil
	}
	sorted := models.NormalizeDates(dates)
	out := append([]models.Date(nil), sorted...)
	if before {
		t, err := sorted[0].Time()
		if err != nil {
			return nil, err
		}
		out = append(out, models.DateOf(t.AddDate(0, 0, -1)))
	}
	if after {
		t, err := sorted[len(sorted)-1].Time()
		if err != nil {
			return nil, err
		}
		out = append(out, models.DateOf(t.AddDate(0, 0, 1)))
	}
	return models.NormalizeDates(out), nil
}

// storeError maps store errors onto HTTP statuses.
func (h *Handler) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrEventNotFound), errors.Is(err, store.ErrWorkerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// ListEvents returns all stored events, earliest first.
func (h *Handler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": h.Store.Events()})
}

// GetEvent returns a single event
func (h *Handler) GetEvent(c *gin.Context) {
	ev, err := h.Store.Event(c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// CreateEvent stores a new event
func (h *Handler) CreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev, err := req.toEvent()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Store.AddEvent(ev)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateEvent replaces a stored event with the submitted record
func (h *Handler) UpdateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev, err := req.toEvent()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev.ID = c.Param("id")

	updated, err := h.Store.UpdateEvent(ev)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEvent removes an event
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.Store.DeleteEvent(c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// ListWorkers returns all stored workers, sorted by name.
func (h *Handler) ListWorkers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workers": h.Store.Workers()})
}

// GetWorker returns a single worker
func (h *Handler) GetWorker(c *gin.Context) {
	w, err := h.Store.Worker(c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// CreateWorker stores a new worker
func (h *Handler) CreateWorker(c *gin.Context) {
	var w models.Worker
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Store.AddWorker(w)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateWorker replaces a stored worker with the submitted record. The
// submitted license set is stored as is; holding several classes at once
// survives an edit.
func (h *Handler) UpdateWorker(c *gin.Context) {
	var w models.Worker
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w.ID = c.Param("id")

	updated, err := h.Store.UpdateWorker(w)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteWorker removes a worker
func (h *Handler) DeleteWorker(c *gin.Context) {
	if err := h.Store.DeleteWorker(c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted"})
}

// UpdateAvailability adds and removes available dates on a worker
func (h *Handler) UpdateAvailability(c *gin.Context) {
	var req struct {
		Add    []models.Date `json:"add"`
		Remove []models.Date `json:"remove"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.Store.UpdateAvailability(c.Param("id"), req.Add, req.Remove)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}
