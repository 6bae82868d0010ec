package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

func validWorker(id string) models.Worker {
	return models.Worker{
		ID:              id,
		Name:            "Alice",
		Licenses:        []models.LicenseClass{models.LicenseB},
		ExperienceLevel: 2,
		AvailableDates:  []models.Date{"2026-07-01", "2026-07-02"},
	}
}

func validEvent(id string) models.Event {
	return models.Event{
		ID:              id,
		Name:            "Stadtfest",
		RequiredDates:   []models.Date{"2026-07-04"},
		RequiredWorkers: 2,
	}
}

func TestAddEventGeneratesID(t *testing.T) {
	s := New()

	ev, err := s.AddEvent(models.Event{Name: "Stadtfest", RequiredDates: []models.Date{"2026-07-04"}})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, models.DefaultWorkersPerStand, ev.WorkersPerStand)
	assert.Equal(t, models.DefaultPriority, ev.Priority)
}

func TestAddEventDuplicateID(t *testing.T) {
	s := New()

	_, err := s.AddEvent(validEvent("e1"))
	require.NoError(t, err)

	_, err = s.AddEvent(validEvent("e1"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestAddEventRejectsInvalid(t *testing.T) {
	s := New()

	ev := validEvent("e1")
	ev.RequiredWorkers = -1
	_, err := s.AddEvent(ev)
	assert.Error(t, err)

	w := validWorker("w1")
	w.ExperienceLevel = 0
	_, err = s.AddWorker(w)
	assert.Error(t, err)
}

func TestUpdateEventUnknown(t *testing.T) {
	s := New()

	_, err := s.UpdateEvent(validEvent("missing"))
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestUpdateWorkerKeepsLicenseSet(t *testing.T) {
	s := New()

	w := validWorker("w1")
	w.Licenses = []models.LicenseClass{models.LicenseB, models.LicenseBE}
	_, err := s.AddWorker(w)
	require.NoError(t, err)

	// A full-record replace must not collapse the license set to one class.
	w.Name = "Alice Meyer"
	updated, err := s.UpdateWorker(w)
	require.NoError(t, err)
	assert.Equal(t, []models.LicenseClass{models.LicenseB, models.LicenseBE}, updated.Licenses)

	stored, err := s.Worker("w1")
	require.NoError(t, err)
	assert.Equal(t, []models.LicenseClass{models.LicenseB, models.LicenseBE}, stored.Licenses)
	assert.Equal(t, "Alice Meyer", stored.Name)
}

func TestDeleteWorker(t *testing.T) {
	s := New()

	_, err := s.AddWorker(validWorker("w1"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteWorker("w1"))
	_, err = s.Worker("w1")
	assert.ErrorIs(t, err, ErrWorkerNotFound)
	assert.ErrorIs(t, s.DeleteWorker("w1"), ErrWorkerNotFound)
}

func TestEventsSortedByFirstDate(t *testing.T) {
	s := New()

	late := validEvent("late")
	late.RequiredDates = []models.Date{"2026-07-20"}
	early := validEvent("early")
	early.RequiredDates = []models.Date{"2026-07-01"}
	undated := validEvent("undated")
	undated.RequiredDates = nil

	for _, ev := range []models.Event{late, early, undated} {
		_, err := s.AddEvent(ev)
		require.NoError(t, err)
	}

	got := s.Events()
	require.Len(t, got, 3)
	assert.Equal(t, "undated", got[0].ID)
	assert.Equal(t, "early", got[1].ID)
	assert.Equal(t, "late", got[2].ID)
}

func TestUpdateAvailability(t *testing.T) {
	s := New()

	_, err := s.AddWorker(validWorker("w1"))
	require.NoError(t, err)

	w, err := s.UpdateAvailability("w1",
		[]models.Date{"2026-07-03", "2026-07-02"},
		[]models.Date{"2026-07-01"})
	require.NoError(t, err)
	assert.Equal(t, []models.Date{"2026-07-02", "2026-07-03"}, w.AvailableDates)

	// A date both added and removed ends up removed.
	w, err = s.UpdateAvailability("w1", []models.Date{"2026-07-05"}, []models.Date{"2026-07-05"})
	require.NoError(t, err)
	assert.Equal(t, []models.Date{"2026-07-02", "2026-07-03"}, w.AvailableDates)

	_, err = s.UpdateAvailability("w1", []models.Date{"not a date"}, nil)
	assert.Error(t, err)

	_, err = s.UpdateAvailability("missing", nil, nil)
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestSnapshotIsolated(t *testing.T) {
	s := New()

	_, err := s.AddEvent(validEvent("e1"))
	require.NoError(t, err)
	_, err = s.AddWorker(validWorker("w1"))
	require.NoError(t, err)

	events, workers := s.Snapshot()
	require.Len(t, events, 1)
	require.Len(t, workers, 1)

	// Mutating the snapshot must not reach the store.
	events[0].RequiredDates[0] = "2099-01-01"
	workers[0].Licenses[0] = models.LicenseBE

	stored, err := s.Event("e1")
	require.NoError(t, err)
	assert.Equal(t, models.Date("2026-07-04"), stored.RequiredDates[0])

	storedWorker, err := s.Worker("w1")
	require.NoError(t, err)
	assert.Equal(t, models.LicenseB, storedWorker.Licenses[0])

	// Later store edits must not reach the snapshot.
	require.NoError(t, s.DeleteWorker("w1"))
	assert.Len(t, workers, 1)
}

func TestSeedDemo(t *testing.T) {
	s := New()

	require.NoError(t, s.SeedDemo())
	assert.Len(t, s.Events(), 2)
	assert.Len(t, s.Workers(), 5)

	assert.ErrorIs(t, s.SeedDemo(), ErrDuplicateID)
}
