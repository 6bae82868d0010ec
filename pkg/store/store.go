// Package store keeps the event and worker rosters in memory. The planner
// never reads it directly; every planning run works on a Snapshot so a run
// in flight is isolated from concurrent edits.
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

var (
	ErrEventNotFound  = errors.New("store: event not found")
	ErrWorkerNotFound = errors.New("store: worker not found")
	ErrDuplicateID    = errors.New("store: id already in use")
)

// Store is the in-memory roster of events and workers. Safe for concurrent
// use. Records pass in and out by value; callers never share slices or maps
// with the store.
type Store struct {
	mu      sync.RWMutex
	events  map[string]models.Event
	workers map[string]models.Worker
}

// New creates an empty store.
func New() *Store {
	return &Store{
		events:  make(map[string]models.Event),
		workers: make(map[string]models.Worker),
	}
}

// AddEvent normalizes, validates and stores a new event. An empty ID gets a
// generated one; a taken ID is rejected with ErrDuplicateID.
func (s *Store) AddEvent(ev models.Event) (models.Event, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	ev = cloneEvent(ev)
	ev.Normalize()
	if err := ev.Validate(); err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[ev.ID]; exists {
		return models.Event{}, ErrDuplicateID
	}
	s.events[ev.ID] = ev
	return cloneEvent(ev), nil
}

// UpdateEvent replaces the stored event with the given record. Edits are
// full-record replaces; there is no field-level patching.
func (s *Store) UpdateEvent(ev models.Event) (models.Event, error) {
	ev = cloneEvent(ev)
	ev.Normalize()
	if err := ev.Validate(); err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[ev.ID]; !exists {
		return models.Event{}, ErrEventNotFound
	}
	s.events[ev.ID] = ev
	return cloneEvent(ev), nil
}

// DeleteEvent removes the event with the given ID.
func (s *Store) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[id]; !exists {
		return ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

// Event returns the event with the given ID.
func (s *Store) Event(id string) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, exists := s.events[id]
	if !exists {
		return models.Event{}, ErrEventNotFound
	}
	return cloneEvent(ev), nil
}

// Events lists all events ordered by first required date, ties by ID.
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, cloneEvent(ev))
	}
	sort.Slice(out, func(i, j int) bool {
		if a, b := out[i].FirstDate(), out[j].FirstDate(); a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// AddWorker normalizes, validates and stores a new worker. An empty ID gets
// a generated one; a taken ID is rejected with ErrDuplicateID.
func (s *Store) AddWorker(w models.Worker) (models.Worker, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w = cloneWorker(w)
	w.Normalize()
	if err := w.Validate(); err != nil {
		return models.Worker{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.workers[w.ID]; exists {
		return models.Worker{}, ErrDuplicateID
	}
	s.workers[w.ID] = w
	return cloneWorker(w), nil
}

// UpdateWorker replaces the stored worker with the given record. The license
// set is stored exactly as validated; holding B and BE together survives the
// round trip.
func (s *Store) UpdateWorker(w models.Worker) (models.Worker, error) {
	w = cloneWorker(w)
	w.Normalize()
	if err := w.Validate(); err != nil {
		return models.Worker{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.workers[w.ID]; !exists {
		return models.Worker{}, ErrWorkerNotFound
	}
	s.workers[w.ID] = w
	return cloneWorker(w), nil
}

// DeleteWorker removes the worker with the given ID.
func (s *Store) DeleteWorker(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.workers[id]; !exists {
		return ErrWorkerNotFound
	}
	delete(s.workers, id)
	return nil
}

// Worker returns the worker with the given ID.
func (s *Store) Worker(id string) (models.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, exists := s.workers[id]
	if !exists {
		return models.Worker{}, ErrWorkerNotFound
	}
	return cloneWorker(w), nil
}

// Workers lists all workers ordered by name, ties by ID.
func (s *Store) Workers() []models.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Worker, 0, len(s.workers))
	for _, w := range s.workers {
		out = append(out, cloneWorker(w))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// UpdateAvailability adds and removes available dates on a worker. Dates in
// both lists end up removed. The stored set stays sorted and duplicate free.
func (s *Store) UpdateAvailability(id string, add, remove []models.Date) (models.Worker, error) {
	for _, d := range add {
		if err := d.Validate(); err != nil {
			return models.Worker{}, err
		}
	}
	for _, d := range remove {
		if err := d.Validate(); err != nil {
			return models.Worker{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w, exists := s.workers[id]
	if !exists {
		return models.Worker{}, ErrWorkerNotFound
	}

	drop := make(map[models.Date]bool, len(remove))
	for _, d := range remove {
		drop[d] = true
	}
	dates := make([]models.Date, 0, len(w.AvailableDates)+len(add))
	for _, d := range w.AvailableDates {
		if !drop[d] {
			dates = append(dates, d)
		}
	}
	for _, d := range add {
		if !drop[d] {
			dates = append(dates, d)
		}
	}
	w.AvailableDates = models.NormalizeDates(dates)
	s.workers[id] = w
	return cloneWorker(w), nil
}

// Snapshot returns independent copies of both rosters for one planning run.
// Later edits to the store do not leak into a snapshot already handed out.
func (s *Store) Snapshot() ([]models.Event, []models.Worker) {
	return s.Events(), s.Workers()
}

// Load replaces both rosters wholesale, used when booting from a roster
// file. Records must already be normalized and validated.
func (s *Store) Load(events []models.Event, workers []models.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string]models.Event, len(events))
	for _, ev := range events {
		s.events[ev.ID] = cloneEvent(ev)
	}
	s.workers = make(map[string]models.Worker, len(workers))
	for _, w := range workers {
		s.workers[w.ID] = cloneWorker(w)
	}
}

func cloneEvent(ev models.Event) models.Event {
	out := ev
	if ev.RequiredDates != nil {
		out.RequiredDates = append([]models.Date(nil), ev.RequiredDates...)
	}
	if ev.LicenseQuota != nil {
		out.LicenseQuota = make(map[models.LicenseClass]int, len(ev.LicenseQuota))
		for c, n := range ev.LicenseQuota {
			out.LicenseQuota[c] = n
		}
	}
	return out
}

func cloneWorker(w models.Worker) models.Worker {
	out := w
	if w.Licenses != nil {
		out.Licenses = append([]models.LicenseClass(nil), w.Licenses...)
	}
	if w.AvailableDates != nil {
		out.AvailableDates = append([]models.Date(nil), w.AvailableDates...)
	}
	return out
}
