package models

import (
	"fmt"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in ISO YYYY-MM-DD form. Lexicographic order on valid
// dates matches chronological order, so dates sort and compare as plain strings.
type Date string

// ParseDate checks that s is a well-formed YYYY-MM-DD day.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date(s), nil
}

// DateOf formats t as a Date, dropping the time of day.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Validate checks the date is a well-formed YYYY-MM-DD day.
func (d Date) Validate() error {
	_, err := ParseDate(string(d))
	return err
}

// Time returns the date as midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(dateLayout, string(d))
}

// NormalizeDates returns the dates sorted ascending with duplicates removed.
func NormalizeDates(dates []Date) []Date {
	if len(dates) == 0 {
		return nil
	}
	out := make([]Date, len(dates))
	copy(out, dates)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	dedup := out[:1]
	for _, d := range out[1:] {
		if d != dedup[len(dedup)-1] {
			dedup = append(dedup, d)
		}
	}
	return dedup
}

// LicenseClass is a driving-license tier a worker may hold. BE is a superset
// of B: holding BE satisfies a B requirement. LicenseNone is the sentinel for
// quota slots with no license requirement and is satisfied by every worker.
type LicenseClass string

const (
	LicenseBE   LicenseClass = "BE"
	LicenseB    LicenseClass = "B"
	LicenseNone LicenseClass = "none"
)

// LicensePriority lists the classes from most to least restrictive. Quota
// slots are filled in this order so workers who can cover a specific class
// are reserved before generic slots consume them.
var LicensePriority = [...]LicenseClass{LicenseBE, LicenseB, LicenseNone}

// Validate checks the class is a known value.
func (c LicenseClass) Validate() error {
	switch c {
	case LicenseBE, LicenseB, LicenseNone:
		return nil
	default:
		return fmt.Errorf("unknown license class: %q", c)
	}
}

// Experience levels used throughout the roster. Higher is more senior.
const (
	// ExperienceHelper marks workers who assist but carry no responsibility.
	ExperienceHelper = 1
	// ExperienceSelfReliant marks workers who can run an event on their own.
	ExperienceSelfReliant = 2
	// ExperienceEventLeader marks workers who can lead an event and take
	// inexperienced workers along.
	ExperienceEventLeader = 3
)

// Worker is a member of the crew pool.
type Worker struct {
	ID              string         `json:"id" yaml:"id"`
	Name            string         `json:"name" yaml:"name"`
	Licenses        []LicenseClass `json:"licenses" yaml:"licenses"`
	ExperienceLevel int            `json:"experience_level" yaml:"experience_level"`
	AvailableDates  []Date         `json:"available_dates" yaml:"available_dates"`
}

// HasLicense reports whether the worker holds exactly the given class.
// Superset rules (BE covering B) live in the planner's matching predicate.
func (w *Worker) HasLicense(c LicenseClass) bool {
	for _, held := range w.Licenses {
		if held == c {
			return true
		}
	}
	return false
}

// Normalize brings the worker's set-valued fields into canonical form:
// licenses deduplicated keeping first occurrence, available dates sorted
// ascending without duplicates. The license set is never collapsed to a
// single class; a worker may hold B and BE at the same time.
func (w *Worker) Normalize() {
	if len(w.Licenses) > 1 {
		seen := make(map[LicenseClass]bool, len(w.Licenses))
		kept := w.Licenses[:0]
		for _, c := range w.Licenses {
			if !seen[c] {
				seen[c] = true
				kept = append(kept, c)
			}
		}
		w.Licenses = kept
	}
	w.AvailableDates = NormalizeDates(w.AvailableDates)
}

// Validate checks the worker record is complete and well formed.
func (w *Worker) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("worker: id is required")
	}
	if w.Name == "" {
		return fmt.Errorf("worker %s: name is required", w.ID)
	}
	if w.ExperienceLevel < ExperienceHelper {
		return fmt.Errorf("worker %s: experience_level must be >= %d, got %d", w.ID, ExperienceHelper, w.ExperienceLevel)
	}
	seenLic := make(map[LicenseClass]bool, len(w.Licenses))
	for _, c := range w.Licenses {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("worker %s: %w", w.ID, err)
		}
		if c == LicenseNone {
			return fmt.Errorf("worker %s: license class %q is a quota sentinel, not a holdable license", w.ID, c)
		}
		if seenLic[c] {
			return fmt.Errorf("worker %s: duplicate license class %q", w.ID, c)
		}
		seenLic[c] = true
	}
	seenDate := make(map[Date]bool, len(w.AvailableDates))
	for _, d := range w.AvailableDates {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("worker %s: %w", w.ID, err)
		}
		if seenDate[d] {
			return fmt.Errorf("worker %s: duplicate available date %q", w.ID, d)
		}
		seenDate[d] = true
	}
	return nil
}

// Default values applied to events when the caller leaves them unset,
// matching the entry form of the planning tool this service replaced.
const (
	DefaultWorkersPerStand = 2
	DefaultPriority        = 2
)

// Event is a scheduled engagement that needs a crew.
type Event struct {
	ID              string               `json:"id" yaml:"id"`
	Name            string               `json:"name" yaml:"name"`
	Location        string               `json:"location" yaml:"location"`
	RequiredDates   []Date               `json:"required_dates" yaml:"required_dates"`
	RequiredWorkers int                  `json:"required_workers" yaml:"required_workers"`
	StandCount      int                  `json:"stand_count" yaml:"stand_count"`
	WorkersPerStand int                  `json:"workers_per_stand" yaml:"workers_per_stand"`
	LicenseQuota    map[LicenseClass]int `json:"license_quota" yaml:"license_quota"`
	NeedsLeader     bool                 `json:"needs_leader" yaml:"needs_leader"`
	// Priority ranks the event for display (1 = most important, 4 = optional).
	// The planner never consults it.
	Priority int `json:"priority" yaml:"priority"`
}

// EffectiveRequired is the headcount the planner must reach for this event:
// the larger of the requested minimum and the stand-derived requirement.
func (e *Event) EffectiveRequired() int {
	if n := e.StandCount * e.WorkersPerStand; n > e.RequiredWorkers {
		return n
	}
	return e.RequiredWorkers
}

// FirstDate returns the first entry of RequiredDates, or the empty Date for
// events without dates. It is the ordering key of the planning pass; date
// lists are kept sorted on ingest, so the first entry is the earliest.
func (e *Event) FirstDate() Date {
	if len(e.RequiredDates) == 0 {
		return ""
	}
	return e.RequiredDates[0]
}

// Normalize sorts and deduplicates the required dates and fills in the
// defaults the original entry form applied.
func (e *Event) Normalize() {
	e.RequiredDates = NormalizeDates(e.RequiredDates)
	if e.WorkersPerStand == 0 {
		e.WorkersPerStand = DefaultWorkersPerStand
	}
	if e.Priority == 0 {
		e.Priority = DefaultPriority
	}
}

// Validate checks the event record is complete and well formed. An empty
// RequiredDates list is tolerated; such events sort before all dated ones.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event: id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("event %s: name is required", e.ID)
	}
	seen := make(map[Date]bool, len(e.RequiredDates))
	for _, d := range e.RequiredDates {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}
		if seen[d] {
			return fmt.Errorf("event %s: duplicate required date %q", e.ID, d)
		}
		seen[d] = true
	}
	if e.RequiredWorkers < 0 {
		return fmt.Errorf("event %s: required_workers must be >= 0, got %d", e.ID, e.RequiredWorkers)
	}
	if e.StandCount < 0 {
		return fmt.Errorf("event %s: stand_count must be >= 0, got %d", e.ID, e.StandCount)
	}
	if e.WorkersPerStand < 0 {
		return fmt.Errorf("event %s: workers_per_stand must be >= 0, got %d", e.ID, e.WorkersPerStand)
	}
	for c, n := range e.LicenseQuota {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}
		if n < 0 {
			return fmt.Errorf("event %s: license quota for %q must be >= 0, got %d", e.ID, c, n)
		}
	}
	if e.Priority < 1 || e.Priority > 4 {
		return fmt.Errorf("event %s: priority must be between 1 and 4, got %d", e.ID, e.Priority)
	}
	return nil
}

// PlanStatus tags a per-event planning outcome.
type PlanStatus string

const (
	PlanOK     PlanStatus = "ok"
	PlanFailed PlanStatus = "failed"
)

// FailureReason enumerates why an event could not be staffed.
type FailureReason string

const (
	// ReasonInsufficientCandidates: fewer date-free workers than the event needs.
	ReasonInsufficientCandidates FailureReason = "insufficient_candidates"
	// ReasonQuotaUnmet: the quota and fill passes together fell short of the
	// headcount. Guarded against even though the up-front candidate check
	// should make it unreachable.
	ReasonQuotaUnmet FailureReason = "quota_unmet"
	// ReasonNoLeaderAvailable: the event requires a leader and no qualified
	// worker existed in the candidate pool.
	ReasonNoLeaderAvailable FailureReason = "no_leader_available"
)

// PlanFailure describes why an event could not be staffed.
type PlanFailure struct {
	Reason FailureReason `json:"reason"`
	Detail string        `json:"detail"`
}

// PlanResult is the outcome of planning a single event: either a complete
// roster or a failure with a reason. A failed event never aborts the pass;
// it is recorded and planning moves on to the next event.
type PlanResult struct {
	Status   PlanStatus    `json:"status"`
	Assigned []Worker      `json:"assigned,omitempty"`
	Count    int           `json:"count,omitempty"`
	Reason   FailureReason `json:"reason,omitempty"`
	Detail   string        `json:"detail,omitempty"`
}

// PlanInput carries the collections for stateless planning and validation
// requests. The same shape, with yaml tags, is the roster file format.
type PlanInput struct {
	Events  []Event  `json:"events" yaml:"events"`
	Workers []Worker `json:"workers" yaml:"workers"`
}

// NormalizeAndValidate brings every record into canonical form and checks
// the input as a whole: each record valid on its own, IDs unique within each
// collection.
func (in *PlanInput) NormalizeAndValidate() error {
	seenEvents := make(map[string]bool, len(in.Events))
	for i := range in.Events {
		ev := &in.Events[i]
		ev.Normalize()
		if err := ev.Validate(); err != nil {
			return err
		}
		if seenEvents[ev.ID] {
			return fmt.Errorf("duplicate event id %q", ev.ID)
		}
		seenEvents[ev.ID] = true
	}

	seenWorkers := make(map[string]bool, len(in.Workers))
	for i := range in.Workers {
		w := &in.Workers[i]
		w.Normalize()
		if err := w.Validate(); err != nil {
			return err
		}
		if seenWorkers[w.ID] {
			return fmt.Errorf("duplicate worker id %q", w.ID)
		}
		seenWorkers[w.ID] = true
	}
	return nil
}

// PlanResponse is the response body of the planning endpoints.
type PlanResponse struct {
	Plan          map[string]PlanResult `json:"plan"`
	EventsPlanned int                   `json:"events_planned"`
	EventsFailed  int                   `json:"events_failed"`
}
