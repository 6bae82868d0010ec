// Package planner implements the crew planning pass: a deterministic greedy
// assignment of workers to events under date-exclusivity, headcount and
// license-quota constraints.
package planner

import (
	"fmt"
	"sort"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

// DefaultLeaderThreshold is the experience level that qualifies a worker to
// lead an event. The legacy data disagrees on whether level 2 (runs an event
// alone) already counts; the assignment routine always required level 3, so
// that stays the default and deployments can override it.
const DefaultLeaderThreshold = models.ExperienceEventLeader

// Planner computes crew assignments for events.
type Planner struct {
	// LeaderThreshold is the minimum experience level accepted when an
	// event requires a leader.
	LeaderThreshold int
}

// New creates a Planner with the default leadership threshold.
func New() *Planner {
	return &Planner{LeaderThreshold: DefaultLeaderThreshold}
}

// MatchesLicense reports whether a worker holding the given license classes
// satisfies the required class. It is a pure function and the only license
// compatibility rule the planner applies: the "none" sentinel matches
// everyone, B is covered by B or BE, BE only by BE itself.
func MatchesLicense(held []models.LicenseClass, required models.LicenseClass) bool {
	switch required {
	case models.LicenseNone:
		return true
	case models.LicenseB:
		return holds(held, models.LicenseB) || holds(held, models.LicenseBE)
	case models.LicenseBE:
		return holds(held, models.LicenseBE)
	default:
		return false
	}
}

func holds(held []models.LicenseClass, c models.LicenseClass) bool {
	for _, h := range held {
		if h == c {
			return true
		}
	}
	return false
}

// FilterCandidates returns the workers with no claimed date among the
// required dates. A single conflicting date excludes a worker from the event
// entirely; there is no partial assignment within one event.
func FilterCandidates(workers []models.Worker, used map[string]map[models.Date]struct{}, requiredDates []models.Date) []models.Worker {
	candidates := make([]models.Worker, 0, len(workers))
	for _, w := range workers {
		if unclaimed(used[w.ID], requiredDates) {
			candidates = append(candidates, w)
		}
	}
	return candidates
}

func unclaimed(claimed map[models.Date]struct{}, dates []models.Date) bool {
	for _, d := range dates {
		if _, ok := claimed[d]; ok {
			return false
		}
	}
	return true
}

// Assign picks a roster of exactly required workers from the candidates:
// license quotas first, then the remainder by experience, then leadership
// enforcement. Ties always resolve to the earlier candidate, so the result
// is deterministic for a fixed candidate order. On success the roster is
// returned in assignment order; otherwise a failure with reason and detail.
func (p *Planner) Assign(candidates []models.Worker, quota map[models.LicenseClass]int, required int, needsLeader bool) ([]models.Worker, *models.PlanFailure) {
	if len(candidates) < required {
		return nil, &models.PlanFailure{
			Reason: models.ReasonInsufficientCandidates,
			Detail: fmt.Sprintf("%d available, need %d", len(candidates), required),
		}
	}

	assigned := make([]models.Worker, 0, required)
	remaining := make([]models.Worker, len(candidates))
	copy(remaining, candidates)

	// Quota pass, most restrictive class first, so workers who can fill a
	// BE slot are not burned on a generic one. Capped at the required
	// headcount: quotas never grow the roster past it.
	for _, class := range models.LicensePriority {
		needed := quota[class]
		if capacity := required - len(assigned); needed > capacity {
			needed = capacity
		}
		if needed <= 0 {
			continue
		}
		suitable := matchIndices(remaining, class)
		if len(suitable) > needed {
			suitable = suitable[:needed]
		}
		assigned, remaining = move(assigned, remaining, suitable)
	}

	// Fill whatever the quotas left open with the most experienced workers
	// still unclaimed.
	if len(assigned) < required {
		byExperience(remaining)
		need := required - len(assigned)
		if need > len(remaining) {
			need = len(remaining)
		}
		assigned = append(assigned, remaining[:need]...)
	}

	if len(assigned) < required {
		return nil, &models.PlanFailure{
			Reason: models.ReasonQuotaUnmet,
			Detail: fmt.Sprintf("assigned %d of %d required", len(assigned), required),
		}
	}

	if needsLeader {
		if fail := p.ensureLeader(assigned, candidates); fail != nil {
			return nil, fail
		}
	}

	return assigned, nil
}

// matchIndices returns the positions in pool of the workers matching the
// class, ranked by descending experience; ties keep pool order.
func matchIndices(pool []models.Worker, class models.LicenseClass) []int {
	idx := make([]int, 0, len(pool))
	for i := range pool {
		if MatchesLicense(pool[i].Licenses, class) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return pool[idx[a]].ExperienceLevel > pool[idx[b]].ExperienceLevel
	})
	return idx
}

// move transfers the workers at the given pool positions into the roster.
// Moved workers leave the pool and are never reconsidered for a later quota
// class; the pool keeps its order for the ones left behind.
func move(assigned, pool []models.Worker, indices []int) ([]models.Worker, []models.Worker) {
	if len(indices) == 0 {
		return assigned, pool
	}
	taken := make(map[int]bool, len(indices))
	for _, i := range indices {
		assigned = append(assigned, pool[i])
		taken[i] = true
	}
	kept := pool[:0]
	for i := range pool {
		if !taken[i] {
			kept = append(kept, pool[i])
		}
	}
	return assigned, kept
}

// byExperience sorts workers by descending experience level, ties keeping
// their current order.
func byExperience(workers []models.Worker) {
	sort.SliceStable(workers, func(i, j int) bool {
		return workers[i].ExperienceLevel > workers[j].ExperienceLevel
	})
}

// ensureLeader guarantees the roster carries at least one worker at or above
// the leadership threshold. If the greedy fill produced none, the best
// leader-qualified candidate from the wider pool replaces the roster's first
// lowest-experience member in place, keeping assignment order. Substitution
// never grows the roster, so an empty roster cannot satisfy the requirement.
func (p *Planner) ensureLeader(assigned, candidates []models.Worker) *models.PlanFailure {
	for i := range assigned {
		if assigned[i].ExperienceLevel >= p.LeaderThreshold {
			return nil
		}
	}

	if len(assigned) == 0 {
		return &models.PlanFailure{
			Reason: models.ReasonNoLeaderAvailable,
			Detail: "an empty roster cannot satisfy the leader requirement",
		}
	}

	inRoster := make(map[string]bool, len(assigned))
	for _, w := range assigned {
		inRoster[w.ID] = true
	}
	var leaders []models.Worker
	for _, c := range candidates {
		if c.ExperienceLevel >= p.LeaderThreshold && !inRoster[c.ID] {
			leaders = append(leaders, c)
		}
	}
	if len(leaders) == 0 {
		return &models.PlanFailure{
			Reason: models.ReasonNoLeaderAvailable,
			Detail: fmt.Sprintf("no available worker with experience level >= %d", p.LeaderThreshold),
		}
	}
	byExperience(leaders)

	low := 0
	for i := 1; i < len(assigned); i++ {
		if assigned[i].ExperienceLevel < assigned[low].ExperienceLevel {
			low = i
		}
	}
	assigned[low] = leaders[0]
	return nil
}

// Plan runs one planning pass over the event and worker snapshots and maps
// every event ID to its outcome. Events are handled in order of their first
// required date (undated events first); a successful roster claims all of
// the event's dates, so later events see a reduced candidate pool. There is
// no backtracking: scarcity caused by earlier commitments is reported, not
// repaired. Neither input slice is mutated.
func (p *Planner) Plan(events []models.Event, workers []models.Worker) map[string]models.PlanResult {
	used := make(map[string]map[models.Date]struct{}, len(workers))
	for _, w := range workers {
		used[w.ID] = make(map[models.Date]struct{})
	}

	ordered := make([]models.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].FirstDate() < ordered[j].FirstDate()
	})

	plan := make(map[string]models.PlanResult, len(events))
	for i := range ordered {
		ev := &ordered[i]
		candidates := FilterCandidates(workers, used, ev.RequiredDates)
		assigned, fail := p.Assign(candidates, ev.LicenseQuota, ev.EffectiveRequired(), ev.NeedsLeader)
		if fail != nil {
			plan[ev.ID] = models.PlanResult{Status: models.PlanFailed, Reason: fail.Reason, Detail: fail.Detail}
			continue
		}
		for _, w := range assigned {
			for _, d := range ev.RequiredDates {
				used[w.ID][d] = struct{}{}
			}
		}
		plan[ev.ID] = models.PlanResult{Status: models.PlanOK, Assigned: assigned, Count: len(assigned)}
	}
	return plan
}
