package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

// PlanCSV handles CSV file uploads for planning. Cells holding several
// values (licenses, dates, quota entries) are |-separated; quota entries use
// the class:count form, e.g. "BE:1|none:2".
func (h *Handler) PlanCSV(c *gin.Context) {
	workersFile, _ := c.FormFile("workers_file")
	eventsFile, _ := c.FormFile("events_file")

	if workersFile == nil || eventsFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workers_file and events_file are required"})
		return
	}

	wFile, err := workersFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open workers file"})
		return
	}
	defer wFile.Close()
	workers, err := parseWorkersCSV(wFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eFile, err := eventsFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open events file"})
		return
	}
	defer eFile.Close()
	events, err := parseEventsCSV(eFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := models.PlanInput{Events: events, Workers: workers}
	if err := input.NormalizeAndValidate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := h.Planner.Plan(input.Events, input.Workers)
	h.RecordUsage(c, len(input.Events), len(input.Workers))

	c.JSON(http.StatusOK, gin.H{"csv": planToCSV(input.Events, plan)})
}

func parseWorkersCSV(r io.Reader) ([]models.Worker, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading workers header: %w", err)
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range []string{"id", "name", "experience_level"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("workers file: missing column %q", name)
		}
	}

	var workers []models.Worker
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("workers row %d: %w", row, err)
		}

		exp, err := strconv.Atoi(strings.TrimSpace(record[cols["experience_level"]]))
		if err != nil {
			return nil, fmt.Errorf("workers row %d: experience_level: %w", row, err)
		}

		w := models.Worker{
			ID:              record[cols["id"]],
			Name:            record[cols["name"]],
			ExperienceLevel: exp,
		}
		if i, ok := cols["licenses"]; ok {
			for _, part := range splitCell(record[i]) {
				w.Licenses = append(w.Licenses, models.LicenseClass(part))
			}
		}
		if i, ok := cols["available_dates"]; ok {
			for _, part := range splitCell(record[i]) {
				w.AvailableDates = append(w.AvailableDates, models.Date(part))
			}
		}
		workers = append(workers, w)
	}
	return workers, nil
}

func parseEventsCSV(r io.Reader) ([]models.Event, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading events header: %w", err)
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range []string{"id", "name"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("events file: missing column %q", name)
		}
	}

	var events []models.Event
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("events row %d: %w", row, err)
		}

		ev := models.Event{
			ID:   record[cols["id"]],
			Name: record[cols["name"]],
		}
		if i, ok := cols["location"]; ok {
			ev.Location = record[i]
		}
		if i, ok := cols["required_dates"]; ok {
			for _, part := range splitCell(record[i]) {
				ev.RequiredDates = append(ev.RequiredDates, models.Date(part))
			}
		}
		for _, field := range []struct {
			name string
			dst  *int
		}{
			{"required_workers", &ev.RequiredWorkers},
			{"stand_count", &ev.StandCount},
			{"workers_per_stand", &ev.WorkersPerStand},
			{"priority", &ev.Priority},
		} {
			n, err := intCell(record, cols, field.name, row)
			if err != nil {
				return nil, err
			}
			*field.dst = n
		}
		if i, ok := cols["license_quota"]; ok {
			quota, err := parseQuotaCell(record[i], row)
			if err != nil {
				return nil, err
			}
			ev.LicenseQuota = quota
		}
		if i, ok := cols["needs_leader"]; ok && strings.TrimSpace(record[i]) != "" {
			needsLeader, err := strconv.ParseBool(strings.TrimSpace(record[i]))
			if err != nil {
				return nil, fmt.Errorf("events row %d: needs_leader: %w", row, err)
			}
			ev.NeedsLeader = needsLeader
		}
		events = append(events, ev)
	}
	return events, nil
}

// intCell reads an optional integer column; absent columns and empty cells
// count as zero.
func intCell(record []string, cols map[string]int, name string, row int) (int, error) {
	i, ok := cols[name]
	if !ok {
		return 0, nil
	}
	cell := strings.TrimSpace(record[i])
	if cell == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(cell)
	if err != nil {
		return 0, fmt.Errorf("events row %d: %s: %w", row, name, err)
	}
	return n, nil
}

// parseQuotaCell reads a "BE:1|B:2|none:2" cell into a quota map.
func parseQuotaCell(cell string, row int) (map[models.LicenseClass]int, error) {
	parts := splitCell(cell)
	if len(parts) == 0 {
		return nil, nil
	}
	quota := make(map[models.LicenseClass]int, len(parts))
	for _, part := range parts {
		class, countStr, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("events row %d: license_quota entry %q: expected class:count", row, part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, fmt.Errorf("events row %d: license_quota entry %q: %w", row, part, err)
		}
		quota[models.LicenseClass(strings.TrimSpace(class))] = count
	}
	return quota, nil
}

// splitCell splits a |-separated cell, dropping empty parts.
func splitCell(cell string) []string {
	var parts []string
	for _, part := range strings.Split(cell, "|") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// planToCSV renders one row per assignment; failed events get a single row
// carrying the reason. Events appear in planning order.
func planToCSV(events []models.Event, plan map[string]models.PlanResult) string {
	ordered := make([]models.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if a, b := ordered[i].FirstDate(), ordered[j].FirstDate(); a != b {
			return a < b
		}
		return ordered[i].ID < ordered[j].ID
	})

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"event_id", "event_name", "first_date", "status", "worker_id", "worker_name", "experience_level", "reason", "detail"})

	for _, ev := range ordered {
		res := plan[ev.ID]
		if res.Status != models.PlanOK {
			writer.Write([]string{ev.ID, ev.Name, string(ev.FirstDate()), string(models.PlanFailed), "", "", "", string(res.Reason), res.Detail})
			continue
		}
		for _, w := range res.Assigned {
			writer.Write([]string{ev.ID, ev.Name, string(ev.FirstDate()), string(models.PlanOK), w.ID, w.Name, strconv.Itoa(w.ExperienceLevel), "", ""})
		}
	}
	writer.Flush()
	return out.String()
}
