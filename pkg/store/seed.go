package store

import "github.com/BenjaminKuhnn/Mitarbeit/pkg/models"

// SeedDemo fills the store with a small roster for trying out the API
// without a roster file. Intended for local runs only.
func (s *Store) SeedDemo() error {
	events := []models.Event{
		{
			ID:              "stadtfest",
			Name:            "Stadtfest Heidelberg",
			Location:        "Heidelberg",
			RequiredDates:   []models.Date{"2026-07-04", "2026-07-05"},
			StandCount:      2,
			WorkersPerStand: 2,
			LicenseQuota:    map[models.LicenseClass]int{models.LicenseBE: 1, models.LicenseNone: 2},
			NeedsLeader:     true,
			Priority:        1,
		},
		{
			ID:              "weinfest",
			Name:            "Weinfest Wiesloch",
			Location:        "Wiesloch",
			RequiredDates:   []models.Date{"2026-07-11"},
			RequiredWorkers: 3,
			LicenseQuota:    map[models.LicenseClass]int{models.LicenseB: 1},
			Priority:        2,
		},
	}
	workers := []models.Worker{
		{
			ID:              "anna",
			Name:            "Anna Schmidt",
			Licenses:        []models.LicenseClass{models.LicenseBE, models.LicenseB},
			ExperienceLevel: models.ExperienceEventLeader,
			AvailableDates:  []models.Date{"2026-07-03", "2026-07-04", "2026-07-05", "2026-07-11"},
		},
		{
			ID:              "jonas",
			Name:            "Jonas Weber",
			Licenses:        []models.LicenseClass{models.LicenseB},
			ExperienceLevel: models.ExperienceSelfReliant,
			AvailableDates:  []models.Date{"2026-07-04", "2026-07-05", "2026-07-11"},
		},
		{
			ID:              "miriam",
			Name:            "Miriam Fischer",
			Licenses:        []models.LicenseClass{models.LicenseB},
			ExperienceLevel: models.ExperienceSelfReliant,
			AvailableDates:  []models.Date{"2026-07-04", "2026-07-05"},
		},
		{
			ID:              "lukas",
			Name:            "Lukas Braun",
			ExperienceLevel: models.ExperienceHelper,
			AvailableDates:  []models.Date{"2026-07-04", "2026-07-05", "2026-07-11"},
		},
		{
			ID:              "sofie",
			Name:            "Sofie Wagner",
			ExperienceLevel: models.ExperienceHelper,
			AvailableDates:  []models.Date{"2026-07-04", "2026-07-05", "2026-07-11"},
		},
	}

	for _, ev := range events {
		if _, err := s.AddEvent(ev); err != nil {
			return err
		}
	}
	for _, w := range workers {
		if _, err := s.AddWorker(w); err != nil {
			return err
		}
	}
	return nil
}
