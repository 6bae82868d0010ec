package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

const sampleRoster = `
events:
  - id: stadtfest
    name: Stadtfest Heidelberg
    location: Heidelberg
    required_dates: ["2026-07-05", "2026-07-04", "2026-07-05"]
    stand_count: 2
    license_quota:
      BE: 1
      none: 2
    needs_leader: true
    priority: 1
workers:
  - id: anna
    name: Anna Schmidt
    licenses: [BE, B]
    experience_level: 3
    available_dates: ["2026-07-04", "2026-07-05"]
  - id: jonas
    name: Jonas Weber
    licenses: [B]
    experience_level: 2
`

func TestParse(t *testing.T) {
	input, err := Parse([]byte(sampleRoster))
	require.NoError(t, err)
	require.Len(t, input.Events, 1)
	require.Len(t, input.Workers, 2)

	ev := input.Events[0]
	assert.Equal(t, []models.Date{"2026-07-04", "2026-07-05"}, ev.RequiredDates, "dates sorted and deduplicated")
	assert.Equal(t, models.DefaultWorkersPerStand, ev.WorkersPerStand, "default filled in")
	assert.Equal(t, 4, ev.EffectiveRequired())
	assert.Equal(t, 1, ev.LicenseQuota[models.LicenseBE])

	anna := input.Workers[0]
	assert.Equal(t, []models.LicenseClass{models.LicenseBE, models.LicenseB}, anna.Licenses)
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`
events:
  - {id: e1, name: A, required_dates: ["2026-07-04"]}
  - {id: e1, name: B, required_dates: ["2026-07-05"]}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate event id")

	_, err = Parse([]byte(`
workers:
  - {id: w1, name: Alice, experience_level: 1}
  - {id: w1, name: Bob, experience_level: 2}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate worker id")
}

func TestParseRejectsInvalidRecords(t *testing.T) {
	_, err := Parse([]byte(`
workers:
  - {id: w1, name: Alice, experience_level: 1, available_dates: ["04.07.2026"]}
`))
	assert.Error(t, err)

	_, err = Parse([]byte("events: ["))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRoster), 0o644))

	input, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, input.Workers, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
