package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

const testRoster = `
events:
  - id: stadtfest
    name: Stadtfest
    required_dates: ["2026-07-04"]
    required_workers: 2
    license_quota:
      BE: 1
    needs_leader: true
workers:
  - id: anna
    name: Anna
    licenses: [BE, B]
    experience_level: 3
  - id: jonas
    name: Jonas
    licenses: [B]
    experience_level: 2
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPlanCommand(t *testing.T) {
	path := writeRoster(t, testRoster)

	out, err := execute(t, "plan", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Stadtfest")
	assert.Contains(t, out, "2 assigned")
	assert.Contains(t, out, "Anna (level 3, BE/B)")
}

func TestPlanCommandJSON(t *testing.T) {
	path := writeRoster(t, testRoster)

	out, err := execute(t, "plan", "-f", path, "--json")
	require.NoError(t, err)

	var plan map[string]models.PlanResult
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Contains(t, plan, "stadtfest")
	assert.Equal(t, models.PlanOK, plan["stadtfest"].Status)
	assert.Len(t, plan["stadtfest"].Assigned, 2)
}

func TestPlanCommandFailureExitsNonZero(t *testing.T) {
	path := writeRoster(t, `
events:
  - id: stadtfest
    name: Stadtfest
    required_dates: ["2026-07-04"]
    required_workers: 5
workers:
  - id: anna
    name: Anna
    experience_level: 1
`)

	out, err := execute(t, "plan", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 events could not be staffed")
	assert.Contains(t, out, "insufficient_candidates")
}

func TestPlanCommandMissingFile(t *testing.T) {
	_, err := execute(t, "plan", "-f", filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	path := writeRoster(t, testRoster)

	out, err := execute(t, "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 events, 2 workers")
}

func TestValidateCommandRejectsBadRoster(t *testing.T) {
	path := writeRoster(t, `
events:
  - id: stadtfest
    required_dates: ["2026-07-04"]
workers: []
`)

	out, err := execute(t, "validate", "-f", path)
	require.Error(t, err)
	assert.Contains(t, out, "name is required")
}
