// Package roster reads event and worker rosters from YAML files.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
)

// LoadFile reads and validates a YAML roster file.
func LoadFile(path string) (*models.PlanInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	input, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster file %s: %w", path, err)
	}
	return input, nil
}

// Parse unmarshals and validates roster data. Records come back normalized:
// dates sorted and deduplicated, event defaults filled in. IDs must be
// unique within each collection; plan results are keyed by them.
func Parse(data []byte) (*models.PlanInput, error) {
	var input models.PlanInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if err := input.NormalizeAndValidate(); err != nil {
		return nil, err
	}
	return &input, nil
}
