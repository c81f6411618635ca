package tables

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultData is the translation data shipped with the converter, covering
// the stock fields of the old schema generation.
//
//go:embed cd2-modules.yaml
var defaultData []byte

// Default parses the embedded translation data.
func Default() (*Tables, error) {
	return Parse(defaultData)
}

// LoadFile loads and parses a translation-data file from the given path.
// YAML is a JSON superset, so a JSON table file loads as well.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation data %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse translation data %s: %w", path, err)
	}

	return t, nil
}

// Parse parses YAML translation data and validates it.
func Parse(data []byte) (*Tables, error) {
	var t Tables

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse translation YAML: %w", err)
	}

	err = validate(&t)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// validate rejects structurally incomplete tables. Statuses are checked
// during unmarshaling; here only the pawn-stat targets need attention.
func validate(t *Tables) error {
	for stat, target := range t.PawnStats {
		if target.Module == "" {
			return fmt.Errorf("pawn stat %s: missing target module", stat)
		}

		if target.Field == "" {
			return fmt.Errorf("pawn stat %s: missing target field", stat)
		}
	}

	return nil
}
