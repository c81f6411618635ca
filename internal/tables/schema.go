package tables

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"cd2-converter/internal/common"
)

// ModuleNone is the sentinel target module meaning "write the field directly
// on the enemy entry instead of nesting it under a module".
const ModuleNone = "None"

// StatusKind discriminates the variants of FieldStatus.
//
//go:generate go tool stringer -type=StatusKind -trimprefix Status -output=statuskind_string.go
type StatusKind int

const (
	_ StatusKind = iota // skip zero so an unset FieldStatus is recognizably invalid

	StatusDeprecated
	StatusIgnored
	StatusValid
)

// FieldStatus is the parsed form of a top-level field's status string.
// The file convention is open-ended: "deprecated" and "ignore" are reserved,
// any other string names the target module the field relocates to.
// Parsing happens once at load time; lookups never re-interpret strings.
type FieldStatus struct {
	Kind StatusKind
	// Module is the target module name. Set only when Kind is StatusValid.
	Module string
}

// ParseFieldStatus interprets a raw status string.
func ParseFieldStatus(s string) FieldStatus {
	switch s {
	case "deprecated":
		return FieldStatus{Kind: StatusDeprecated}
	case "ignore":
		return FieldStatus{Kind: StatusIgnored}
	default:
		return FieldStatus{Kind: StatusValid, Module: s}
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for FieldStatus.
// Accepts a single scalar status string.
func (s *FieldStatus) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected status string, got %v", node.Kind)
	}

	var str string

	err := node.Decode(&str)
	if err != nil {
		return err
	}

	if str == "" {
		return fmt.Errorf("empty status string")
	}

	*s = ParseFieldStatus(str)

	return nil
}

// MarshalYAML implements custom YAML marshaling for FieldStatus.
// Outputs the canonical status string.
func (s FieldStatus) MarshalYAML() (any, error) {
	if s.Kind == 0 {
		return nil, fmt.Errorf("cannot marshal invalid field status")
	}

	return s.String(), nil
}

// String returns the canonical status string form.
func (s FieldStatus) String() string {
	switch s.Kind {
	case StatusDeprecated:
		return "deprecated"
	case StatusIgnored:
		return "ignore"
	case StatusValid:
		return s.Module
	default:
		return common.UnknownStr
	}
}

// StatTarget locates where a legacy pawn stat lands on the new schema.
type StatTarget struct {
	// Module is the enemy sub-object receiving the value, or ModuleNone for
	// a field written directly on the enemy entry.
	Module string `yaml:"module"`
	// Field is the key the value is written under.
	Field string `yaml:"field"`
}

// StringSet is a YAML sequence of strings exposed as a membership set.
type StringSet map[string]struct{}

// UnmarshalYAML implements custom YAML unmarshaling for StringSet.
func (s *StringSet) UnmarshalYAML(node *yaml.Node) error {
	var items []string

	err := node.Decode(&items)
	if err != nil {
		return err
	}

	set := make(StringSet, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}

	*s = set

	return nil
}

// MarshalYAML implements custom YAML marshaling for StringSet.
// Outputs a sorted sequence of strings.
func (s StringSet) MarshalYAML() (any, error) {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}

	sort.Strings(items)

	return items, nil
}

// Contains reports whether v is a member of the set.
func (s StringSet) Contains(v string) bool {
	_, ok := s[v]

	return ok
}

// Tables holds the four lookup structures that drive a conversion. Loaded
// once per run and never mutated afterwards.
type Tables struct {
	// TopModules maps each known top-level source field to its status.
	TopModules map[string]FieldStatus `yaml:"top_modules"`
	// PawnStats maps each legacy pawn stat to its new location.
	PawnStats map[string]StatTarget `yaml:"pawn_stats"`
	// ValidControls lists the per-enemy keys the new schema understands.
	ValidControls StringSet `yaml:"valid_enemy_controls"`
	// VanillaElites lists enemy identifiers with stock elite variants.
	VanillaElites StringSet `yaml:"vanilla_elite_enemies"`
}

// FieldStatus looks up the status of a top-level source field.
func (t *Tables) FieldStatus(key string) (FieldStatus, bool) {
	status, ok := t.TopModules[key]

	return status, ok
}

// StatTarget looks up the new location of a legacy pawn stat.
func (t *Tables) StatTarget(stat string) (StatTarget, bool) {
	target, ok := t.PawnStats[stat]

	return target, ok
}

// TopModuleKeys returns the known top-level field names, sorted.
// Used for nearest-name suggestions in diagnostics.
func (t *Tables) TopModuleKeys() []string {
	return sortedKeys(t.TopModules)
}

// PawnStatKeys returns the known pawn stat names, sorted.
func (t *Tables) PawnStatKeys() []string {
	return sortedKeys(t.PawnStats)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
