package match

import (
	"sort"
	"strings"

	"cd2-converter/internal/common"
)

// suggestionThreshold is the minimum normalized similarity for a candidate
// to be offered as a suggestion.
const suggestionThreshold = 0.6

// Suggest returns up to limit candidate names similar to name, best first.
// Comparison is case-insensitive and ignores underscores and dashes, so
// "pst_fireresist" still finds "PST_FireResistance". Ties break
// alphabetically to keep the output deterministic.
func Suggest(name string, candidates []string, limit int) []string {
	norm := normalizeKey(name)

	type scored struct {
		name  string
		score float64
	}

	var ranked []scored
	for _, c := range candidates {
		score := Similarity(norm, normalizeKey(c))
		if score >= suggestionThreshold {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	if common.IsEmpty(ranked) {
		return nil
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}

// normalizeKey lowercases a key and strips the separators that vary between
// schema generations.
func normalizeKey(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")

	return s
}
