// Package match provides fuzzy name matching for diagnostic suggestions.
//
// When a source document carries a key the mapping tables do not know, the
// converter drops the value but tries to tell the author which known key they
// probably meant.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Similarity: normalized 0..1 similarity score
//   - Suggest: ranks known names near an unknown one
package match
