// Package multiline preserves the non-standard multi-line Description value
// that old-generation difficulty files allow but strict JSON parsing does not.
//
// The scan operates on raw text, outside the structured parser: the opening
// line of the span is rewritten into a syntactically valid single-line string
// and the interior lines are carried as an opaque blob. After the converted
// tree is rendered, the blob is spliced back in by position, not by tree path.
//
// Key capabilities:
//   - Two-state line scan detecting the description span
//   - Sanitized text the JSON parser accepts
//   - Byte-identical reinsertion into indented output
//
// At most one multi-line field per document is supported. Spans with embedded
// quote characters at line starts are out of scope.
package multiline
