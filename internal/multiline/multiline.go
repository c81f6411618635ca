package multiline

import (
	"strings"
	"unicode"

	"cd2-converter/internal/diagnostic"
)

const (
	// descriptionToken opens the only field whose value may span lines.
	descriptionToken = `"Description"`
	// closingToken ends a single-line string value.
	closingToken = `",`
)

// Blob holds the interior lines of a multi-line description span, in source
// order. It has no relationship to the parsed tree.
type Blob struct {
	lines      []string
	terminated bool
}

// Text returns the blob's lines joined with newlines.
func (b *Blob) Text() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of raw lines in the blob.
func (b *Blob) LineCount() int {
	return len(b.lines)
}

// Extract scans raw source text for a multi-line description value. It
// returns the text with the span neutralized, plus the extracted blob, or
// the input unchanged and a nil blob when no span exists.
//
// The scan enters a span at a "Description" line that does not already end
// with the closing token, and leaves it at the first following line that
// begins a new quoted key. A lone closing token on its own line is part of
// the span. The opening line is rewritten by appending a synthetic closing
// token so the downstream parser sees a valid single-line string.
func Extract(src []byte, sink diagnostic.Sink) ([]byte, *Blob) {
	lines := strings.Split(string(src), "\n")

	start, end := -1, -1
	for i, line := range lines {
		if start == -1 {
			if !strings.HasPrefix(strings.TrimSpace(line), descriptionToken) {
				continue
			}

			if strings.HasSuffix(trimRight(line), closingToken) {
				// Already a single-line string, nothing to extract
				break
			}

			start = i + 1
		} else {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, `"`) && trimmed != closingToken {
				end = i - 1

				break
			}
		}
	}

	if start == -1 {
		return src, nil
	}

	terminated := end != -1
	if !terminated {
		// Span ran to EOF; swallow the rest of the file, minus the empty
		// slot a trailing newline leaves behind
		end = len(lines) - 1
		if end >= start && lines[end] == "" {
			end--
		}
	}

	kept := make([]string, 0, len(lines)-(end-start+1))
	blob := &Blob{terminated: terminated, lines: make([]string, 0, end-start+1)}

	for i, line := range lines {
		switch {
		case i == start-1:
			kept = append(kept, line+closingToken)
		case i >= start && i <= end:
			blob.lines = append(blob.lines, line)
		default:
			kept = append(kept, line)
		}
	}

	sink.Report(diagnostic.Infof(diagnostic.CodeMultilineDetected, "Description",
		"multi-line description detected, preserving %d lines", blob.LineCount()))

	if !terminated {
		sink.Report(diagnostic.Warningf(diagnostic.CodeUnterminatedSpan, "Description",
			"description string is never closed, keeping everything up to end of file"))
	}

	return []byte(strings.Join(kept, "\n")), blob
}

// Reinsert splices the blob back into rendered output. The first line
// beginning with the description token loses its trailing closing token and
// the blob lines follow it verbatim; everything else passes through. A nil
// blob returns the rendered text unchanged.
func Reinsert(rendered []byte, blob *Blob) []byte {
	if blob == nil {
		return rendered
	}

	lines := strings.Split(string(rendered), "\n")
	out := make([]string, 0, len(lines)+blob.LineCount())

	pending, inserted := false, false
	for _, line := range lines {
		if pending {
			out = append(out, blob.lines...)
			pending, inserted = false, true
		}

		if !inserted && !pending && strings.HasPrefix(strings.TrimSpace(line), descriptionToken) {
			line = strings.TrimSuffix(trimRight(line), closingToken)
			pending = true
		}

		out = append(out, line)
	}

	if pending {
		out = append(out, blob.lines...)
	}

	return []byte(strings.Join(out, "\n"))
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
