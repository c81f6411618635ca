package convert

import (
	"path/filepath"
	"strings"
)

// generationMarker tags default target names with the schema generation
// the output belongs to.
const generationMarker = "cd2"

// DefaultTargetPath derives a target file name from the source by
// inserting the generation marker before the extension, keeping the
// source directory: "conf/hard.json" becomes "conf/hard.cd2.json". A
// name without an extension gets the marker as its extension.
func DefaultTargetPath(source string) string {
	ext := filepath.Ext(source)
	stem := strings.TrimSuffix(source, ext)

	if ext == "" {
		return stem + "." + generationMarker
	}

	return stem + "." + generationMarker + ext
}
