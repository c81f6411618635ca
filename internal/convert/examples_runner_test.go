package convert_test

import (
	"os"
	"path/filepath"
	"testing"

	"cd2-converter/internal/convert"
	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/tables"
)

// TestExamples_Convert runs every directory under examples/ through the
// converter and compares the result byte for byte against the checked-in
// expected output.
func TestExamples_Convert(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	examplesDir := filepath.Join(repoRoot, "examples")

	entries, err := os.ReadDir(examplesDir)
	if err != nil {
		t.Fatalf("examples dir: %v", err)
	}

	tb, err := tables.Default()
	if err != nil {
		t.Fatalf("default tables: %v", err)
	}

	ran := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		ran++

		t.Run(entry.Name(), func(t *testing.T) {
			t.Parallel()

			dir := filepath.Join(examplesDir, entry.Name())

			src, err := os.ReadFile(filepath.Join(dir, "source.json"))
			if err != nil {
				t.Fatalf("source: %v", err)
			}

			want, err := os.ReadFile(filepath.Join(dir, convert.DefaultTargetPath("source.json")))
			if err != nil {
				t.Fatalf("expected output: %v", err)
			}

			got, err := convert.Convert(src, tb, convert.Options{}, diagnostic.Discard{})
			if err != nil {
				t.Fatalf("convert: %v", err)
			}

			if string(got) != string(want) {
				t.Errorf("output mismatch\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
		})
	}

	if ran == 0 {
		t.Fatal("no example directories found")
	}
}
