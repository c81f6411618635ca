// Package main provides the CLI entrypoint for cd2-converter.
//
// cd2-converter rewrites an old-generation difficulty configuration into
// the current schema generation:
//   - Relocates top-level fields into their new modules
//   - Rewrites the flat resupply cost as a per-resupply mutator
//   - Translates enemy pawn stats and keeps custom elites elite
//   - Preserves multi-line description text across the rewrite
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"cd2-converter/internal/convert"
	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/tables"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is fine, flags and the environment still apply
	_ = godotenv.Load()

	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cd2-converter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	compact := fs.Bool("compact", envBool("CD2_COMPACT"), "write compact JSON instead of indented")
	tablesPath := fs.String("tables", os.Getenv("CD2_TABLES"), "translation-data file overriding the built-in tables")
	quiet := fs.Bool("quiet", envBool("CD2_QUIET"), "suppress info diagnostics")
	debugTables := fs.Bool("debug-tables", false, "dump the loaded translation tables and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <source-file> [target-file]\n\n", fs.Name())
		fmt.Fprintln(stderr, "Converts an old-generation difficulty configuration to the new schema.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	tb, err := loadTables(*tablesPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	if *debugTables {
		dumpTables(stderr, tb)

		return 0
	}

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		fmt.Fprintln(stderr, "error: a source file is required")
		fs.Usage()

		return 2
	}

	source := rest[0]

	target := convert.DefaultTargetPath(source)
	if len(rest) == 2 {
		target = rest[1]
	}

	src, err := os.ReadFile(source)
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to read source file %s: %v\n", source, err)

		return 1
	}

	var sink diagnostic.Collector

	out, err := convert.Convert(src, tb, convert.Options{Compact: *compact}, &sink)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	if err := convert.WriteTarget(target, out); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	printDiagnostics(stderr, &sink, *quiet)
	fmt.Fprintln(stdout, target)

	return 0
}

func loadTables(path string) (*tables.Tables, error) {
	if path == "" {
		return tables.Default()
	}

	return tables.LoadFile(path)
}

// printDiagnostics writes collected diagnostics, warnings first. Diagnostics
// are advisory and never affect the exit code.
func printDiagnostics(w io.Writer, c *diagnostic.Collector, quiet bool) {
	for _, d := range c.Warnings {
		fmt.Fprintln(w, d)
	}

	if quiet {
		return
	}

	for _, d := range c.Infos {
		fmt.Fprintln(w, d)
	}
}

// envBool reads a boolean environment variable; unset or malformed values
// count as false.
func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))

	return err == nil && v
}
