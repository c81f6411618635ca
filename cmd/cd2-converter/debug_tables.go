package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"cd2-converter/internal/tables"
)

// dumpTables writes a full dump of the loaded translation tables, handy
// when a field lands somewhere unexpected.
func dumpTables(w io.Writer, tb *tables.Tables) {
	spew.Fdump(w, tb)
}
