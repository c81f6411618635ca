package translate

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/tables"
)

// maxSuggestions caps how many nearest-name candidates a diagnostic carries.
const maxSuggestions = 3

// StageFunc is one step of the conversion. It reads the immutable original
// document and the output built so far and returns the new output. Stages
// never mutate the original and never perform I/O.
type StageFunc func(original gjson.Result, out []byte, tb *tables.Tables, sink diagnostic.Sink) ([]byte, error)

// Stage pairs a StageFunc with a name for error reporting.
type Stage struct {
	Name string
	Fn   StageFunc
}

// Stages returns the pipeline in its fixed execution order.
func Stages() []Stage {
	return []Stage{
		{Name: "passthrough", Fn: passthroughStage},
		{Name: "resupply", Fn: resupplyStage},
		{Name: "top-modules", Fn: topModuleStage},
		{Name: "enemies", Fn: enemyStage},
	}
}

// Run parses the source document and folds the stages left to right over an
// empty output document, returning the converted tree as compact JSON text.
func Run(src []byte, tb *tables.Tables, sink diagnostic.Sink) ([]byte, error) {
	if !gjson.ValidBytes(src) {
		return nil, errors.New("source document is not valid JSON")
	}

	original := gjson.ParseBytes(src)
	if !original.IsObject() {
		return nil, errors.New("source document is not a JSON object")
	}

	out := []byte("{}")

	var err error
	for _, stage := range Stages() {
		out, err = stage.Fn(original, out, tb, sink)
		if err != nil {
			return nil, fmt.Errorf("%s stage: %w", stage.Name, err)
		}
	}

	return out, nil
}
