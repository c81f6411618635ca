package translate

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/tables"
)

// passthroughFields are copied verbatim when present. Name and Description
// draw a notice when missing, EscortMule does not.
var passthroughFields = []struct {
	key    string
	advice string
}{
	{key: "Name", advice: "it is recommended to add a name"},
	{key: "Description", advice: "it is recommended to add a description"},
	{key: "EscortMule"},
}

func passthroughStage(original gjson.Result, out []byte, _ *tables.Tables, sink diagnostic.Sink) ([]byte, error) {
	var err error
	for _, field := range passthroughFields {
		value := original.Get(field.key)
		if !value.Exists() {
			if field.advice != "" {
				sink.Report(diagnostic.Warningf(diagnostic.CodeMissingField, field.key,
					"field is missing, %s", field.advice))
			}

			continue
		}

		out, err = sjson.SetRawBytes(out, field.key, []byte(value.Raw))
		if err != nil {
			return nil, fmt.Errorf("copying %s: %w", field.key, err)
		}
	}

	return out, nil
}
