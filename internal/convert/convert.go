package convert

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/multiline"
	"cd2-converter/internal/tables"
	"cd2-converter/internal/translate"
)

// indentOptions renders four-space indented output. The width must stay
// explicit or short arrays would lose their single-line form.
var indentOptions = &pretty.Options{Width: 80, Indent: "    "}

// Options selects the output form.
type Options struct {
	// Compact renders the target as a single line instead of the default
	// four-space indented form.
	Compact bool
}

// Convert turns one old-generation document into its new-generation
// counterpart and returns the rendered target text. Diagnostics about
// dropped or suspicious content go to sink; only structural failures
// (unparsable source) surface as errors.
func Convert(src []byte, tb *tables.Tables, opts Options, sink diagnostic.Sink) ([]byte, error) {
	sanitized, blob := multiline.Extract(src, sink)

	out, err := translate.Run(sanitized, tb, sink)
	if err != nil {
		return nil, err
	}

	return render(out, blob, opts)
}

// render materializes the translated tree. Indented output gets the
// preserved description lines spliced back between its own lines; compact
// output has no line structure to splice into, so the lines are folded
// into the description string value instead, matching what the old tool
// produced.
func render(out []byte, blob *multiline.Blob, opts Options) ([]byte, error) {
	if !opts.Compact {
		return multiline.Reinsert(pretty.PrettyOptions(out, indentOptions), blob), nil
	}

	if blob != nil {
		if desc := gjson.GetBytes(out, "Description"); desc.Type == gjson.String {
			var err error

			out, err = sjson.SetBytes(out, "Description", desc.String()+blob.Text())
			if err != nil {
				return nil, err
			}
		}
	}

	// Raw values copied from the source keep its whitespace, so even the
	// compact form needs a full reformat
	return pretty.Ugly(out), nil
}
