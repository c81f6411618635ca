package translate

import (
	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"cd2-converter/internal/common"
	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/match"
	"cd2-converter/internal/tables"
)

func topModuleStage(original gjson.Result, out []byte, tb *tables.Tables, sink diagnostic.Sink) ([]byte, error) {
	var err error
	original.ForEach(func(key, value gjson.Result) bool {
		out, err = relocateField(out, key.String(), value, tb, sink)

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	// The new generation wants the base hazard spelled out
	out, err = sjson.SetBytes(out, "DifficultySetting.BaseHazard", "Hazard 5")
	if err != nil {
		return nil, err
	}

	return renameStationaryPool(out)
}

func relocateField(out []byte, key string, value gjson.Result, tb *tables.Tables, sink diagnostic.Sink) ([]byte, error) {
	status, known := tb.FieldStatus(key)
	if !known {
		d := diagnostic.Warningf(diagnostic.CodeUnsupportedField, key, "unsupported field, dropping it")
		d.Suggestions = match.Suggest(key, tb.TopModuleKeys(), maxSuggestions)
		sink.Report(d)

		return out, nil
	}

	switch status.Kind {
	case tables.StatusDeprecated:
		sink.Report(diagnostic.Infof(diagnostic.CodeDeprecatedField, key, "deprecated field, dropping it"))
	case tables.StatusIgnored:
		// Consumed by a dedicated stage
	case tables.StatusValid:
		raw, err := normalizeWeightArray(value)
		if err != nil {
			return nil, err
		}

		return sjson.SetRawBytes(out, joinPath(status.Module, key), raw)
	}

	return out, nil
}

// normalizeWeightArray flattens weighted range bins: the new generation drops
// the nested range object, so {weight, range: {min, max}} becomes
// {weight, min, max}. Detection inspects only the first element; anything
// else passes through untouched.
func normalizeWeightArray(value gjson.Result) ([]byte, error) {
	if !value.IsArray() {
		return []byte(value.Raw), nil
	}

	bins := value.Array()

	first, ok := common.First(bins)
	if !ok || !first.Get("weight").Exists() {
		return []byte(value.Raw), nil
	}

	type bin struct {
		Weight json.RawMessage `json:"weight"`
		Min    json.RawMessage `json:"min"`
		Max    json.RawMessage `json:"max"`
	}

	flat := make([]bin, 0, len(bins))
	for _, b := range bins {
		flat = append(flat, bin{
			Weight: rawOrNull(b.Get("weight")),
			Min:    rawOrNull(b.Get("range.min")),
			Max:    rawOrNull(b.Get("range.max")),
		})
	}

	return json.Marshal(flat)
}

func rawOrNull(r gjson.Result) json.RawMessage {
	if !r.Exists() {
		return json.RawMessage("null")
	}

	return json.RawMessage(r.Raw)
}

// renameStationaryPool renames Pools.StationaryEnemies on the relocated
// tree, which the new generation calls StationaryPool.
func renameStationaryPool(out []byte) ([]byte, error) {
	stationary := gjson.GetBytes(out, "Pools.StationaryEnemies")
	if !stationary.Exists() {
		return out, nil
	}

	out, err := sjson.SetRawBytes(out, "Pools.StationaryPool", []byte(stationary.Raw))
	if err != nil {
		return nil, err
	}

	return sjson.DeleteBytes(out, "Pools.StationaryEnemies")
}
