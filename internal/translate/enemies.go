package translate

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/match"
	"cd2-converter/internal/tables"
)

const (
	// resistanceModule is the one pawn-stat destination whose values flip
	// from "damage reduction" to "resistance fraction" on the way over.
	resistanceModule = "Resistances"
	// nonInvertibleStat already carries a resistance fraction and is copied
	// unchanged even though it lands in the resistance module.
	nonInvertibleStat = "PST_DamageResistance"
)

func enemyStage(original gjson.Result, out []byte, tb *tables.Tables, sink diagnostic.Sink) ([]byte, error) {
	descriptors := original.Get("EnemyDescriptors")
	if !descriptors.Exists() {
		return out, nil
	}

	out, err := sjson.SetRawBytes(out, "EnemiesNoSync", []byte(descriptors.Raw))
	if err != nil {
		return nil, fmt.Errorf("copying enemy descriptors: %w", err)
	}

	if !descriptors.IsObject() {
		return out, nil
	}

	descriptors.ForEach(func(id, entry gjson.Result) bool {
		out, err = convertEnemy(out, id.String(), entry, tb, sink)

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// convertEnemy fixes up one copied descriptor: pawn stats are translated to
// their new locations, controls the new generation does not know are
// dropped, and derived elite variants keep their elite behavior.
func convertEnemy(out []byte, id string, entry gjson.Result, tb *tables.Tables, sink diagnostic.Sink) ([]byte, error) {
	entryPath := joinPath("EnemiesNoSync", id)

	if stats := entry.Get("PawnStats"); stats.Exists() {
		var err error

		out, err = sjson.DeleteBytes(out, entryPath+".PawnStats")
		if err != nil {
			return nil, err
		}

		stats.ForEach(func(stat, value gjson.Result) bool {
			out, err = translatePawnStat(out, id, stat.String(), value, tb, sink)

			return err == nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Drop unknown controls, iterating the original entry's keys so the
	// fields the stat translation just added are never candidates
	var err error
	entry.ForEach(func(key, _ gjson.Result) bool {
		control := key.String()
		if control == "PawnStats" || tb.ValidControls.Contains(control) {
			return true
		}

		sink.Report(diagnostic.Infof(diagnostic.CodeInvalidControl, control,
			"deprecated or mistyped enemy control in %s, dropping it", id))

		out, err = sjson.DeleteBytes(out, joinPath("EnemiesNoSync", id, control))

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return rebaseElite(out, id, tb, sink)
}

func translatePawnStat(out []byte, id, stat string, value gjson.Result, tb *tables.Tables, sink diagnostic.Sink) ([]byte, error) {
	target, known := tb.StatTarget(stat)
	if !known {
		d := diagnostic.Warningf(diagnostic.CodeUnsupportedStat, stat,
			"unsupported pawn stat on enemy %s, dropping it", id)
		d.Suggestions = match.Suggest(stat, tb.PawnStatKeys(), maxSuggestions)
		sink.Report(d)

		return out, nil
	}

	path := joinPath("EnemiesNoSync", id, target.Field)
	if target.Module != tables.ModuleNone {
		path = joinPath("EnemiesNoSync", id, target.Module, target.Field)
	}

	if target.Module == resistanceModule && stat != nonInvertibleStat {
		return sjson.SetBytes(out, path, 1.0-value.Float())
	}

	return sjson.SetRawBytes(out, path, []byte(value.Raw))
}

// rebaseElite corrects a derived elite variant that would lose its elite
// behavior because its declared base is non-vanilla: when the enemy's own
// identifier is a stock elite, the entry is forced to use itself as base.
func rebaseElite(out []byte, id string, tb *tables.Tables, sink diagnostic.Sink) ([]byte, error) {
	entry := gjson.GetBytes(out, joinPath("EnemiesNoSync", id))

	if entry.Get("Elite").Type != gjson.True {
		return out, nil
	}

	base := entry.Get("Base").String()
	if tb.VanillaElites.Contains(base) || !tb.VanillaElites.Contains(id) {
		return out, nil
	}

	sink.Report(diagnostic.Infof(diagnostic.CodeNonVanillaElite, id,
		"non-vanilla elite base %q, forcing the elite base to the enemy itself", base))

	return sjson.SetBytes(out, joinPath("EnemiesNoSync", id, "ForceEliteBase"), id)
}
