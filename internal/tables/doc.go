// Package tables loads the translation data that drives a conversion: which
// top-level fields relocate where, where legacy pawn stats land, which
// per-enemy controls the new schema accepts, and which enemies have stock
// elite variants.
//
// A default table covering the stock fields ships embedded in the binary;
// an external file can replace it wholesale. YAML is a JSON superset, so
// either format loads.
//
// # Schema Overview
//
// The translation-data file has the following structure:
//
//	top_modules:
//	  MaxActiveEnemies: Caps          # relocate under the Caps module
//	  EliteCooldown: deprecated       # dropped with a notice
//	  Name: ignore                    # dropped silently (handled elsewhere)
//	pawn_stats:
//	  PST_FireResistance: {module: Resistances, field: Fire}
//	  PST_MovementSpeed: {module: None, field: MaxMovementSpeed}
//	valid_enemy_controls:
//	  - Base
//	  - Elite
//	vanilla_elite_enemies:
//	  - ED_Spider_Grunt
//
// # Status Convention
//
// Status values in top_modules form an open set: "deprecated" and "ignore"
// are reserved, anything else is read as the name of the target module. The
// strings are parsed once at load time into a tagged FieldStatus; lookups
// return variants, never raw strings.
//
// # Pawn Stat Targets
//
// A pawn_stats entry names the module and field a legacy stat moves to. The
// special module "None" means the field is written directly on the enemy
// entry. Whether a value is inverted on the way over is a fixed rule in the
// translator, not part of this data.
package tables
