package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/tables"
)

// testTables builds a small translation table covering every status kind and
// stat shape the stages distinguish.
func testTables() *tables.Tables {
	ignored := tables.FieldStatus{Kind: tables.StatusIgnored}

	return &tables.Tables{
		TopModules: map[string]tables.FieldStatus{
			"Name":             ignored,
			"Description":      ignored,
			"EscortMule":       ignored,
			"ResupplyCost":     ignored,
			"StartingNitra":    ignored,
			"EnemyDescriptors": ignored,

			"MaxActiveEnemies":  {Kind: tables.StatusValid, Module: "Caps"},
			"BiomeWeights":      {Kind: tables.StatusValid, Module: "WaveSpawners"},
			"StationaryEnemies": {Kind: tables.StatusValid, Module: "Pools"},
			"EnemyPool":         {Kind: tables.StatusValid, Module: "Pools"},
			"EliteCooldown":     {Kind: tables.StatusDeprecated},
		},
		PawnStats: map[string]tables.StatTarget{
			"PST_FireResistance":   {Module: "Resistances", Field: "Fire"},
			"PST_FrostResistance":  {Module: "Resistances", Field: "Frost"},
			"PST_DamageResistance": {Module: "Resistances", Field: "Damage"},
			"PST_MaxHealth":        {Module: "None", Field: "MaxHealth"},
		},
		ValidControls: tables.StringSet{
			"Base": {}, "Elite": {}, "Rarity": {},
			"Resistances": {}, "MaxHealth": {},
		},
		VanillaElites: tables.StringSet{
			"ED_Spider_Grunt": {}, "ED_Spider_Swarmer": {},
		},
	}
}

func mustRun(t *testing.T, src string) ([]byte, *diagnostic.Collector) {
	t.Helper()

	var sink diagnostic.Collector

	out, err := Run([]byte(src), testTables(), &sink)
	require.NoError(t, err)

	return out, &sink
}

func TestRunEndToEnd(t *testing.T) {
	src := `{
		"Name": "Overtuned 6x2",
		"Description": "Grind harder",
		"ResupplyCost": 80,
		"StartingNitra": 200,
		"MaxActiveEnemies": 60,
		"EliteCooldown": 3,
		"Foo": 1,
		"StationaryEnemies": {"Count": 4},
		"EnemyDescriptors": {
			"ED_Spider_Grunt": {
				"Base": "ED_Custom_Grunt",
				"Elite": true,
				"PawnStats": {"PST_FireResistance": 0.3}
			}
		},
		"EscortMule": {"FriendlyFire": 0.5}
	}`

	out, sink := mustRun(t, src)

	// Passthrough
	assert.Equal(t, "Overtuned 6x2", gjson.GetBytes(out, "Name").String())
	assert.Equal(t, "Grind harder", gjson.GetBytes(out, "Description").String())
	assert.Equal(t, 0.5, gjson.GetBytes(out, "EscortMule.FriendlyFire").Float())

	// Resupply
	assert.Equal(t, "ByResuppliesCalled", gjson.GetBytes(out, "Resupply.Cost.Mutate").String())

	// Relocation and fixups
	assert.Equal(t, int64(60), gjson.GetBytes(out, "Caps.MaxActiveEnemies").Int())
	assert.Equal(t, "Hazard 5", gjson.GetBytes(out, "DifficultySetting.BaseHazard").String())
	assert.Equal(t, int64(4), gjson.GetBytes(out, "Pools.StationaryPool.Count").Int())
	assert.False(t, gjson.GetBytes(out, "Pools.StationaryEnemies").Exists())

	// Enemies
	enemy := gjson.GetBytes(out, "EnemiesNoSync.ED_Spider_Grunt")
	require.True(t, enemy.Exists())
	assert.InDelta(t, 0.7, enemy.Get("Resistances.Fire").Float(), 1e-12)
	assert.False(t, enemy.Get("PawnStats").Exists())
	assert.Equal(t, "ED_Spider_Grunt", enemy.Get("ForceEliteBase").String())

	// Dropped fields stay dropped
	assert.False(t, gjson.GetBytes(out, "Foo").Exists())
	assert.False(t, gjson.GetBytes(out, "EliteCooldown").Exists())

	// One warning for Foo, infos for the deprecation and the elite rebase
	require.Len(t, sink.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnsupportedField, sink.Warnings[0].Code)
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not json", `{"Name": `},
		{"not an object", `[1, 2, 3]`},
		{"scalar", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink diagnostic.Collector

			_, err := Run([]byte(tt.src), testTables(), &sink)
			assert.Error(t, err)
		})
	}
}

func TestStagesOrder(t *testing.T) {
	names := make([]string, 0, 4)
	for _, stage := range Stages() {
		names = append(names, stage.Name)
	}

	assert.Equal(t, []string{"passthrough", "resupply", "top-modules", "enemies"}, names)
}

func TestEscapePath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Plain", "Plain"},
		{"has.dot", `has\.dot`},
		{"a*b?c", `a\*b\?c`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapePath(tt.in))
		})
	}
}

func TestJoinPathEscapesKeys(t *testing.T) {
	assert.Equal(t, `EnemiesNoSync.ED\.Weird`, joinPath("EnemiesNoSync", "ED.Weird"))
}
