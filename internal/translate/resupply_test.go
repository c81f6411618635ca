package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"cd2-converter/internal/common"
	"cd2-converter/internal/diagnostic"
)

func runResupply(t *testing.T, src string) gjson.Result {
	t.Helper()

	out, err := resupplyStage(gjson.Parse(src), []byte("{}"), testTables(), diagnostic.Discard{})
	require.NoError(t, err)

	return gjson.GetBytes(out, "Resupply.Cost")
}

func costValues(result gjson.Result) []float64 {
	raw := result.Get("Values").Array()

	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.Float())
	}

	return out
}

func TestResupplyPlainCost(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected float64
	}{
		{"everything absent", `{}`, 80},
		{"nitra zero", `{"StartingNitra": 0}`, 80},
		{"custom cost kept", `{"ResupplyCost": 100}`, 100},
		{"stock cost normalized", `{"ResupplyCost": 80}`, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := runResupply(t, tt.src)
			require.Equal(t, gjson.Number, cost.Type, "expected a plain number, got %s", cost.Raw)
			assert.Equal(t, tt.expected, cost.Float())
		})
	}
}

func TestResupplyMutator(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []float64
	}{
		{
			name:     "nitra spread over two free calls",
			src:      `{"ResupplyCost": 80, "StartingNitra": 200}`,
			expected: []float64{0, 0, 40, 80},
		},
		{
			name:     "nitra below cost",
			src:      `{"ResupplyCost": 80, "StartingNitra": 50}`,
			expected: []float64{30, 80},
		},
		{
			name:     "nitra equal to cost",
			src:      `{"ResupplyCost": 80, "StartingNitra": 80}`,
			expected: []float64{0, 80},
		},
		{
			name:     "nitra an exact multiple",
			src:      `{"ResupplyCost": 80, "StartingNitra": 160}`,
			expected: []float64{0, 0, 80, 80},
		},
		{
			name:     "default cost applies",
			src:      `{"StartingNitra": 200}`,
			expected: []float64{0, 0, 40, 80},
		},
		{
			name:     "custom cost applies",
			src:      `{"ResupplyCost": 100, "StartingNitra": 30}`,
			expected: []float64{70, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := runResupply(t, tt.src)
			assert.Equal(t, "ByResuppliesCalled", cost.Get("Mutate").String())
			assert.Equal(t, tt.expected, costValues(cost))
		})
	}
}

func TestSupplyVectorInvariants(t *testing.T) {
	cases := []struct {
		nitra float64
		cost  float64
	}{
		{nitra: 200, cost: 80},
		{nitra: 50, cost: 80},
		{nitra: 80, cost: 80},
		{nitra: 1, cost: 120.5},
		{nitra: 9999, cost: 75},
	}

	for _, tc := range cases {
		vec := supplyVector(tc.nitra, tc.cost)
		require.NotEmpty(t, vec)

		// The steady state is always the effective original cost
		last, ok := common.Last(vec)
		require.True(t, ok)
		assert.Equal(t, tc.cost, last)

		for _, v := range vec {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
}
