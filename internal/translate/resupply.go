package translate

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"cd2-converter/internal/diagnostic"
	"cd2-converter/internal/tables"
)

const (
	// defaultResupplyCost is assumed when the source omits the cost or left
	// it at the stock value.
	defaultResupplyCost = 80.0
	// resupplyMutator tags a cost that varies with the running call count.
	resupplyMutator = "ByResuppliesCalled"
)

// mutator is the tagged value the new schema reads as "look up the cost by
// how many resupplies were called so far".
type mutator struct {
	Mutate string    `json:"Mutate"`
	Values []float64 `json:"Values"`
}

func resupplyStage(original gjson.Result, out []byte, _ *tables.Tables, _ diagnostic.Sink) ([]byte, error) {
	cost := defaultResupplyCost
	if rc := original.Get("ResupplyCost"); rc.Exists() && rc.Float() != defaultResupplyCost {
		cost = rc.Float()
	}

	nitra := original.Get("StartingNitra")
	if !nitra.Exists() || nitra.Float() == 0 {
		return sjson.SetBytes(out, "Resupply.Cost", cost)
	}

	raw, err := json.Marshal(mutator{
		Mutate: resupplyMutator,
		Values: supplyVector(nitra.Float(), cost),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding resupply mutator: %w", err)
	}

	return sjson.SetRawBytes(out, "Resupply.Cost", raw)
}

// supplyVector spreads the starting nitra across the first resupply calls:
// full freebies while the nitra lasts, one partially discounted call for the
// remainder, then the original cost. The element at index i prices call i;
// the last element repeats for every later call and always equals the
// effective original cost.
func supplyVector(nitra, cost float64) []float64 {
	if nitra <= cost {
		return []float64{cost - nitra, cost}
	}

	free := int(nitra / cost)
	values := make([]float64, 0, free+2)
	for range free {
		values = append(values, 0)
	}

	return append(values, cost-math.Mod(nitra, cost), cost)
}
