package content

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenerateMarketCycle builds a procedural market trend cycle of n entries
// from smooth noise, as an alternative to the hand-authored table. Lawful and
// underground demand drift on separate noise lanes; enforcement loosely
// shadows underground demand. The cycle is deterministic for a given seed,
// and its final entry is always the underground peak so the market-high
// trigger keys off the end of the cycle.
func GenerateMarketCycle(seed int64, n int) []MarketTrendEntry {
	if n < 2 {
		n = 2
	}
	noise := opensimplex.NewNormalized(seed)

	entries := make([]MarketTrendEntry, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * 0.35
		lawful := round2(0.7 + 0.9*noise.Eval2(t, 0))
		underground := round2(0.5 + 1.4*noise.Eval2(t, 17.3))
		enforcement := 1 + int(math.Round(4*noise.Eval2(t, 41.9)))

		entries = append(entries, MarketTrendEntry{
			Name:        fmt.Sprintf("Cycle phase %d", i+1),
			Lawful:      lawful,
			Underground: underground,
			Enforcement: enforcement,
			Trend:       trendLabel(lawful, underground),
		})
	}

	// Rotate the hottest underground phase to the end of the cycle.
	peak := 0
	for i, e := range entries {
		if e.Underground > entries[peak].Underground {
			peak = i
		}
	}
	rotated := append(entries[peak+1:], entries[:peak+1]...)
	rotated[len(rotated)-1].Trend = "speculative peak"
	return rotated
}

func trendLabel(lawful, underground float64) string {
	switch {
	case lawful >= 1.2 && underground >= 1.2:
		return "panic spending"
	case lawful >= 1.2:
		return "lawful demand up"
	case underground >= 1.2:
		return "underground demand up"
	case lawful < 0.9 && underground < 0.9:
		return "slump"
	default:
		return "steady"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
