package engine

import (
	"fmt"

	"github.com/talgya/undernet/internal/content"
)

// AdvanceMarket moves the market cycle forward one position, wrapping at the
// end of the trend table, and returns the snapshot for the new position.
func (e *Engine) AdvanceMarket() content.MarketSnapshot {
	trends := e.library.MarketTrends
	e.marketIndex = (e.marketIndex + 1) % len(trends)
	entry := trends[e.marketIndex]

	e.log(fmt.Sprintf("Market shift: %s", entry.Name))
	e.evaluateTriggers()
	return entry.Snapshot()
}

// MarketSnapshot derives the market view at the current index.
func (e *Engine) MarketSnapshot() content.MarketSnapshot {
	return e.library.MarketTrends[e.marketIndex].Snapshot()
}

// marketAtPeak reports whether the market index is at the last position of
// the trend cycle.
func (e *Engine) marketAtPeak() bool {
	return e.marketIndex == len(e.library.MarketTrends)-1
}
