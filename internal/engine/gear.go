package engine

import (
	"fmt"

	"github.com/talgya/undernet/internal/content"
	"github.com/talgya/undernet/internal/player"
)

// ListGear returns the full gear catalog.
func (e *Engine) ListGear() []content.GearItem {
	return e.library.Gear
}

// PurchaseGear buys an item and applies its bonuses generically: each bonus
// key is probed against attributes, then resources, then skills, and the
// first matching container wins.
func (e *Engine) PurchaseGear(itemID string) (string, error) {
	if err := e.requirePlayer(); err != nil {
		return "", err
	}
	item, ok := e.library.GearByID(itemID)
	if !ok {
		return "", fmt.Errorf("gear %q: %w", itemID, ErrNotFound)
	}
	if e.player.Resources.Credits < item.Cost {
		return "", fmt.Errorf("gear %q costs %d: %w", itemID, item.Cost, ErrInsufficientFunds)
	}

	e.player.Resources.Credits -= item.Cost
	e.player.ApplyDeltaMap(item.Bonuses, player.GearTargets)

	msg := fmt.Sprintf("Purchased %s", item.Name)
	e.log(msg)
	e.evaluateTriggers()
	return msg, nil
}
