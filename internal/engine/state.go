package engine

import (
	"encoding/json"
	"fmt"

	"github.com/talgya/undernet/internal/player"
)

// SaveDocument is the flat whole-state persistence document: the player
// snapshot plus the engine's market cursor.
type SaveDocument struct {
	Player      *player.Snapshot `json:"player"`
	MarketIndex int              `json:"market_index"`
}

// ExportState captures the session for persistence.
func (e *Engine) ExportState() (SaveDocument, error) {
	if e.player == nil {
		return SaveDocument{}, fmt.Errorf("export: %w", ErrNoPlayer)
	}
	snap := e.player.Snapshot()
	return SaveDocument{
		Player:      &snap,
		MarketIndex: e.marketIndex,
	}, nil
}

// ImportState replaces the session with a saved one. The player object is
// required; everything else is optional with construction defaults, so older
// saves missing newer fields still load. Any active crisis is dropped.
func (e *Engine) ImportState(doc SaveDocument) error {
	if doc.Player == nil {
		return fmt.Errorf("import: missing player: %w", ErrCorruptSave)
	}
	e.player = player.Restore(*doc.Player)
	e.marketIndex = doc.MarketIndex
	if trends := len(e.library.MarketTrends); e.marketIndex < 0 || e.marketIndex >= trends {
		e.marketIndex = 0
	}
	e.activeCrisis = nil
	return nil
}

// DecodeSaveDocument parses a persisted JSON document. Defaults are applied
// per field during decode; a missing player key is reported on ImportState,
// not here.
func DecodeSaveDocument(data []byte) (SaveDocument, error) {
	var doc SaveDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return SaveDocument{}, fmt.Errorf("decode save: %w (%v)", ErrCorruptSave, err)
	}
	return doc, nil
}
