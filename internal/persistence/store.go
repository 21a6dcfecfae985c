// Package persistence provides SQLite-backed save-slot storage for engine
// state documents. It is the persistence adapter collaborator: it consumes
// the engine's export/import contracts and owns no simulation rules.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/undernet/internal/engine"
)

// ErrSlotNotFound is returned when loading or deleting a slot that does not
// exist.
var ErrSlotNotFound = errors.New("save slot not found")

// Store wraps a SQLite connection holding save slots.
type Store struct {
	conn *sqlx.DB
}

// SlotInfo describes one save slot without its payload.
type SlotInfo struct {
	Slot     string    `db:"slot" json:"slot"`
	Codename string    `db:"codename" json:"codename"`
	SavedAt  time.Time `db:"saved_at" json:"saved_at"`
}

// Open opens or creates a save database at the given path. Use ":memory:"
// for an ephemeral store.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slots (
		slot TEXT PRIMARY KEY,
		codename TEXT NOT NULL,
		payload TEXT NOT NULL,
		saved_at TIMESTAMP NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save writes a state document into a named slot, replacing any previous
// save in that slot.
func (s *Store) Save(slot string, doc engine.SaveDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	codename := ""
	if doc.Player != nil {
		codename = doc.Player.Codename
	}
	_, err = s.conn.Exec(
		`INSERT OR REPLACE INTO save_slots (slot, codename, payload, saved_at) VALUES (?, ?, ?, ?)`,
		slot, codename, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	return nil
}

// Load reads a slot back into a state document. Decoding applies the
// engine's per-field defaults, so slots written by older builds still load.
func (s *Store) Load(slot string) (engine.SaveDocument, error) {
	var payload string
	err := s.conn.Get(&payload, `SELECT payload FROM save_slots WHERE slot = ?`, slot)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.SaveDocument{}, fmt.Errorf("slot %q: %w", slot, ErrSlotNotFound)
	}
	if err != nil {
		return engine.SaveDocument{}, fmt.Errorf("read slot %q: %w", slot, err)
	}
	return engine.DecodeSaveDocument([]byte(payload))
}

// List returns all slots, most recent first.
func (s *Store) List() ([]SlotInfo, error) {
	var slots []SlotInfo
	err := s.conn.Select(&slots,
		`SELECT slot, codename, saved_at FROM save_slots ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

// Delete removes a slot.
func (s *Store) Delete(slot string) error {
	res, err := s.conn.Exec(`DELETE FROM save_slots WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("slot %q: %w", slot, ErrSlotNotFound)
	}
	return nil
}
