// Package engine implements the simulation rule engine: it owns the player
// aggregate, computes success probabilities, applies state deltas, advances
// in-game time, and drives the crisis state machine. One exported method per
// player action; every mutating method re-evaluates crisis triggers before
// returning.
//
// An Engine is not safe for concurrent use. Callers hosting multiple
// concurrent clients must serialize access per engine (see internal/api).
package engine

import (
	"fmt"

	"github.com/talgya/undernet/internal/content"
	"github.com/talgya/undernet/internal/player"
)

// Rand is the engine's randomness dependency. entropy.Source satisfies it;
// tests substitute scripted sequences.
type Rand interface {
	// Float returns a uniform float64 in [0, 1).
	Float() float64
	// IntBetween returns a uniform int in [lo, hi], inclusive.
	IntBetween(lo, hi int) int
}

// Engine is one simulation session.
type Engine struct {
	rng     Rand
	library *content.Library
	bal     Balance

	player       *player.Player
	marketIndex  int
	activeCrisis *content.CrisisEvent
}

// New creates an engine over the given catalogs and random source, with
// default balance.
func New(lib *content.Library, rng Rand) *Engine {
	return NewWithBalance(lib, rng, DefaultBalance())
}

// NewWithBalance creates an engine with explicit balance coefficients.
func NewWithBalance(lib *content.Library, rng Rand, bal Balance) *Engine {
	return &Engine{rng: rng, library: lib, bal: bal}
}

// Player returns the current player aggregate, or nil before CreatePlayer.
// The returned value is owned by the engine; callers only read it.
func (e *Engine) Player() *player.Player { return e.player }

// Library returns the engine's content catalogs.
func (e *Engine) Library() *content.Library { return e.library }

// MarketIndex returns the current position in the market trend cycle.
func (e *Engine) MarketIndex() int { return e.marketIndex }

// CreatePlayer builds a fresh character from a background profile. Attribute
// modifiers apply additively (floored at zero); starting skills overwrite.
// Any pre-existing player is discarded.
func (e *Engine) CreatePlayer(codename, backgroundKey string) (*player.Player, error) {
	profile, ok := e.library.BackgroundByKey(backgroundKey)
	if !ok {
		return nil, fmt.Errorf("background %q: %w", backgroundKey, ErrNotFound)
	}
	if codename == "" {
		codename = "Zero"
	}

	p := player.New(codename, backgroundKey)
	for attr, delta := range profile.Mods {
		p.BumpAttribute(attr, delta)
	}
	for skill, level := range profile.StartingSkills {
		p.Skills[skill] = level
	}
	p.Log = append(p.Log, fmt.Sprintf("Jacked in: %s", profile.Label))

	e.player = p
	return p, nil
}

func (e *Engine) requirePlayer() error {
	if e.player == nil {
		return ErrNoPlayer
	}
	return nil
}

// log appends to the player's action log, driving the aging counter.
func (e *Engine) log(message string) {
	if e.player != nil {
		e.player.AppendLog(message)
	}
}
