package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/undernet/internal/content"
	"github.com/talgya/undernet/internal/entropy"
)

// scriptRand feeds predetermined uniform draws into the engine so outcome
// branches can be tested deterministically. IntBetween always returns the
// lower bound.
type scriptRand struct {
	floats []float64
	next   int
}

func (s *scriptRand) Float() float64 {
	if s.next < len(s.floats) {
		v := s.floats[s.next]
		s.next++
		return v
	}
	return 0.5
}

func (s *scriptRand) IntBetween(lo, hi int) int { return lo }

// alwaysSucceed rolls below every clamped minimum chance.
func alwaysSucceed() *scriptRand { return &scriptRand{floats: []float64{0}} }

// alwaysFail rolls above every clamped maximum chance.
func alwaysFail() *scriptRand { return &scriptRand{floats: []float64{0.99, 0.99, 0.99, 0.99}} }

func newTestEngine(t *testing.T, rng Rand) *Engine {
	t.Helper()
	return New(content.Default(), rng)
}

func TestCreatePlayerAppliesBackground(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})

	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)
	require.Same(t, p, eng.Player())

	assert.Equal(t, 45, p.Attributes.Intellect)
	assert.Equal(t, 50, p.Attributes.Nerve)
	assert.Equal(t, 20, p.Attributes.Economy)
	assert.Equal(t, 1, p.Skills["foundation"])
	assert.Equal(t, 1, p.Skills["web"])
	assert.Len(t, p.Log, 1)
	assert.Zero(t, p.EventsSinceAge, "initial log line must not drive the aging counter")
}

func TestCreatePlayerUnknownBackground(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})

	_, err := eng.CreatePlayer("Wraith", "astronaut")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, eng.Player())
}

func TestCreatePlayerDefaultCodename(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})

	p, err := eng.CreatePlayer("", "analyst")
	require.NoError(t, err)
	assert.Equal(t, "Zero", p.Codename)
	assert.Equal(t, 55, p.Attributes.Intellect)
	assert.Equal(t, 10, p.Attributes.Exposure)
	assert.Equal(t, 2, p.Skills["foundation"])
}

func TestCreatePlayerDiscardsPrevious(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})

	_, err := eng.CreatePlayer("First", "nomad")
	require.NoError(t, err)
	p, err := eng.CreatePlayer("Second", "ghost")
	require.NoError(t, err)
	assert.Equal(t, "Second", eng.Player().Codename)
	assert.Equal(t, 55, p.Attributes.Nerve)
}

// Determinism law: given the same seed and the same operation sequence, two
// fresh engines end in identical state with identical logs.
func TestDeterministicOutcomeSequence(t *testing.T) {
	run := func() SaveDocument {
		eng := New(content.Default(), entropy.NewSource(1))
		_, err := eng.CreatePlayer("Mirror", "freelancer")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, _, err = eng.RunTraining("web_recon")
			require.NoError(t, err)
		}
		eng.AdvanceMarket()
		if _, _, err := eng.StartContract("bb_light"); err != nil {
			require.ErrorIs(t, err, ErrInsufficientSkill)
		}
		_, err = eng.PurchaseGear("rig_basic")
		require.NoError(t, err)
		eng.AdvanceMarket()

		doc, err := eng.ExportState()
		require.NoError(t, err)
		return doc
	}

	first, err := json.Marshal(run())
	require.NoError(t, err)
	second, err := json.Marshal(run())
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}
