package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLawWatchTriggersTrace(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	p.Reputation.LawWatch = 30
	eng.evaluateTriggers()
	assert.Nil(t, eng.ActiveCrisis(), "threshold is strict")

	p.Reputation.LawWatch = 31
	eng.evaluateTriggers()
	crisis := eng.ActiveCrisis()
	require.NotNil(t, crisis)
	assert.Equal(t, "law_trace", crisis.ID)
	assert.Contains(t, p.Log[len(p.Log)-1], "Crisis triggered")
}

func TestMarketPeakTriggersCrash(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	_, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	// Walk the cycle up to, but not onto, the final speculative-peak entry.
	for i := 0; i < len(eng.Library().MarketTrends)-2; i++ {
		eng.AdvanceMarket()
		require.Nil(t, eng.ActiveCrisis())
	}

	eng.AdvanceMarket()
	crisis := eng.ActiveCrisis()
	require.NotNil(t, crisis)
	assert.Equal(t, "market_crash", crisis.ID)
}

func TestNoTriggerWhileCrisisActive(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	p.Reputation.LawWatch = 31
	eng.evaluateTriggers()
	require.NotNil(t, eng.ActiveCrisis())

	// Move the market onto the peak; the crash must not displace the active
	// trace crisis.
	for i := 0; i < len(eng.Library().MarketTrends)-1; i++ {
		eng.AdvanceMarket()
	}
	require.True(t, eng.marketAtPeak())
	assert.Equal(t, "law_trace", eng.ActiveCrisis().ID)
}

func TestNoTriggerWithoutPlayer(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	eng.evaluateTriggers()
	assert.Nil(t, eng.ActiveCrisis())
}

func TestResolveCrisisErrors(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	_, _, err := eng.ResolveCrisis(0)
	require.ErrorIs(t, err, ErrNoPlayer)

	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)
	_, _, err = eng.ResolveCrisis(0)
	require.ErrorIs(t, err, ErrNoCrisis)

	p.Reputation.LawWatch = 31
	eng.evaluateTriggers()
	require.NotNil(t, eng.ActiveCrisis())

	_, _, err = eng.ResolveCrisis(-1)
	require.ErrorIs(t, err, ErrInvalidSelection)
	_, _, err = eng.ResolveCrisis(2)
	require.ErrorIs(t, err, ErrInvalidSelection)
	assert.NotNil(t, eng.ActiveCrisis(), "a bad selection leaves the crisis pending")
}

func TestResolveCrisisSuccessAppliesDeltasAndClears(t *testing.T) {
	eng := newTestEngine(t, alwaysSucceed())
	p, err := eng.CreatePlayer("Wraith", "ghost")
	require.NoError(t, err)

	p.Reputation.LawWatch = 31
	eng.evaluateTriggers()
	require.NotNil(t, eng.ActiveCrisis())

	// Option 1 is the social misdirection: on success law watch drops by 10,
	// which also takes it back under the trigger threshold, so the rescan
	// after the resolution finds nothing.
	ok, msg, err := eng.ResolveCrisis(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, msg, "Crisis defused")
	assert.Equal(t, 21, p.Reputation.LawWatch)
	assert.Nil(t, eng.ActiveCrisis())
}

func TestResolveCrisisFailureCanRetrigger(t *testing.T) {
	eng := newTestEngine(t, alwaysFail())
	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	p.Reputation.LawWatch = 31
	eng.evaluateTriggers()
	require.NotNil(t, eng.ActiveCrisis())

	ok, msg, err := eng.ResolveCrisis(0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, msg, "Crisis fallout")
	assert.Equal(t, 5+5, p.Attributes.Exposure)
	assert.Equal(t, 36, p.Reputation.LawWatch)

	// Law watch is still over the threshold, so the rescan re-activates the
	// same event immediately.
	require.NotNil(t, eng.ActiveCrisis())
	assert.Equal(t, "law_trace", eng.ActiveCrisis().ID)
}

func TestResolveMarketCrashPaysOut(t *testing.T) {
	eng := newTestEngine(t, alwaysSucceed())
	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	for i := 0; i < len(eng.Library().MarketTrends)-1; i++ {
		eng.AdvanceMarket()
	}
	require.NotNil(t, eng.ActiveCrisis())
	require.Equal(t, "market_crash", eng.ActiveCrisis().ID)

	ok, _, err := eng.ResolveCrisis(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5000+3000, p.Resources.Credits)

	// The market is still at its peak, so the crash re-arms until the cycle
	// moves on.
	require.NotNil(t, eng.ActiveCrisis())
	assert.Equal(t, "market_crash", eng.ActiveCrisis().ID)
}

func TestRequirementBonus(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	assert.Zero(t, eng.requirementBonus(""))
	assert.Zero(t, eng.requirementBonus("charisma"))

	p.Skills["social"] = 3
	assert.InDelta(t, 0.15, eng.requirementBonus("social"), 1e-9)

	// "foundation" resolves through the skill table, not the dedicated
	// foundation weight.
	p.Skills["foundation"] = 2
	assert.InDelta(t, 0.10, eng.requirementBonus("foundation"), 1e-9)

	p.Resources.Network = 2
	assert.InDelta(t, 0.08, eng.requirementBonus("network"), 1e-9)
}
