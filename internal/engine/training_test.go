package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTrainingRequiresPlayer(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})

	_, _, err := eng.RunTraining("net_basics")
	require.ErrorIs(t, err, ErrNoPlayer)
}

func TestRunTrainingUnknownModuleLeavesStateUntouched(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	_, err := eng.CreatePlayer("Sable", "analyst")
	require.NoError(t, err)
	before, err := eng.ExportState()
	require.NoError(t, err)

	_, _, err = eng.RunTraining("foo_module")
	require.ErrorIs(t, err, ErrNotFound)

	after, err := eng.ExportState()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunTrainingInsufficientFundsLeavesStateUntouched(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	p, err := eng.CreatePlayer("Sable", "analyst")
	require.NoError(t, err)
	p.Resources.Credits = 100
	before, err := eng.ExportState()
	require.NoError(t, err)

	_, _, err = eng.RunTraining("net_basics")
	require.ErrorIs(t, err, ErrInsufficientFunds)

	after, err := eng.ExportState()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunTrainingSuccessGrantsSkillsAndResearch(t *testing.T) {
	eng := newTestEngine(t, alwaysSucceed())
	p, err := eng.CreatePlayer("Sable", "analyst")
	require.NoError(t, err)

	success, msg, err := eng.RunTraining("web_recon")
	require.NoError(t, err)
	assert.True(t, success)
	assert.Contains(t, msg, "Training complete")
	assert.Equal(t, 5000-900, p.Resources.Credits)
	assert.Equal(t, 1, p.Skills["web"])
	assert.Equal(t, 1, p.Resources.ResearchPoints)
	assert.Equal(t, 9+6, p.Hour)
	assert.Equal(t, 1, p.EventsSinceAge)
}

func TestRunTrainingFailureStillCosts(t *testing.T) {
	eng := newTestEngine(t, alwaysFail())
	p, err := eng.CreatePlayer("Sable", "analyst")
	require.NoError(t, err)

	success, msg, err := eng.RunTraining("web_recon")
	require.NoError(t, err)
	assert.False(t, success)
	assert.Contains(t, msg, "Training failed")
	assert.Equal(t, 5000-900, p.Resources.Credits, "cost is not refunded on a failed roll")
	assert.Zero(t, p.Skills["web"])
	assert.Zero(t, p.Resources.ResearchPoints)
	assert.Equal(t, 9+6, p.Hour, "time passes even when training fails")
}

func TestRunTrainingSkillGainClampedAtCap(t *testing.T) {
	eng := newTestEngine(t, alwaysSucceed())
	p, err := eng.CreatePlayer("Sable", "analyst")
	require.NoError(t, err)
	p.Skills["web"] = 10
	p.Resources.Credits = 100000

	_, _, err = eng.RunTraining("web_recon")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Skills["web"])
}

func TestTrainingChanceFormula(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	_, err := eng.CreatePlayer("Sable", "nomad")
	require.NoError(t, err)

	mod, ok := eng.Library().TrainingByID("web_recon")
	require.True(t, ok)

	// base 0.8 + 0.05*(45/100) + 0.03*(40/100) + 0.01*1, exposure 5 is
	// under the grace threshold.
	assert.InDelta(t, 0.8445, eng.trainingChance(mod), 1e-9)

	// Exposure beyond the grace threshold costs 0.002 per point.
	eng.Player().Attributes.Exposure = 30
	assert.InDelta(t, 0.8445-0.02, eng.trainingChance(mod), 1e-9)
}

func TestTrainingChanceClampBounds(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	p, err := eng.CreatePlayer("Sable", "nomad")
	require.NoError(t, err)

	mod, ok := eng.Library().TrainingByID("net_basics")
	require.True(t, ok)

	p.Resources.Hardware = 100
	assert.Equal(t, 0.98, eng.trainingChance(mod), "upper clamp")

	p.Resources.Hardware = 0
	p.Attributes.Intellect = 0
	p.Attributes.Discipline = 0
	p.Attributes.Exposure = 1000
	assert.Equal(t, 0.2, eng.trainingChance(mod), "lower clamp")
}
