package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/undernet/internal/player"
)

func TestListGearReturnsCatalog(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	assert.Len(t, eng.ListGear(), 5)
}

func TestPurchaseGearErrors(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	_, err := eng.PurchaseGear("rig_basic")
	require.ErrorIs(t, err, ErrNoPlayer)

	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	_, err = eng.PurchaseGear("flux_capacitor")
	require.ErrorIs(t, err, ErrNotFound)

	p.Resources.Credits = 100
	_, err = eng.PurchaseGear("rig_basic")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 100, p.Resources.Credits, "a failed purchase charges nothing")
}

func TestPurchaseGearAppliesBonuses(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	msg, err := eng.PurchaseGear("rig_basic")
	require.NoError(t, err)
	assert.Contains(t, msg, "Fracture laptop")

	assert.Equal(t, 5000-2500, p.Resources.Credits)
	assert.Equal(t, 2, p.Resources.Hardware)
	assert.Equal(t, 47, p.Attributes.Intellect)
	assert.Contains(t, p.Log[len(p.Log)-1], "Purchased")
}

func TestPurchaseGearCanLowerExposure(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)

	_, err = eng.PurchaseGear("vpn_mesh")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Resources.Network)
	assert.Equal(t, 0, p.Attributes.Exposure)
}

func TestPurchaseGearSkillBonusClamps(t *testing.T) {
	eng := newTestEngine(t, &scriptRand{})
	p, err := eng.CreatePlayer("Wraith", "nomad")
	require.NoError(t, err)
	p.Resources.Credits = 50000
	p.Skills["binary"] = player.MaxSkillLevel

	_, err = eng.PurchaseGear("forge_lab")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Skills["binary"], "skill bonuses clamp at the cap")
	assert.Equal(t, 2, p.Resources.ResearchPoints)
}
