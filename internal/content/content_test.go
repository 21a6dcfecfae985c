package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibraryIsValid(t *testing.T) {
	lib := Default()
	require.NoError(t, lib.Validate())

	assert.NotEmpty(t, lib.Backgrounds)
	assert.NotEmpty(t, lib.Training)
	assert.NotEmpty(t, lib.Contracts)
	assert.NotEmpty(t, lib.Gear)
	assert.NotEmpty(t, lib.MarketTrends)
	assert.NotEmpty(t, lib.CrisisEvents)
}

func TestDefaultCrisisConditionsParsed(t *testing.T) {
	lib := Default()

	trace, ok := lib.CrisisByID("law_trace")
	require.True(t, ok)
	assert.Equal(t, CondCompare, trace.Condition.Kind)
	assert.Equal(t, "law_watch", trace.Condition.Field)

	crash, ok := lib.CrisisByID("market_crash")
	require.True(t, ok)
	assert.Equal(t, CondMarketPeak, crash.Condition.Kind)
}

func TestLibraryLookups(t *testing.T) {
	lib := Default()

	bg, ok := lib.BackgroundByKey("ghost")
	require.True(t, ok)
	assert.Equal(t, "ghost", bg.Key)
	_, ok = lib.BackgroundByKey("astronaut")
	assert.False(t, ok)

	mod, ok := lib.TrainingByID("net_basics")
	require.True(t, ok)
	assert.Equal(t, 1, mod.Tier)
	_, ok = lib.TrainingByID("nope")
	assert.False(t, ok)

	c, ok := lib.ContractByID("datavault")
	require.True(t, ok)
	assert.Equal(t, LegalityIllegal, c.Legality)

	g, ok := lib.GearByID("vpn_mesh")
	require.True(t, ok)
	assert.Equal(t, -5, g.Bonuses["exposure"])

	_, ok = lib.CrisisByID("nope")
	assert.False(t, ok)
}

func TestLoadFallsBackPerSection(t *testing.T) {
	doc := `
contracts:
  - id: only_job
    name: The only job
    legality: lawful
    risk: low
    payout_min: 100
    payout_max: 200
    requirements:
      web: 1
`
	lib, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, lib.Contracts, 1)
	assert.Equal(t, "only_job", lib.Contracts[0].ID)

	// Untouched sections come from the built-in tables.
	assert.Len(t, lib.Backgrounds, 4)
	assert.Len(t, lib.Training, 6)
	assert.NotEmpty(t, lib.MarketTrends)
	assert.NotEmpty(t, lib.CrisisEvents)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("contraccts: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode content")
}

func TestValidateRejectsBadContent(t *testing.T) {
	base := func() *Library {
		return &Library{
			Backgrounds:  []Background{{Key: "nomad", Label: "Nomad"}},
			MarketTrends: []MarketTrendEntry{{Name: "flat", Lawful: 1, Underground: 1}},
		}
	}

	lib := base()
	lib.Contracts = []TaskContract{
		{ID: "a", Name: "A", Legality: LegalityLawful, Risk: RiskLow, PayoutMin: 1, PayoutMax: 2},
		{ID: "a", Name: "A again", Legality: LegalityLawful, Risk: RiskLow, PayoutMin: 1, PayoutMax: 2},
	}
	assert.ErrorContains(t, lib.Validate(), "duplicate")

	lib = base()
	lib.Contracts = []TaskContract{
		{ID: "b", Name: "B", Legality: "gray", Risk: RiskLow, PayoutMin: 1, PayoutMax: 2},
	}
	assert.ErrorContains(t, lib.Validate(), "legality")

	lib = base()
	lib.Contracts = []TaskContract{
		{ID: "c", Name: "C", Legality: LegalityLawful, Risk: RiskLow, PayoutMin: 10, PayoutMax: 5},
	}
	assert.ErrorContains(t, lib.Validate(), "payout")

	lib = base()
	lib.Training = []TrainingModule{
		{ID: "t", Title: "T", BaseSuccess: 1.5, Cost: 1, Hours: 1},
	}
	assert.ErrorContains(t, lib.Validate(), "base_success")

	lib = base()
	lib.Training = []TrainingModule{
		{ID: "t", Title: "T", BaseSuccess: 0.5, Cost: 1, Hours: 1, SkillGain: map[string]int{"quantum": 1}},
	}
	assert.ErrorContains(t, lib.Validate(), "unknown skill")

	lib = base()
	lib.MarketTrends = nil
	assert.ErrorContains(t, lib.Validate(), "market trend")

	lib = base()
	lib.CrisisEvents = []CrisisEvent{{ID: "empty", Title: "Empty"}}
	assert.ErrorContains(t, lib.Validate(), "no options")
}
