package content

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a full catalog set from YAML and validates it. Sections left
// empty in the document fall back to the built-in defaults, so a content
// override file may replace only the tables it cares about.
func Load(r io.Reader) (*Library, error) {
	var lib Library
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lib); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	if lib.Backgrounds == nil {
		lib.Backgrounds = defaultBackgrounds()
	}
	if lib.Training == nil {
		lib.Training = defaultTraining()
	}
	if lib.Contracts == nil {
		lib.Contracts = defaultContracts()
	}
	if lib.Gear == nil {
		lib.Gear = defaultGear()
	}
	if lib.MarketTrends == nil {
		lib.MarketTrends = defaultMarketTrends()
	}
	if lib.CrisisEvents == nil {
		lib.CrisisEvents = defaultCrisisEvents()
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// LoadFile reads a catalog set from a YAML file on disk.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks catalog integrity and parses crisis trigger expressions
// into their tagged form. It is safe to call more than once.
func (l *Library) Validate() error {
	seen := make(map[string]struct{})
	unique := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("content: %s with empty id", kind)
		}
		key := kind + "/" + id
		if _, dup := seen[key]; dup {
			return fmt.Errorf("content: duplicate %s id %q", kind, id)
		}
		seen[key] = struct{}{}
		return nil
	}

	knownSkill := make(map[string]struct{})
	for _, s := range skillVocabulary {
		knownSkill[s] = struct{}{}
	}

	for _, bg := range l.Backgrounds {
		if err := unique("background", bg.Key); err != nil {
			return err
		}
		for skill := range bg.StartingSkills {
			if _, ok := knownSkill[skill]; !ok {
				return fmt.Errorf("content: background %q grants unknown skill %q", bg.Key, skill)
			}
		}
	}

	for _, mod := range l.Training {
		if err := unique("training", mod.ID); err != nil {
			return err
		}
		if mod.BaseSuccess < 0 || mod.BaseSuccess > 1 {
			return fmt.Errorf("content: training %q base_success %v out of [0,1]", mod.ID, mod.BaseSuccess)
		}
		if mod.Cost < 0 || mod.Hours <= 0 {
			return fmt.Errorf("content: training %q has invalid cost/hours", mod.ID)
		}
		for skill := range mod.SkillGain {
			if _, ok := knownSkill[skill]; !ok {
				return fmt.Errorf("content: training %q gains unknown skill %q", mod.ID, skill)
			}
		}
	}

	for _, c := range l.Contracts {
		if err := unique("contract", c.ID); err != nil {
			return err
		}
		if c.Legality != LegalityLawful && c.Legality != LegalityIllegal {
			return fmt.Errorf("content: contract %q has unknown legality %q", c.ID, c.Legality)
		}
		if c.PayoutMin < 0 || c.PayoutMax < c.PayoutMin {
			return fmt.Errorf("content: contract %q has invalid payout range [%d,%d]", c.ID, c.PayoutMin, c.PayoutMax)
		}
		for skill := range c.Requirements {
			if _, ok := knownSkill[skill]; !ok {
				return fmt.Errorf("content: contract %q requires unknown skill %q", c.ID, skill)
			}
		}
	}

	for _, g := range l.Gear {
		if err := unique("gear", g.ID); err != nil {
			return err
		}
		if g.Cost < 0 {
			return fmt.Errorf("content: gear %q has negative cost", g.ID)
		}
	}

	if len(l.MarketTrends) == 0 {
		return fmt.Errorf("content: market trend cycle is empty")
	}

	for i := range l.CrisisEvents {
		evt := &l.CrisisEvents[i]
		if err := unique("crisis", evt.ID); err != nil {
			return err
		}
		if len(evt.Options) == 0 {
			return fmt.Errorf("content: crisis %q has no options", evt.ID)
		}
		for _, opt := range evt.Options {
			if opt.BaseSuccess < 0 || opt.BaseSuccess > 1 {
				return fmt.Errorf("content: crisis %q option %q base_success out of [0,1]", evt.ID, opt.Label)
			}
		}
		evt.Condition = ParseCondition(evt.Trigger)
	}

	return nil
}

// skillVocabulary mirrors the player package's fixed skill keys. Kept local
// so content stays independent of the state model.
var skillVocabulary = []string{"foundation", "web", "binary", "mobile", "social", "cloud"}
