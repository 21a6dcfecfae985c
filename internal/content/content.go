// Package content provides the static content catalogs: backgrounds,
// training modules, task contracts, gear, the market trend cycle, and crisis
// events. Catalogs are immutable lookup tables; the engine reads them and
// never writes back.
package content

// Contract legality values.
const (
	LegalityLawful  = "lawful"
	LegalityIllegal = "illegal"
)

// Contract risk tiers.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Background is a starting profile: attribute modifiers applied additively
// and starting skill levels applied as overwrites.
type Background struct {
	Key            string         `yaml:"key" json:"key"`
	Label          string         `yaml:"label" json:"label"`
	Mods           map[string]int `yaml:"mods" json:"mods"`
	StartingSkills map[string]int `yaml:"starting_skills" json:"starting_skills"`
	Lore           string         `yaml:"lore" json:"lore"`
}

// TrainingModule is a purchasable course that raises skills on a successful
// roll. Cost is deducted up front whether or not the roll succeeds.
type TrainingModule struct {
	ID          string         `yaml:"id" json:"id"`
	Title       string         `yaml:"title" json:"title"`
	Tier        int            `yaml:"tier" json:"tier"`
	Category    string         `yaml:"category" json:"category"`
	BaseSuccess float64        `yaml:"base_success" json:"base_success"`
	Cost        int            `yaml:"cost" json:"cost"`
	Hours       int            `yaml:"hours" json:"hours"`
	SkillGain   map[string]int `yaml:"skill_gain" json:"skill_gain"`
	Description string         `yaml:"description" json:"description"`
}

// TaskContract is a job with a legality, risk tier, hard skill requirements,
// and a payout range scaled by the current market snapshot.
type TaskContract struct {
	ID           string         `yaml:"id" json:"id"`
	Name         string         `yaml:"name" json:"name"`
	Legality     string         `yaml:"legality" json:"legality"`
	Risk         string         `yaml:"risk" json:"risk"`
	PayoutMin    int            `yaml:"payout_min" json:"payout_min"`
	PayoutMax    int            `yaml:"payout_max" json:"payout_max"`
	Requirements map[string]int `yaml:"requirements" json:"requirements"`
	Description  string         `yaml:"description" json:"description"`
}

// GearItem is a purchasable upgrade. Bonus keys resolve generically against
// attributes, resources, then skills.
type GearItem struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Cost        int            `yaml:"cost" json:"cost"`
	Bonuses     map[string]int `yaml:"bonuses" json:"bonuses"`
	Category    string         `yaml:"category" json:"category"`
	Description string         `yaml:"description" json:"description"`
}

// MarketTrendEntry is one position in the cyclic market trend table.
type MarketTrendEntry struct {
	Name        string  `yaml:"name" json:"name"`
	Lawful      float64 `yaml:"lawful" json:"lawful"`
	Underground float64 `yaml:"underground" json:"underground"`
	Enforcement int     `yaml:"enforcement" json:"enforcement"`
	Trend       string  `yaml:"trend" json:"trend"`
}

// Snapshot derives the market view for this trend entry. Snapshots are
// computed on demand, never stored.
func (m MarketTrendEntry) Snapshot() MarketSnapshot {
	return MarketSnapshot{
		LawfulMultiplier:      m.Lawful,
		UndergroundMultiplier: m.Underground,
		EnforcementLevel:      m.Enforcement,
		Trend:                 m.Trend,
	}
}

// MarketSnapshot is the derived market view the engine hands to callers.
type MarketSnapshot struct {
	LawfulMultiplier      float64 `json:"lawful_multiplier"`
	UndergroundMultiplier float64 `json:"underground_multiplier"`
	EnforcementLevel      int     `json:"enforcement_level"`
	Trend                 string  `json:"trend"`
}

// CrisisOption is one forced choice inside a crisis event. Its delta maps
// are applied generically by key on success or failure.
type CrisisOption struct {
	Label        string         `yaml:"label" json:"label"`
	BaseSuccess  float64        `yaml:"base_success" json:"base_success"`
	Requirement  string         `yaml:"requirement,omitempty" json:"requirement,omitempty"`
	SuccessDelta map[string]int `yaml:"success_delta" json:"success_delta"`
	FailureDelta map[string]int `yaml:"failure_delta" json:"failure_delta"`
	Description  string         `yaml:"description" json:"description"`
}

// CrisisEvent is a forced-choice event. Trigger holds the raw condition
// expression from content; Condition is its parsed form, populated during
// validation.
type CrisisEvent struct {
	ID         string         `yaml:"id" json:"id"`
	Title      string         `yaml:"title" json:"title"`
	Trigger    string         `yaml:"trigger" json:"trigger"`
	Difficulty string         `yaml:"difficulty" json:"difficulty"`
	Options    []CrisisOption `yaml:"options" json:"options"`

	Condition Condition `yaml:"-" json:"-"`
}

// Library aggregates every catalog. Build one at process start via Default
// or Load and treat it as read-only afterwards.
type Library struct {
	Backgrounds  []Background       `yaml:"backgrounds" json:"backgrounds"`
	Training     []TrainingModule   `yaml:"training" json:"training"`
	Contracts    []TaskContract     `yaml:"contracts" json:"contracts"`
	Gear         []GearItem         `yaml:"gear" json:"gear"`
	MarketTrends []MarketTrendEntry `yaml:"market_trends" json:"market_trends"`
	CrisisEvents []CrisisEvent      `yaml:"crisis_events" json:"crisis_events"`
}

// BackgroundByKey looks up a background profile.
func (l *Library) BackgroundByKey(key string) (Background, bool) {
	for _, bg := range l.Backgrounds {
		if bg.Key == key {
			return bg, true
		}
	}
	return Background{}, false
}

// TrainingByID looks up a training module.
func (l *Library) TrainingByID(id string) (TrainingModule, bool) {
	for _, mod := range l.Training {
		if mod.ID == id {
			return mod, true
		}
	}
	return TrainingModule{}, false
}

// ContractByID looks up a task contract.
func (l *Library) ContractByID(id string) (TaskContract, bool) {
	for _, c := range l.Contracts {
		if c.ID == id {
			return c, true
		}
	}
	return TaskContract{}, false
}

// GearByID looks up a gear item.
func (l *Library) GearByID(id string) (GearItem, bool) {
	for _, g := range l.Gear {
		if g.ID == id {
			return g, true
		}
	}
	return GearItem{}, false
}

// CrisisByID looks up a crisis event. The returned pointer references the
// library's own record; callers must not mutate it.
func (l *Library) CrisisByID(id string) (*CrisisEvent, bool) {
	for i := range l.CrisisEvents {
		if l.CrisisEvents[i].ID == id {
			return &l.CrisisEvents[i], true
		}
	}
	return nil, false
}
