// Package player provides the mutable player aggregate: attributes,
// reputation, resources, skills, the in-game clock, and the bounded action
// log. The aggregate is owned exclusively by the simulation engine; other
// layers only read it.
package player

import "fmt"

// Skill level bounds and log limits.
const (
	MaxSkillLevel = 10

	maxLogLines      = 80
	persistedLog     = 40
	eventsPerAgeYear = 12
)

// SkillKeys is the fixed skill vocabulary, in display order.
var SkillKeys = []string{"foundation", "web", "binary", "mobile", "social", "cloud"}

// Attributes are the core stats. Exposure tracks how detectable the player's
// activity is: it lowers success odds and raises crisis risk.
type Attributes struct {
	Intellect  int `json:"intellect"`
	Discipline int `json:"discipline"`
	Ethics     int `json:"ethics"`
	Nerve      int `json:"nerve"`
	Economy    int `json:"economy"`
	Exposure   int `json:"exposure"`
}

// DefaultAttributes returns the stats of a freshly created character, before
// background modifiers.
func DefaultAttributes() Attributes {
	return Attributes{
		Intellect:  45,
		Discipline: 40,
		Ethics:     55,
		Nerve:      40,
		Economy:    30,
		Exposure:   5,
	}
}

// Reputation tracks standing with the five factions that react to the
// player's work. Public is clamped to [-100, 100]; the rest never drop
// below zero.
type Reputation struct {
	WhiteHat  int `json:"white_hat"`
	BlackHat  int `json:"black_hat"`
	Corporate int `json:"corporate"`
	LawWatch  int `json:"law_watch"`
	Public    int `json:"public"`
}

// DefaultReputation returns starting reputation.
func DefaultReputation() Reputation {
	return Reputation{WhiteHat: 10, BlackHat: 10, Corporate: 5}
}

// AddWhiteHat adjusts white-hat standing, floored at zero.
func (r *Reputation) AddWhiteHat(delta int) { r.WhiteHat = max(0, r.WhiteHat+delta) }

// AddBlackHat adjusts black-hat standing, floored at zero.
func (r *Reputation) AddBlackHat(delta int) { r.BlackHat = max(0, r.BlackHat+delta) }

// AddCorporate adjusts corporate standing, floored at zero.
func (r *Reputation) AddCorporate(delta int) { r.Corporate = max(0, r.Corporate+delta) }

// AddLawWatch adjusts law-enforcement attention, floored at zero.
func (r *Reputation) AddLawWatch(delta int) { r.LawWatch = max(0, r.LawWatch+delta) }

// AddPublic adjusts public opinion, clamped to [-100, 100].
func (r *Reputation) AddPublic(delta int) {
	r.Public = min(100, max(-100, r.Public+delta))
}

// Resources are the generic bonus pools consumed by success formulas.
// All are non-negative.
type Resources struct {
	Credits        int `json:"credits"`
	Hardware       int `json:"hardware"`
	Network        int `json:"network"`
	ResearchPoints int `json:"research_points"`
}

// DefaultResources returns starting resources.
func DefaultResources() Resources {
	return Resources{Credits: 5000, Hardware: 1, Network: 1}
}

// AddCredits adjusts currency, floored at zero.
func (r *Resources) AddCredits(delta int) { r.Credits = max(0, r.Credits+delta) }

// AddHardware adjusts the hardware pool, floored at zero.
func (r *Resources) AddHardware(delta int) { r.Hardware = max(0, r.Hardware+delta) }

// AddNetwork adjusts the network pool, floored at zero.
func (r *Resources) AddNetwork(delta int) { r.Network = max(0, r.Network+delta) }

// AddResearchPoints adjusts research points, floored at zero.
func (r *Resources) AddResearchPoints(delta int) {
	r.ResearchPoints = max(0, r.ResearchPoints+delta)
}

// Player is the full mutable simulation state for one character.
type Player struct {
	Codename   string     `json:"codename"`
	Background string     `json:"background"`
	Attributes Attributes `json:"attributes"`
	Reputation Reputation `json:"reputation"`
	Resources  Resources  `json:"resources"`

	Skills        map[string]int `json:"skills"`
	UnlockedNodes []string       `json:"unlocked_nodes"`

	Age            int `json:"age"`
	EventsSinceAge int `json:"events_since_age"`
	Day            int `json:"day"`
	Hour           int `json:"hour"`

	Log []string `json:"log"`
}

// New creates a player with construction defaults. Background modifiers are
// applied by the engine on top of these.
func New(codename, background string) *Player {
	skills := make(map[string]int, len(SkillKeys))
	for _, key := range SkillKeys {
		skills[key] = 0
	}
	skills["foundation"] = 1

	return &Player{
		Codename:      codename,
		Background:    background,
		Attributes:    DefaultAttributes(),
		Reputation:    DefaultReputation(),
		Resources:     DefaultResources(),
		Skills:        skills,
		UnlockedNodes: []string{"training_intro"},
		Age:           10,
		Day:           1,
		Hour:          9,
	}
}

// SkillLevel returns the level for a skill key, zero for unknown keys.
func (p *Player) SkillLevel(key string) int {
	return p.Skills[key]
}

// RaiseSkill adds to a skill level, clamped to [0, MaxSkillLevel].
func (p *Player) RaiseSkill(key string, delta int) {
	p.Skills[key] = min(MaxSkillLevel, max(0, p.Skills[key]+delta))
}

// MeetsRequirements reports whether every required skill is at or above its
// required level.
func (p *Player) MeetsRequirements(reqs map[string]int) bool {
	for skill, level := range reqs {
		if p.Skills[skill] < level {
			return false
		}
	}
	return true
}

// AppendLog records an action. Every twelfth logged action ages the player by
// one year; this counter is the only aging mechanism and is independent of
// the day/hour clock. The log keeps only the most recent entries.
func (p *Player) AppendLog(message string) {
	p.Log = append(p.Log, message)
	p.EventsSinceAge++
	if p.EventsSinceAge >= eventsPerAgeYear {
		p.EventsSinceAge = 0
		p.Age++
		p.Log = append(p.Log, ageUpMessage(p.Age))
	}
	if len(p.Log) > maxLogLines {
		p.Log = p.Log[len(p.Log)-maxLogLines:]
	}
}

func ageUpMessage(age int) string {
	return fmt.Sprintf("Another year passes: now %d", age)
}

// AdvanceClock moves the in-game clock forward. Each day rollover decays
// exposure by one, floored at zero. The loop handles hour deltas of any size.
func (p *Player) AdvanceClock(hours int) {
	p.Hour += hours
	for p.Hour >= 24 {
		p.Hour -= 24
		p.Day++
		p.Attributes.Exposure = max(0, p.Attributes.Exposure-1)
	}
}
