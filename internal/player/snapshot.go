package player

import "encoding/json"

// Snapshot is the flat save representation of a player. Scalar fields that
// a zero value cannot stand in for are pointers so old or hand-edited saves
// missing newer fields still load with construction defaults.
type Snapshot struct {
	Codename       string         `json:"codename,omitempty"`
	Background     string         `json:"background,omitempty"`
	Attributes     *Attributes    `json:"attributes,omitempty"`
	Reputation     *Reputation    `json:"reputation,omitempty"`
	Resources      *Resources     `json:"resources,omitempty"`
	Skills         map[string]int `json:"skills,omitempty"`
	UnlockedNodes  []string       `json:"unlocked_nodes,omitempty"`
	Age            *int           `json:"age,omitempty"`
	EventsSinceAge *int           `json:"events_since_age,omitempty"`
	Day            *int           `json:"day,omitempty"`
	Hour           *int           `json:"hour,omitempty"`
	Log            []string       `json:"log,omitempty"`
}

// UnmarshalJSON fills construction defaults before decoding so a partially
// populated attributes object keeps defaults for the fields it omits.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	type plain Attributes
	tmp := plain(DefaultAttributes())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*a = Attributes(tmp)
	return nil
}

// UnmarshalJSON applies per-field defaults, mirroring Attributes.
func (r *Reputation) UnmarshalJSON(data []byte) error {
	type plain Reputation
	tmp := plain(DefaultReputation())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*r = Reputation(tmp)
	return nil
}

// UnmarshalJSON applies per-field defaults, mirroring Attributes.
func (r *Resources) UnmarshalJSON(data []byte) error {
	type plain Resources
	tmp := plain(DefaultResources())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*r = Resources(tmp)
	return nil
}

// Snapshot captures the player for persistence. Only the most recent log
// entries are kept in saves.
func (p *Player) Snapshot() Snapshot {
	attrs := p.Attributes
	rep := p.Reputation
	res := p.Resources
	age := p.Age
	events := p.EventsSinceAge
	day := p.Day
	hour := p.Hour

	skills := make(map[string]int, len(p.Skills))
	for key, level := range p.Skills {
		skills[key] = level
	}

	logTail := p.Log
	if len(logTail) > persistedLog {
		logTail = logTail[len(logTail)-persistedLog:]
	}

	return Snapshot{
		Codename:       p.Codename,
		Background:     p.Background,
		Attributes:     &attrs,
		Reputation:     &rep,
		Resources:      &res,
		Skills:         skills,
		UnlockedNodes:  append([]string(nil), p.UnlockedNodes...),
		Age:            &age,
		EventsSinceAge: &events,
		Day:            &day,
		Hour:           &hour,
		Log:            append([]string(nil), logTail...),
	}
}

// Restore builds a player from a snapshot. Absent fields fall back to
// construction defaults; skill and reputation values are normalized into
// their legal ranges before entering the aggregate.
func Restore(s Snapshot) *Player {
	codename := s.Codename
	if codename == "" {
		codename = "Unknown"
	}
	background := s.Background
	if background == "" {
		background = "nomad"
	}

	p := New(codename, background)
	if s.Attributes != nil {
		p.Attributes = *s.Attributes
	}
	if s.Reputation != nil {
		p.Reputation = *s.Reputation
	}
	if s.Resources != nil {
		p.Resources = *s.Resources
	}
	if s.Skills != nil {
		p.Skills = make(map[string]int, len(s.Skills))
		for key, level := range s.Skills {
			p.Skills[key] = level
		}
	}
	if s.UnlockedNodes != nil {
		p.UnlockedNodes = append([]string(nil), s.UnlockedNodes...)
	}
	if s.Age != nil {
		p.Age = *s.Age
	}
	if s.EventsSinceAge != nil {
		p.EventsSinceAge = *s.EventsSinceAge
	}
	if s.Day != nil {
		p.Day = *s.Day
	}
	if s.Hour != nil {
		p.Hour = *s.Hour
	}
	p.Log = append([]string(nil), s.Log...)

	p.normalize()
	return p
}

// normalize clamps restored values into their invariant ranges.
func (p *Player) normalize() {
	for key, level := range p.Skills {
		p.Skills[key] = min(MaxSkillLevel, max(0, level))
	}
	p.Reputation.AddWhiteHat(0)
	p.Reputation.AddBlackHat(0)
	p.Reputation.AddCorporate(0)
	p.Reputation.AddLawWatch(0)
	p.Reputation.AddPublic(0)
	p.Resources.AddCredits(0)
	p.Resources.AddHardware(0)
	p.Resources.AddNetwork(0)
	p.Resources.AddResearchPoints(0)
}
