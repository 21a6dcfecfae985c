package player

// Target names a container a delta key can resolve into. Delta maps from
// content catalogs (gear bonuses, crisis outcomes) are applied generically:
// each key is probed against a fixed priority order of targets and the first
// container that knows the key receives the delta.
type Target uint8

const (
	TargetAttribute Target = iota
	TargetReputation
	TargetResource
	TargetSkill
)

// GearTargets is the probe order for gear bonuses: attributes, then
// resources, then skills. Reputation is never a gear target.
var GearTargets = []Target{TargetAttribute, TargetResource, TargetSkill}

// CrisisTargets is the probe order for crisis outcome deltas.
var CrisisTargets = []Target{TargetAttribute, TargetReputation, TargetResource, TargetSkill}

// Apply resolves key against the given target order and applies delta to the
// first match. Reputation and resource targets go through their clamping
// setters; attribute targets add raw; skill targets clamp to [0, MaxSkillLevel].
// Returns false when no container knows the key.
func (p *Player) Apply(key string, delta int, order []Target) bool {
	for _, target := range order {
		switch target {
		case TargetAttribute:
			if p.applyAttribute(key, delta) {
				return true
			}
		case TargetReputation:
			if p.applyReputation(key, delta) {
				return true
			}
		case TargetResource:
			if p.applyResource(key, delta) {
				return true
			}
		case TargetSkill:
			if _, ok := p.Skills[key]; ok {
				p.RaiseSkill(key, delta)
				return true
			}
		}
	}
	return false
}

// ApplyDeltaMap applies every key of a delta map in the given target order.
// Unresolvable keys are skipped; catalog validation keeps them out of shipped
// content.
func (p *Player) ApplyDeltaMap(deltas map[string]int, order []Target) {
	for key, delta := range deltas {
		p.Apply(key, delta, order)
	}
}

func (p *Player) applyAttribute(key string, delta int) bool {
	field := p.attributeField(key)
	if field == nil {
		return false
	}
	*field += delta
	return true
}

// attributeField maps a key to the attribute it names, or nil.
func (p *Player) attributeField(key string) *int {
	switch key {
	case "intellect":
		return &p.Attributes.Intellect
	case "discipline":
		return &p.Attributes.Discipline
	case "ethics":
		return &p.Attributes.Ethics
	case "nerve":
		return &p.Attributes.Nerve
	case "economy":
		return &p.Attributes.Economy
	case "exposure":
		return &p.Attributes.Exposure
	default:
		return nil
	}
}

func (p *Player) applyReputation(key string, delta int) bool {
	switch key {
	case "white_hat":
		p.Reputation.AddWhiteHat(delta)
	case "black_hat":
		p.Reputation.AddBlackHat(delta)
	case "corporate":
		p.Reputation.AddCorporate(delta)
	case "law_watch":
		p.Reputation.AddLawWatch(delta)
	case "public":
		p.Reputation.AddPublic(delta)
	default:
		return false
	}
	return true
}

func (p *Player) applyResource(key string, delta int) bool {
	switch key {
	case "credits":
		p.Resources.AddCredits(delta)
	case "hardware":
		p.Resources.AddHardware(delta)
	case "network":
		p.Resources.AddNetwork(delta)
	case "research_points":
		p.Resources.AddResearchPoints(delta)
	default:
		return false
	}
	return true
}

// BumpAttribute adds delta to the named attribute and floors the result at
// zero. Used for background modifiers at character creation.
func (p *Player) BumpAttribute(key string, delta int) bool {
	field := p.attributeField(key)
	if field == nil {
		return false
	}
	*field = max(0, *field+delta)
	return true
}
