package engine

import (
	"fmt"

	"github.com/talgya/undernet/internal/content"
	"github.com/talgya/undernet/internal/player"
)

// ActiveCrisis returns the current crisis event, or nil. Read-only.
func (e *Engine) ActiveCrisis() *content.CrisisEvent {
	return e.activeCrisis
}

// ResolveCrisis picks an option of the active crisis, rolls it, and applies
// the matching delta map. The crisis clears unconditionally — there is no
// retry state — after which the trigger scan runs again, so a new crisis may
// activate immediately.
func (e *Engine) ResolveCrisis(optionIndex int) (bool, string, error) {
	if err := e.requirePlayer(); err != nil {
		return false, "", err
	}
	if e.activeCrisis == nil {
		return false, "", ErrNoCrisis
	}
	crisis := e.activeCrisis
	if optionIndex < 0 || optionIndex >= len(crisis.Options) {
		return false, "", fmt.Errorf("option %d of %d: %w", optionIndex, len(crisis.Options), ErrInvalidSelection)
	}
	option := crisis.Options[optionIndex]

	chance := clampChance(e.bal.CrisisMinChance, e.bal.CrisisMaxChance,
		option.BaseSuccess+e.requirementBonus(option.Requirement))
	success := e.rng.Float() < chance

	deltas := option.FailureDelta
	if success {
		deltas = option.SuccessDelta
	}
	e.player.ApplyDeltaMap(deltas, player.CrisisTargets)

	var msg string
	if success {
		msg = fmt.Sprintf("Crisis defused: %s", crisis.Title)
	} else {
		msg = fmt.Sprintf("Crisis fallout: %s", crisis.Title)
	}
	e.log(msg)
	e.activeCrisis = nil
	e.evaluateTriggers()
	return success, msg, nil
}

// requirementBonus converts an option's requirement key into a success
// bonus. Skill keys are probed first, so "foundation" resolves as a skill.
func (e *Engine) requirementBonus(requirement string) float64 {
	if requirement == "" || e.player == nil {
		return 0
	}
	if level, ok := e.player.Skills[requirement]; ok {
		return float64(level) * e.bal.CrisisSkillBonus
	}
	if requirement == "network" {
		return float64(e.player.Resources.Network) * e.bal.CrisisNetworkBonus
	}
	if requirement == "foundation" {
		return float64(e.player.SkillLevel("foundation")) * e.bal.CrisisFoundationBonus
	}
	return 0
}

// evaluateTriggers scans the crisis catalog in declaration order and
// activates the first event whose condition holds. Runs after every mutating
// operation; at most one activation per scan, and never while a crisis is
// already active.
func (e *Engine) evaluateTriggers() {
	if e.player == nil || e.activeCrisis != nil {
		return
	}
	for i := range e.library.CrisisEvents {
		evt := &e.library.CrisisEvents[i]
		if evt.Condition.Eval(e.triggerField, e.marketAtPeak()) {
			e.activeCrisis = evt
			e.log(fmt.Sprintf("Crisis triggered: %s", evt.Title))
			return
		}
	}
}

// triggerField resolves comparison fields of trigger conditions against the
// player state.
func (e *Engine) triggerField(name string) (int, bool) {
	switch name {
	case "law_watch":
		return e.player.Reputation.LawWatch, true
	default:
		return 0, false
	}
}

// setCrisis force-activates an event by id, bypassing trigger conditions.
// No-op while another crisis is active or for unknown ids.
func (e *Engine) setCrisis(eventID string) {
	if e.activeCrisis != nil {
		return
	}
	if evt, ok := e.library.CrisisByID(eventID); ok {
		e.activeCrisis = evt
		e.log(fmt.Sprintf("Crisis triggered: %s", evt.Title))
	}
}
