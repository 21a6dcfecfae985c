package engine

import (
	"fmt"

	"github.com/talgya/undernet/internal/content"
)

// ListContracts returns the contracts the current player should see,
// optionally filtered by legality (empty string means no legality filter).
// With a player present, contracts are filtered by the visibility heuristic; if
// that filter empties the list, the full catalog is returned instead so the
// caller is never shown an empty market while the catalog has entries.
func (e *Engine) ListContracts(legality string) []content.TaskContract {
	contracts := e.library.Contracts
	if e.player != nil {
		visible := make([]content.TaskContract, 0, len(contracts))
		for _, c := range contracts {
			if e.contractVisible(c) {
				visible = append(visible, c)
			}
		}
		if len(visible) > 0 {
			contracts = visible
		}
	}
	if legality == "" {
		return contracts
	}
	filtered := make([]content.TaskContract, 0, len(contracts))
	for _, c := range contracts {
		if c.Legality == legality {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// contractVisible is a soft heuristic, deliberately looser than the hard
// requirement gate in StartContract: it hides contracts far beyond the
// player's skills, high-risk work from very young characters, and high-risk
// illegal work while law enforcement attention is high.
func (e *Engine) contractVisible(c content.TaskContract) bool {
	if e.player == nil {
		return true
	}
	worstGap := 0
	for skill, req := range c.Requirements {
		if gap := req - e.player.SkillLevel(skill); gap > worstGap {
			worstGap = gap
		}
	}
	if worstGap > e.bal.VisibilityMaxSkillGap {
		return false
	}
	if e.player.Age < e.bal.VisibilityMinAgeHigh && c.Risk == content.RiskHigh {
		return false
	}
	if e.player.Reputation.LawWatch > e.bal.VisibilityLawWatchCap &&
		c.Legality == content.LegalityIllegal && c.Risk == content.RiskHigh {
		return false
	}
	return true
}

// StartContract attempts a contract and reports whether the roll succeeded.
// Requirements are a hard gate. Payout is drawn from the contract's range and
// scaled by the market multiplier for its legality; failure costs a quarter
// of the would-be payout and raises exposure. Reputation shifts per the
// legality branch, then crisis escalation and the generic trigger scan run.
func (e *Engine) StartContract(contractID string) (bool, string, error) {
	if err := e.requirePlayer(); err != nil {
		return false, "", err
	}
	contract, ok := e.library.ContractByID(contractID)
	if !ok {
		return false, "", fmt.Errorf("contract %q: %w", contractID, ErrNotFound)
	}
	if !e.player.MeetsRequirements(contract.Requirements) {
		return false, "", fmt.Errorf("contract %q: %w", contractID, ErrInsufficientSkill)
	}

	success := e.rng.Float() < e.contractChance(contract)
	snapshot := e.MarketSnapshot()
	multiplier := snapshot.UndergroundMultiplier
	if contract.Legality == content.LegalityLawful {
		multiplier = snapshot.LawfulMultiplier
	}
	payout := int(float64(e.rng.IntBetween(contract.PayoutMin, contract.PayoutMax)) * multiplier)

	e.player.AdvanceClock(e.rng.IntBetween(e.bal.ContractMinHours, e.bal.ContractMaxHours))

	var msg string
	if success {
		e.player.Resources.Credits += payout
		e.adjustReputation(contract, true)
		if contract.Legality == content.LegalityLawful {
			msg = fmt.Sprintf("Contract complete: %s — earned %d credits", contract.Name, payout)
		} else {
			msg = fmt.Sprintf("Underground job done: %s — payout %d credits", contract.Name, payout)
		}
	} else {
		loss := payout / e.bal.ContractFailLossDivisor
		e.player.Resources.AddCredits(-loss)
		e.adjustReputation(contract, false)
		if contract.Legality == content.LegalityIllegal {
			e.player.Attributes.Exposure += e.bal.ExposureGainIllegal
		} else {
			e.player.Attributes.Exposure += e.bal.ExposureGainLawful
		}
		if loss > 0 {
			msg = fmt.Sprintf("Contract failed: %s — lost %d credits", contract.Name, loss)
		} else {
			msg = fmt.Sprintf("Contract failed: %s", contract.Name)
		}
	}

	e.log(msg)
	e.maybeEscalate(contract, success)
	e.evaluateTriggers()
	return success, msg, nil
}

// contractChance computes the success probability for a contract.
func (e *Engine) contractChance(c content.TaskContract) float64 {
	skillMargin := 0
	for skill, req := range c.Requirements {
		skillMargin += e.player.SkillLevel(skill) - req
	}
	res := e.player.Resources
	chance := e.bal.ContractBaseChance +
		e.bal.ContractSkillWeight*float64(skillMargin) +
		e.bal.ContractGearWeight*float64(res.Hardware+res.Network) -
		e.bal.riskPenalty(c.Risk) -
		e.bal.ContractExposurePenalty*float64(e.player.Attributes.Exposure)
	if c.Legality == content.LegalityIllegal {
		chance -= e.bal.ContractLawPenalty * float64(e.player.Reputation.LawWatch)
	}
	return clampChance(e.bal.ContractMinChance, e.bal.ContractMaxChance, chance)
}

// adjustReputation encodes the moral-consequence model: lawful work builds
// white-hat and public standing and eases law attention; illegal work builds
// black-hat standing, draws law attention, and erodes public opinion.
func (e *Engine) adjustReputation(c content.TaskContract, success bool) {
	rep := &e.player.Reputation
	delta := e.bal.RepFailureDelta
	if success {
		delta = e.bal.RepSuccessDelta
	}

	if c.Legality == content.LegalityLawful {
		rep.AddWhiteHat(delta)
		rep.AddCorporate(halfFloor(delta))
		if success {
			rep.AddPublic(5)
			rep.AddLawWatch(-4)
		} else {
			rep.AddPublic(-5)
		}
	} else {
		rep.AddBlackHat(delta)
		if success {
			rep.AddLawWatch(6)
			rep.AddPublic(-8)
		} else {
			rep.AddLawWatch(3)
			rep.AddPublic(-5)
		}
	}
}

// halfFloor halves toward negative infinity, so an odd failure delta keeps
// its full weight instead of rounding toward zero.
func halfFloor(v int) int {
	if v < 0 && v%2 != 0 {
		return v/2 - 1
	}
	return v / 2
}

// maybeEscalate force-activates the law-trace crisis after a successful
// illegal contract once law attention passes the escalation threshold. This
// is a direct causal escalation, separate from the generic trigger scan.
func (e *Engine) maybeEscalate(c content.TaskContract, success bool) {
	if e.activeCrisis != nil {
		return
	}
	if c.Legality == content.LegalityIllegal && success &&
		e.player.Reputation.LawWatch > e.bal.EscalationLawWatch {
		e.setCrisis(e.bal.EscalationEventID)
	}
}
