package engine

import (
	"fmt"

	"github.com/talgya/undernet/internal/content"
)

// ListTraining returns the full training catalog. Gating happens at
// execution time, not listing.
func (e *Engine) ListTraining() []content.TrainingModule {
	return e.library.Training
}

// RunTraining purchases and attempts a training module. The cost is deducted
// before the roll and is not refunded on failure; the clock advances by the
// module's hour cost either way. On success each skill gain applies (clamped
// to the skill cap) and one research point is granted.
func (e *Engine) RunTraining(moduleID string) (bool, string, error) {
	if err := e.requirePlayer(); err != nil {
		return false, "", err
	}
	module, ok := e.library.TrainingByID(moduleID)
	if !ok {
		return false, "", fmt.Errorf("training module %q: %w", moduleID, ErrNotFound)
	}
	if e.player.Resources.Credits < module.Cost {
		return false, "", fmt.Errorf("training module %q costs %d: %w", moduleID, module.Cost, ErrInsufficientFunds)
	}

	e.player.Resources.Credits -= module.Cost
	success := e.rng.Float() < e.trainingChance(module)
	e.player.AdvanceClock(module.Hours)

	var msg string
	if success {
		for skill, gain := range module.SkillGain {
			e.player.RaiseSkill(skill, gain)
		}
		e.player.Resources.ResearchPoints++
		msg = fmt.Sprintf("Training complete: %s", module.Title)
	} else {
		msg = fmt.Sprintf("Training failed: %s — needs a retrospective", module.Title)
	}

	e.log(msg)
	e.evaluateTriggers()
	return success, msg, nil
}

// trainingChance computes the weighted success probability for a module.
func (e *Engine) trainingChance(module content.TrainingModule) float64 {
	attrs := e.player.Attributes
	bonus := e.bal.TrainingIntellectWeight*(float64(attrs.Intellect)/100) +
		e.bal.TrainingDisciplineWeight*(float64(attrs.Discipline)/100) +
		e.bal.TrainingHardwareWeight*float64(e.player.Resources.Hardware)
	penalty := float64(max(0, attrs.Exposure-e.bal.TrainingExposureGrace)) * e.bal.TrainingExposurePenalty
	return clampChance(e.bal.TrainingMinChance, e.bal.TrainingMaxChance, module.BaseSuccess+bonus-penalty)
}
