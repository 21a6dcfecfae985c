package engine

// Balance holds the gameplay balance coefficients. The defaults are a
// compatibility contract: changing any of them changes every probability in
// the simulation, so tuning experiments should construct an Engine with an
// explicit Balance rather than editing DefaultBalance.
type Balance struct {
	// Training roll.
	TrainingMinChance        float64 `yaml:"training_min_chance" json:"training_min_chance"`
	TrainingMaxChance        float64 `yaml:"training_max_chance" json:"training_max_chance"`
	TrainingIntellectWeight  float64 `yaml:"training_intellect_weight" json:"training_intellect_weight"`
	TrainingDisciplineWeight float64 `yaml:"training_discipline_weight" json:"training_discipline_weight"`
	TrainingHardwareWeight   float64 `yaml:"training_hardware_weight" json:"training_hardware_weight"`
	TrainingExposureGrace    int     `yaml:"training_exposure_grace" json:"training_exposure_grace"`
	TrainingExposurePenalty  float64 `yaml:"training_exposure_penalty" json:"training_exposure_penalty"`

	// Contract roll.
	ContractBaseChance      float64 `yaml:"contract_base_chance" json:"contract_base_chance"`
	ContractMinChance       float64 `yaml:"contract_min_chance" json:"contract_min_chance"`
	ContractMaxChance       float64 `yaml:"contract_max_chance" json:"contract_max_chance"`
	ContractSkillWeight     float64 `yaml:"contract_skill_weight" json:"contract_skill_weight"`
	ContractGearWeight      float64 `yaml:"contract_gear_weight" json:"contract_gear_weight"`
	ContractExposurePenalty float64 `yaml:"contract_exposure_penalty" json:"contract_exposure_penalty"`
	ContractLawPenalty      float64 `yaml:"contract_law_penalty" json:"contract_law_penalty"`
	RiskPenaltyLow          float64 `yaml:"risk_penalty_low" json:"risk_penalty_low"`
	RiskPenaltyMedium       float64 `yaml:"risk_penalty_medium" json:"risk_penalty_medium"`
	RiskPenaltyHigh         float64 `yaml:"risk_penalty_high" json:"risk_penalty_high"`
	RiskPenaltyUnknown      float64 `yaml:"risk_penalty_unknown" json:"risk_penalty_unknown"`

	// Contract resolution.
	ContractFailLossDivisor int `yaml:"contract_fail_loss_divisor" json:"contract_fail_loss_divisor"`
	ContractMinHours        int `yaml:"contract_min_hours" json:"contract_min_hours"`
	ContractMaxHours        int `yaml:"contract_max_hours" json:"contract_max_hours"`
	ExposureGainIllegal     int `yaml:"exposure_gain_illegal" json:"exposure_gain_illegal"`
	ExposureGainLawful      int `yaml:"exposure_gain_lawful" json:"exposure_gain_lawful"`

	// Reputation deltas on contract outcomes.
	RepSuccessDelta int `yaml:"rep_success_delta" json:"rep_success_delta"`
	RepFailureDelta int `yaml:"rep_failure_delta" json:"rep_failure_delta"`

	// Contract visibility heuristic.
	VisibilityMaxSkillGap int `yaml:"visibility_max_skill_gap" json:"visibility_max_skill_gap"`
	VisibilityMinAgeHigh  int `yaml:"visibility_min_age_high" json:"visibility_min_age_high"`
	VisibilityLawWatchCap int `yaml:"visibility_law_watch_cap" json:"visibility_law_watch_cap"`

	// Crisis resolution.
	CrisisMinChance       float64 `yaml:"crisis_min_chance" json:"crisis_min_chance"`
	CrisisMaxChance       float64 `yaml:"crisis_max_chance" json:"crisis_max_chance"`
	CrisisSkillBonus      float64 `yaml:"crisis_skill_bonus" json:"crisis_skill_bonus"`
	CrisisNetworkBonus    float64 `yaml:"crisis_network_bonus" json:"crisis_network_bonus"`
	CrisisFoundationBonus float64 `yaml:"crisis_foundation_bonus" json:"crisis_foundation_bonus"`

	// Direct escalation after a successful illegal contract.
	EscalationLawWatch int    `yaml:"escalation_law_watch" json:"escalation_law_watch"`
	EscalationEventID  string `yaml:"escalation_event_id" json:"escalation_event_id"`
}

// DefaultBalance returns the canonical coefficients.
func DefaultBalance() Balance {
	return Balance{
		TrainingMinChance:        0.2,
		TrainingMaxChance:        0.98,
		TrainingIntellectWeight:  0.05,
		TrainingDisciplineWeight: 0.03,
		TrainingHardwareWeight:   0.01,
		TrainingExposureGrace:    20,
		TrainingExposurePenalty:  0.002,

		ContractBaseChance:      0.6,
		ContractMinChance:       0.1,
		ContractMaxChance:       0.95,
		ContractSkillWeight:     0.04,
		ContractGearWeight:      0.02,
		ContractExposurePenalty: 0.002,
		ContractLawPenalty:      0.003,
		RiskPenaltyLow:          0.0,
		RiskPenaltyMedium:       0.08,
		RiskPenaltyHigh:         0.18,
		RiskPenaltyUnknown:      0.1,

		ContractFailLossDivisor: 4,
		ContractMinHours:        4,
		ContractMaxHours:        10,
		ExposureGainIllegal:     5,
		ExposureGainLawful:      2,

		RepSuccessDelta: 10,
		RepFailureDelta: -7,

		VisibilityMaxSkillGap: 2,
		VisibilityMinAgeHigh:  14,
		VisibilityLawWatchCap: 40,

		CrisisMinChance:       0.05,
		CrisisMaxChance:       0.95,
		CrisisSkillBonus:      0.05,
		CrisisNetworkBonus:    0.04,
		CrisisFoundationBonus: 0.04,

		EscalationLawWatch: 25,
		EscalationEventID:  "law_trace",
	}
}

func (b Balance) riskPenalty(risk string) float64 {
	switch risk {
	case "low":
		return b.RiskPenaltyLow
	case "medium":
		return b.RiskPenaltyMedium
	case "high":
		return b.RiskPenaltyHigh
	default:
		return b.RiskPenaltyUnknown
	}
}

func clampChance(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
