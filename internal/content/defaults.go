package content

// Default returns the built-in catalog set. The returned library is already
// validated; crisis conditions are parsed.
func Default() *Library {
	lib := &Library{
		Backgrounds:  defaultBackgrounds(),
		Training:     defaultTraining(),
		Contracts:    defaultContracts(),
		Gear:         defaultGear(),
		MarketTrends: defaultMarketTrends(),
		CrisisEvents: defaultCrisisEvents(),
	}
	if err := lib.Validate(); err != nil {
		// Built-in tables are compile-time data; failing validation is a
		// programmer error.
		panic(err)
	}
	return lib
}

func defaultBackgrounds() []Background {
	return []Background{
		{
			Key:            "nomad",
			Label:          "Drifter script kiddie",
			Mods:           map[string]int{"nerve": 10, "economy": -10},
			StartingSkills: map[string]int{"foundation": 1, "web": 1},
			Lore:           "Came up through net cafes and underground forums. Nerve is the only asset.",
		},
		{
			Key:            "analyst",
			Label:          "Security analyst",
			Mods:           map[string]int{"intellect": 10, "ethics": 5, "exposure": 5},
			StartingSkills: map[string]int{"foundation": 2},
			Lore:           "White-hat corporate grinder. Knows the process, knows the paperwork.",
		},
		{
			Key:            "freelancer",
			Label:          "Freelance pentest consultant",
			Mods:           map[string]int{"economy": 15, "discipline": 5},
			StartingSkills: map[string]int{"foundation": 2, "web": 1},
			Lore:           "Long-haul red-team consultant who knows what to charge a client.",
		},
		{
			Key:            "ghost",
			Label:          "Underground informant",
			Mods:           map[string]int{"nerve": 15, "ethics": -10},
			StartingSkills: map[string]int{"foundation": 1, "social": 1},
			Lore:           "A broker buried deep in the dark web, with contacts everywhere.",
		},
	}
}

func defaultTraining() []TrainingModule {
	return []TrainingModule{
		{
			ID:          "net_basics",
			Title:       "Network Fundamentals",
			Tier:        1,
			Category:    "foundation",
			BaseSuccess: 0.9,
			Cost:        400,
			Hours:       4,
			SkillGain:   map[string]int{"foundation": 1},
			Description: "Protocol stacks, subnetting, and packet captures until it sticks.",
		},
		{
			ID:          "web_recon",
			Title:       "Web Recon & Exploitation",
			Tier:        1,
			Category:    "web",
			BaseSuccess: 0.8,
			Cost:        900,
			Hours:       6,
			SkillGain:   map[string]int{"web": 1},
			Description: "Directory traversal, injection classes, and a capstone lab target.",
		},
		{
			ID:          "reverse_lab",
			Title:       "Binary Reversing Lab",
			Tier:        2,
			Category:    "binary",
			BaseSuccess: 0.65,
			Cost:        2400,
			Hours:       10,
			SkillGain:   map[string]int{"binary": 1, "foundation": 1},
			Description: "Disassemblers, debuggers, and a week of stripped binaries.",
		},
		{
			ID:          "social_craft",
			Title:       "Pretext Engineering",
			Tier:        2,
			Category:    "social",
			BaseSuccess: 0.7,
			Cost:        1800,
			Hours:       8,
			SkillGain:   map[string]int{"social": 1},
			Description: "Phone scripts, badge cloning, and reading a lobby at a glance.",
		},
		{
			ID:          "mobile_bootcamp",
			Title:       "Mobile Attack Surface",
			Tier:        2,
			Category:    "mobile",
			BaseSuccess: 0.7,
			Cost:        2000,
			Hours:       8,
			SkillGain:   map[string]int{"mobile": 1},
			Description: "APK teardown, hooked runtimes, and cert pinning bypasses.",
		},
		{
			ID:          "cloud_siege",
			Title:       "Cloud Infrastructure Siege",
			Tier:        3,
			Category:    "cloud",
			BaseSuccess: 0.55,
			Cost:        6000,
			Hours:       12,
			SkillGain:   map[string]int{"cloud": 1, "foundation": 1},
			Description: "Misconfigured buckets, metadata endpoints, and cluster escapes.",
		},
	}
}

func defaultContracts() []TaskContract {
	return []TaskContract{
		{
			ID:           "bb_light",
			Name:         "Bounty: storefront data leak",
			Legality:     LegalityLawful,
			Risk:         RiskLow,
			PayoutMin:    1500,
			PayoutMax:    4200,
			Requirements: map[string]int{"web": 1},
			Description:  "A shop suspects directory traversal. Submit a full reproduction.",
		},
		{
			ID:           "corp_assess",
			Name:         "Corporate penetration assessment",
			Legality:     LegalityLawful,
			Risk:         RiskMedium,
			PayoutMin:    6000,
			PayoutMax:    15000,
			Requirements: map[string]int{"web": 2, "foundation": 2},
			Description:  "External engagement plus report, on a tight deadline.",
		},
		{
			ID:           "cloud_guard",
			Name:         "Cloud range escort",
			Legality:     LegalityLawful,
			Risk:         RiskMedium,
			PayoutMin:    9000,
			PayoutMax:    20000,
			Requirements: map[string]int{"cloud": 1, "foundation": 2},
			Description:  "Audit a bank's container clusters and storage policies.",
		},
		{
			ID:           "datavault",
			Name:         "Underground job: crack the CRM",
			Legality:     LegalityIllegal,
			Risk:         RiskHigh,
			PayoutMin:    20000,
			PayoutMax:    42000,
			Requirements: map[string]int{"web": 2, "social": 1},
			Description:  "Cover an employer lifting millions of user records. Enormous risk.",
		},
		{
			ID:           "zero_drop",
			Name:         "0day dark-market sale",
			Legality:     LegalityIllegal,
			Risk:         RiskHigh,
			PayoutMin:    28000,
			PayoutMax:    60000,
			Requirements: map[string]int{"binary": 1, "foundation": 3},
			Description:  "A homegrown exploit fetches a premium, under heavy enforcement attention.",
		},
	}
}

func defaultGear() []GearItem {
	return []GearItem{
		{
			ID:          "rig_basic",
			Name:        "Fracture laptop",
			Cost:        2500,
			Bonuses:     map[string]int{"hardware": 1, "intellect": 2},
			Category:    "hardware",
			Description: "Custom cooling, low noise, faster analysis runs.",
		},
		{
			ID:          "vpn_mesh",
			Name:        "Mesh obfuscation network",
			Cost:        3200,
			Bonuses:     map[string]int{"network": 2, "exposure": -5},
			Category:    "network",
			Description: "Layered proxies with randomized routing. Harder to trace.",
		},
		{
			ID:          "forge_lab",
			Name:        "Exploit forge",
			Cost:        7800,
			Bonuses:     map[string]int{"binary": 1, "research_points": 2},
			Category:    "lab",
			Description: "A VM farm with automated harness generation.",
		},
		{
			ID:          "holo_ops",
			Name:        "Holo ops intel desk",
			Cost:        5400,
			Bonuses:     map[string]int{"social": 1, "exposure": -3},
			Category:    "intel",
			Description: "Contact-graph visualizer and phishing scenario simulator.",
		},
		{
			ID:          "nebula_stack",
			Name:        "Nebula cloud stack",
			Cost:        6900,
			Bonuses:     map[string]int{"cloud": 1, "hardware": 1},
			Category:    "cloud",
			Description: "Preloaded IaC sandboxes and a local cluster.",
		},
	}
}

func defaultMarketTrends() []MarketTrendEntry {
	return []MarketTrendEntry{
		{Name: "Quiet quarter", Lawful: 1.0, Underground: 1.0, Enforcement: 2, Trend: "steady"},
		{Name: "Compliance season", Lawful: 1.3, Underground: 0.8, Enforcement: 3, Trend: "lawful demand up"},
		{Name: "Breach headlines", Lawful: 1.5, Underground: 1.1, Enforcement: 4, Trend: "panic spending"},
		{Name: "Crackdown sweep", Lawful: 1.1, Underground: 0.6, Enforcement: 5, Trend: "enforcement surge"},
		{Name: "Gray market thaw", Lawful: 0.9, Underground: 1.4, Enforcement: 2, Trend: "underground demand up"},
		{Name: "0day bubble", Lawful: 1.0, Underground: 1.8, Enforcement: 3, Trend: "speculative peak"},
	}
}

func defaultCrisisEvents() []CrisisEvent {
	return []CrisisEvent{
		{
			ID:         "law_trace",
			Title:      "Law enforcement trace escalates",
			Trigger:    "law_watch>30",
			Difficulty: "medium",
			Options: []CrisisOption{
				{
					Label:        "Cut links and cool off",
					BaseSuccess:  0.65,
					SuccessDelta: map[string]int{"exposure": -8},
					FailureDelta: map[string]int{"exposure": 5, "law_watch": 5},
					Description:  "Suspend all operations and spend the time scrubbing logs.",
				},
				{
					Label:        "Social misdirection",
					BaseSuccess:  0.55,
					Requirement:  "social",
					SuccessDelta: map[string]int{"law_watch": -10},
					FailureDelta: map[string]int{"law_watch": 8, "public": -5},
					Description:  "Lean on contacts to point the investigation elsewhere.",
				},
			},
		},
		{
			ID:         "market_crash",
			Title:      "Exploit market crash",
			Trigger:    "market_high",
			Difficulty: "low",
			Options: []CrisisOption{
				{
					Label:        "Dump inventory",
					BaseSuccess:  0.7,
					SuccessDelta: map[string]int{"credits": 3000},
					FailureDelta: map[string]int{"credits": -1500},
					Description:  "Offload held 0days before the crash fully lands.",
				},
				{
					Label:        "Wait for the rebound",
					BaseSuccess:  0.5,
					Requirement:  "foundation",
					SuccessDelta: map[string]int{"public": 5, "credits": 2000},
					FailureDelta: map[string]int{"credits": -2000},
					Description:  "Publish the details, bank goodwill, and bet on consulting work.",
				},
			},
		},
	}
}
