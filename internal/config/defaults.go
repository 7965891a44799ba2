package config

// defaultDocument holds the built-in gaConfig defaults an operator's
// partial document is merged over. Only GA is defaulted: reelBoxes,
// simTargets and slotConfig describe a specific machine and have no
// sensible generic default.
var defaultDocument = Document{
	GA: GAConfig{
		PopSize:           64,
		Generations:       200,
		CrossoverRate:     0.7,
		MutationRate:      0.1,
		Elitism:           2,
		TournamentK:       3,
		Seed:              1,
		CrossoverAlpha:    0.5,
		MutationSigma:     1,
		MaxRetriesPerReel: 250,
	},
}
