// Package config loads the operator-supplied config document —
// gaConfig, reelBoxes, simTargets and slotConfig — from JSON or YAML,
// merges operator-supplied partials over built-in defaults, and
// validates the result into the internal/model and internal/ga types
// the rest of the module consumes. It follows the teacher's
// initGameConfigs/validateGameConfig split: parse into a plain
// document, merge defaults, then validate once, returning a
// ConfigError immediately on the first violation found.
package config

// Document is the plain data tree a JSON or YAML config file decodes
// into: the gaConfig, reelBoxes, simTargets and slotConfig trees plus
// spinCount.
type Document struct {
	GA         GAConfig   `json:"gaConfig" yaml:"gaConfig"`
	ReelBoxes  []ReelBox  `json:"reelBoxes" yaml:"reelBoxes"`
	SimTargets SimTargets `json:"simTargets" yaml:"simTargets"`
	SlotConfig SlotConfig `json:"slotConfig" yaml:"slotConfig"`
	SpinCount  int64      `json:"spinCount" yaml:"spinCount"`
}

// GAConfig is the JSON/YAML shape of the gaConfig tree.
type GAConfig struct {
	PopSize                   int     `json:"popSize" yaml:"popSize"`
	Generations               int     `json:"generations" yaml:"generations"`
	CrossoverRate             float64 `json:"crossoverRate" yaml:"crossoverRate"`
	MutationRate              float64 `json:"mutationRate" yaml:"mutationRate"`
	Elitism                   int     `json:"elitism" yaml:"elitism"`
	TournamentK               int     `json:"tournamentK" yaml:"tournamentK"`
	Seed                      int64   `json:"seed" yaml:"seed"`
	CrossoverAlpha            float64 `json:"crossoverAlpha" yaml:"crossoverAlpha"`
	MutationSigma             float64 `json:"mutationSigma" yaml:"mutationSigma"`
	SymbolRTPUnevennessWeight float64 `json:"symbolRtpUnevennessWeight" yaml:"symbolRtpUnevennessWeight"`
	VerboseProgress           bool    `json:"verboseProgress" yaml:"verboseProgress"`
	MaxRetriesPerReel         int     `json:"maxRetriesPerReel" yaml:"maxRetriesPerReel"`
}

// SymbolStacks is one reel's low/high gene bounds, keyed by symbol id
// as a decimal string (JSON/YAML object keys are always strings).
type SymbolStacks struct {
	Low  map[string][]int `json:"low" yaml:"low"`
	High map[string][]int `json:"high" yaml:"high"`
}

// ReelBox is the JSON/YAML shape of one entry of the reelBoxes list.
type ReelBox struct {
	Radius       int          `json:"radius" yaml:"radius"`
	Seed         int64        `json:"seed" yaml:"seed"`
	SymbolStacks SymbolStacks `json:"symbolStacks" yaml:"symbolStacks"`
}

// SimTargets is the JSON/YAML shape of the simTargets tree.
type SimTargets struct {
	TargetRTP                float64            `json:"targetRtp" yaml:"targetRtp"`
	TargetHitFrequency       float64            `json:"targetHitFrequency" yaml:"targetHitFrequency"`
	TargetBonusGameFrequency float64            `json:"targetBonusGameFrequency" yaml:"targetBonusGameFrequency"`
	SymbolRTPTargets         map[string]float64 `json:"symbolRtpTargets" yaml:"symbolRtpTargets"`
}

// SimulateDocument is the input tree for the "simulate" host mode: a
// concrete already-sequenced reel set plus the slot config to evaluate
// it against, rather than the reelBoxes/gaConfig tree runGeneticSearch
// consumes.
type SimulateDocument struct {
	Reels      [][]int    `json:"reels" yaml:"reels"`
	SlotConfig SlotConfig `json:"slotConfig" yaml:"slotConfig"`
	SpinCount  int64      `json:"spinCount" yaml:"spinCount"`
	Seed       int64      `json:"seed" yaml:"seed"`
}

// SlotConfig is the JSON/YAML shape of the slotConfig tree.
type SlotConfig struct {
	Window   []int              `json:"window" yaml:"window"`
	Wild     []int              `json:"wild" yaml:"wild"`
	Scatter  []int              `json:"scatter" yaml:"scatter"`
	High     []int              `json:"high" yaml:"high"`
	PayTable map[string][]int64 `json:"paytable" yaml:"paytable"`
	Lines    [][]int            `json:"lines" yaml:"lines"`
}
