package config

import (
	"strconv"

	"github.com/yola1107/reelforge/internal/apperr"
	"github.com/yola1107/reelforge/internal/ga"
	"github.com/yola1107/reelforge/internal/model"
)

// Bundle is a Document resolved and validated into the concrete types
// the rest of the module consumes.
type Bundle struct {
	GA         ga.Config
	ReelBoxes  []model.ReelBox
	Classes    []*model.SymbolClasses
	SimTargets model.SimulationTargets
	SlotConfig *model.SlotMachineConfig
	SpinCount  int64
}

// Build validates d against the config's structural invariants and
// resolves it into a Bundle, returning a ConfigError on the first
// violation found. There is never a partially valid result: on error
// the returned Bundle is nil.
func (d *Document) Build() (*Bundle, error) {
	slot, err := buildSlotConfig(d.SlotConfig)
	if err != nil {
		return nil, err
	}
	if len(d.ReelBoxes) != slot.ReelCount() {
		return nil, apperr.NewConfigError("reelBoxes", "reel count does not match slotConfig.window length")
	}

	boxes := make([]model.ReelBox, len(d.ReelBoxes))
	classes := make([]*model.SymbolClasses, len(d.ReelBoxes))
	for i, rb := range d.ReelBoxes {
		box, err := buildReelBox(rb)
		if err != nil {
			return nil, err
		}
		boxes[i] = box
		classes[i] = slot.Classes()
	}

	targets, err := buildSimTargets(d.SimTargets)
	if err != nil {
		return nil, err
	}

	gaCfg, err := buildGAConfig(d.GA)
	if err != nil {
		return nil, err
	}
	if gaCfg.Elitism < 0 || gaCfg.Elitism > gaCfg.PopSize {
		return nil, apperr.NewConfigError("gaConfig.elitism", "must be within [0, popSize]")
	}
	if gaCfg.SymbolRTPUnevennessWeight < 0 {
		return nil, apperr.NewConfigError("gaConfig.symbolRtpUnevennessWeight", "must be >= 0")
	}
	targets.SymbolRTPUnevennessWeight = gaCfg.SymbolRTPUnevennessWeight

	if d.SpinCount <= 0 {
		return nil, apperr.NewConfigError("spinCount", "must be > 0")
	}

	return &Bundle{
		GA:         gaCfg,
		ReelBoxes:  boxes,
		Classes:    classes,
		SimTargets: targets,
		SlotConfig: slot,
		SpinCount:  d.SpinCount,
	}, nil
}

// SimulationInput is a SimulateDocument resolved and validated.
type SimulationInput struct {
	Reels      [][]model.Symbol
	SlotConfig *model.SlotMachineConfig
	SpinCount  int64
	Seed       int64
}

// Build validates d and resolves it into a SimulationInput.
func (d *SimulateDocument) Build() (*SimulationInput, error) {
	slot, err := buildSlotConfig(d.SlotConfig)
	if err != nil {
		return nil, err
	}
	if len(d.Reels) != slot.ReelCount() {
		return nil, apperr.NewConfigError("reels", "reel count does not match slotConfig.window length")
	}
	reels := make([][]model.Symbol, len(d.Reels))
	for i, strip := range d.Reels {
		if len(strip) == 0 {
			return nil, apperr.NewConfigError("reels", "reel strip must be non-empty")
		}
		syms := make([]model.Symbol, len(strip))
		for j, v := range strip {
			syms[j] = model.Symbol(v)
		}
		reels[i] = syms
	}
	if d.SpinCount <= 0 {
		return nil, apperr.NewConfigError("spinCount", "must be > 0")
	}
	return &SimulationInput{Reels: reels, SlotConfig: slot, SpinCount: d.SpinCount, Seed: d.Seed}, nil
}

func buildGAConfig(g GAConfig) (ga.Config, error) {
	if g.PopSize <= 0 {
		return ga.Config{}, apperr.NewConfigError("gaConfig.popSize", "must be > 0")
	}
	if g.Generations < 0 {
		return ga.Config{}, apperr.NewConfigError("gaConfig.generations", "must be >= 0")
	}
	if g.CrossoverRate < 0 || g.CrossoverRate > 1 {
		return ga.Config{}, apperr.NewConfigError("gaConfig.crossoverRate", "must be in [0,1]")
	}
	if g.MutationRate < 0 || g.MutationRate > 1 {
		return ga.Config{}, apperr.NewConfigError("gaConfig.mutationRate", "must be in [0,1]")
	}
	if g.TournamentK <= 0 {
		return ga.Config{}, apperr.NewConfigError("gaConfig.tournamentK", "must be > 0")
	}
	if g.MutationSigma < 0 {
		return ga.Config{}, apperr.NewConfigError("gaConfig.mutationSigma", "must be >= 0")
	}
	return ga.Config{
		PopSize:                   g.PopSize,
		Generations:               g.Generations,
		CrossoverRate:             g.CrossoverRate,
		MutationRate:              g.MutationRate,
		Elitism:                   g.Elitism,
		TournamentK:               g.TournamentK,
		Seed:                      g.Seed,
		CrossoverAlpha:            g.CrossoverAlpha,
		MutationSigma:             g.MutationSigma,
		SymbolRTPUnevennessWeight: g.SymbolRTPUnevennessWeight,
		VerboseProgress:           g.VerboseProgress,
		MaxRetriesPerReel:         g.MaxRetriesPerReel,
	}, nil
}

func buildReelBox(rb ReelBox) (model.ReelBox, error) {
	if rb.Radius <= 0 {
		return model.ReelBox{}, apperr.NewConfigError("reelBoxes.radius", "must be > 0")
	}
	low, err := parseSymbolIntSliceMap("reelBoxes.symbolStacks.low", rb.SymbolStacks.Low)
	if err != nil {
		return model.ReelBox{}, err
	}
	high, err := parseSymbolIntSliceMap("reelBoxes.symbolStacks.high", rb.SymbolStacks.High)
	if err != nil {
		return model.ReelBox{}, err
	}
	if len(low) != len(high) {
		return model.ReelBox{}, apperr.NewConfigError("reelBoxes.symbolStacks", "low and high must name the same symbols")
	}
	for sym, loCounts := range low {
		hiCounts, ok := high[sym]
		if !ok {
			return model.ReelBox{}, apperr.NewConfigError("reelBoxes.symbolStacks.high", "missing counts for a symbol present in low")
		}
		if len(loCounts) != len(hiCounts) {
			return model.ReelBox{}, apperr.NewConfigError("reelBoxes.symbolStacks", "low and high sequences must have equal length")
		}
		for i := range loCounts {
			if loCounts[i] > hiCounts[i] {
				return model.ReelBox{}, apperr.NewConfigError("reelBoxes.symbolStacks", "low must be <= high elementwise")
			}
		}
	}
	return model.ReelBox{Radius: rb.Radius, Seed: rb.Seed, Low: low, High: high}, nil
}

func buildSimTargets(t SimTargets) (model.SimulationTargets, error) {
	if t.TargetHitFrequency < 0 || t.TargetHitFrequency > 1 {
		return model.SimulationTargets{}, apperr.NewConfigError("simTargets.targetHitFrequency", "must be in [0,1]")
	}
	if t.TargetBonusGameFrequency < 0 || t.TargetBonusGameFrequency > 1 {
		return model.SimulationTargets{}, apperr.NewConfigError("simTargets.targetBonusGameFrequency", "must be in [0,1]")
	}
	if t.TargetRTP < 0 {
		return model.SimulationTargets{}, apperr.NewConfigError("simTargets.targetRtp", "must be >= 0")
	}
	symbolTargets := make(map[model.Symbol]float64, len(t.SymbolRTPTargets))
	for k, v := range t.SymbolRTPTargets {
		sym, err := parseSymbol("simTargets.symbolRtpTargets", k)
		if err != nil {
			return model.SimulationTargets{}, err
		}
		if v < 0 {
			return model.SimulationTargets{}, apperr.NewConfigError("simTargets.symbolRtpTargets", "must be >= 0")
		}
		symbolTargets[sym] = v
	}
	return model.SimulationTargets{
		TargetRTP:            t.TargetRTP,
		TargetHitFrequency:   t.TargetHitFrequency,
		TargetBonusFrequency: t.TargetBonusGameFrequency,
		SymbolRTPTarget:      symbolTargets,
	}, nil
}

func buildSlotConfig(s SlotConfig) (*model.SlotMachineConfig, error) {
	if len(s.Window) == 0 {
		return nil, apperr.NewConfigError("slotConfig.window", "must be non-empty")
	}
	for _, w := range s.Window {
		if w <= 0 {
			return nil, apperr.NewConfigError("slotConfig.window", "every entry must be > 0")
		}
	}
	wild := toSymbols(s.Wild)
	scatter := toSymbols(s.Scatter)
	high := toSymbols(s.High)

	payTable := make(map[model.Symbol][]int64, len(s.PayTable))
	for k, v := range s.PayTable {
		sym, err := parseSymbol("slotConfig.paytable", k)
		if err != nil {
			return nil, err
		}
		if len(v) == 0 {
			return nil, apperr.NewConfigError("slotConfig.paytable", "entries must be non-empty")
		}
		payTable[sym] = v
	}

	reelCount := len(s.Window)
	lines := make([]model.Line, 0, len(s.Lines))
	for _, l := range s.Lines {
		if len(l) != reelCount {
			return nil, apperr.NewConfigError("slotConfig.lines", "line length must match reel count")
		}
		line := make(model.Line, len(l))
		for r, row := range l {
			if row < 0 || row >= s.Window[r] {
				return nil, apperr.NewConfigError("slotConfig.lines", "line index out of window")
			}
			line[r] = row
		}
		lines = append(lines, line)
	}

	return &model.SlotMachineConfig{
		Window:   s.Window,
		Wild:     wild,
		Scatter:  scatter,
		High:     high,
		PayTable: payTable,
		Lines:    lines,
	}, nil
}

func toSymbols(ids []int) []model.Symbol {
	out := make([]model.Symbol, len(ids))
	for i, id := range ids {
		out[i] = model.Symbol(id)
	}
	return out
}

func parseSymbol(field, key string) (model.Symbol, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, apperr.NewConfigError(field, "symbol key must be an integer: "+key)
	}
	return model.Symbol(n), nil
}

func parseSymbolIntSliceMap(field string, m map[string][]int) (map[model.Symbol][]int, error) {
	out := make(map[model.Symbol][]int, len(m))
	for k, v := range m {
		sym, err := parseSymbol(field, k)
		if err != nil {
			return nil, err
		}
		if len(v) == 0 {
			return nil, apperr.NewConfigError(field, "stack length sequence must be non-empty")
		}
		out[sym] = v
	}
	return out, nil
}
