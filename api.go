package reelforge

import (
	"github.com/yola1107/reelforge/internal/apperr"
	"github.com/yola1107/reelforge/internal/fitness"
	"github.com/yola1107/reelforge/internal/ga"
	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/reel"
	"github.com/yola1107/reelforge/internal/simulate"
	"github.com/yola1107/reelforge/internal/sink"
	"github.com/yola1107/reelforge/internal/spin"
)

// SimulationResult is the aggregate outcome of running a fixed reel
// set through the simulator.
type SimulationResult struct {
	RTP                      float64
	HitFrequency             float64
	BonusFrequency           float64
	WinningCombinationCounts map[simulate.ComboKey]int64
	WinningCombinationSums   map[simulate.ComboKey]int64
}

// RunSimulation runs spinCount spins of reels against slotConfig and
// aggregates RTP, hit/bonus frequency and per-combination statistics.
// seed drives the simulator's spin-index sampling; the same (reels,
// spinCount, slotConfig, seed) reproduces bitwise-identical output.
func RunSimulation(reels [][]model.Symbol, spinCount int64, slotConfig *model.SlotMachineConfig, seed int64) (*SimulationResult, error) {
	engine, err := spin.New(reels, slotConfig)
	if err != nil {
		return nil, err
	}
	sim := simulate.New(engine, seed)
	result := sim.Run(spinCount)

	counts := make(map[simulate.ComboKey]int64, len(result.ComboCounts))
	for k, v := range result.ComboCounts {
		counts[k] = v
	}
	sums := make(map[simulate.ComboKey]int64, len(result.ComboWinSums))
	for k, v := range result.ComboWinSums {
		sums[k] = v.IntPart()
	}

	return &SimulationResult{
		RTP:                      result.RTP(),
		HitFrequency:             result.HitFrequency(),
		BonusFrequency:           result.BonusFrequency(),
		WinningCombinationCounts: counts,
		WinningCombinationSums:   sums,
	}, nil
}

// GeneticSearchResult is the best candidate a genetic search found,
// its fitness, and the per-generation best-total history.
type GeneticSearchResult struct {
	BestHistograms []model.Histogram
	BestStrips     [][]model.Symbol
	BestFitness    fitness.Breakdown
	History        []float64
}

// RunGeneticSearch runs the GA loop over reelBoxes/classes against
// simTargets, evaluating each candidate over spinCount spins, and
// reports progress to sink (may be nil). simSeed seeds every
// candidate's Monte-Carlo simulator; gaConfig.Seed seeds the GA's own
// master PRNG. Both fixed reproduces the full result bitwise.
func RunGeneticSearch(
	gaConfig ga.Config,
	reelBoxes []model.ReelBox,
	classes []*model.SymbolClasses,
	simTargets model.SimulationTargets,
	spinCount int64,
	slotConfig *model.SlotMachineConfig,
	simSeed int64,
	progress sink.Sink,
) (*GeneticSearchResult, error) {
	eval := ga.NewEvalFunc(slotConfig, simTargets, spinCount, simSeed)
	result, err := ga.Run(gaConfig, reelBoxes, classes, eval, progress)
	if err != nil {
		return nil, err
	}
	return &GeneticSearchResult{
		BestHistograms: result.Best.Histograms,
		BestStrips:     result.Best.Strips,
		BestFitness:    result.BestFitness,
		History:        result.History,
	}, nil
}

// SequenceReel is a standalone entry point over the reel sequencer,
// exposed for hosts that want to materialize a single candidate strip
// (e.g. a UI preview) without running the full GA loop. It does not
// resample the histogram on failure — that policy belongs to the GA's
// bounded retry loop; callers that need it should sample a fresh
// histogram themselves and call again.
func SequenceReel(histogram model.Histogram, classes *model.SymbolClasses, radius int, seed int64) ([]model.Symbol, error) {
	seq := reel.New(classes, radius)
	strip, ok := seq.Sequence(histogram, seed)
	if !ok {
		return nil, &apperr.SequencingError{Reel: 0, Attempts: seq.MaxAttempts, Retries: 0}
	}
	return strip, nil
}
