// Package ga implements the evolutionary search over reel strips:
// population initialization, tournament selection, BLX-α blend
// crossover, Gaussian mutation and elitism over stack-count genomes,
// each backed by a reel strip the sequencer materializes.
package ga

import (
	"github.com/yola1107/reelforge/internal/apperr"
	"github.com/yola1107/reelforge/internal/fitness"
	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/reel"
)

// Individual is one genome: a histogram per reel plus the strip the
// sequencer produced for it. The strip and histogram are always kept
// consistent — Individuals are only ever constructed through
// materialize, which sequences before returning.
type Individual struct {
	Histograms []model.Histogram
	Strips     [][]model.Symbol
	Fitness    fitness.Breakdown
}

// Clone deep-copies an individual, used by elitism to carry survivors
// into the next generation untouched. Fitness is copied by value in
// the struct literal below; its SymbolRTP map is shared with ind, not
// copied. Histograms and Strips get an explicit slice-of-slice deep
// copy.
func (ind *Individual) Clone() *Individual {
	out := &Individual{Fitness: ind.Fitness}
	out.Histograms = make([]model.Histogram, len(ind.Histograms))
	for i, h := range ind.Histograms {
		out.Histograms[i] = h.Clone()
	}
	out.Strips = make([][]model.Symbol, len(ind.Strips))
	for i, s := range ind.Strips {
		cp := make([]model.Symbol, len(s))
		copy(cp, s)
		out.Strips[i] = cp
	}
	return out
}

// sequencers holds one *reel.Sequencer per reel, built once from the
// reel boxes at GA-construction time and shared read-only across all
// materialize calls (Sequencer itself carries no mutable state beyond
// its own parameters).
type sequencers []*reel.Sequencer

func newSequencers(boxes []model.ReelBox, classes []*model.SymbolClasses) sequencers {
	out := make(sequencers, len(boxes))
	for i, box := range boxes {
		out[i] = reel.New(classes[i], box.Radius)
	}
	return out
}

// materialize sequences every reel of a candidate histogram set,
// retrying with a fresh random resample of the failing reel up to
// maxRetries times before returning a SequencingError.
func materialize(seqs sequencers, boxes []model.ReelBox, hists []model.Histogram, u func() float64, maxRetries int) (*Individual, error) {
	strips := make([][]model.Symbol, len(hists))
	out := make([]model.Histogram, len(hists))
	for r, h := range hists {
		cur := h
		var strip []model.Symbol
		ok := false
		attempts := 0
		for attempts = 0; attempts < maxRetries; attempts++ {
			strip, ok = seqs[r].Sequence(cur, boxes[r].Seed+int64(attempts))
			if ok {
				break
			}
			cur = boxes[r].Sample(u)
		}
		if !ok {
			return nil, &apperr.SequencingError{Reel: r, Attempts: seqs[r].MaxAttempts, Retries: maxRetries}
		}
		out[r] = cur
		strips[r] = strip
	}
	return &Individual{Histograms: out, Strips: strips}, nil
}
