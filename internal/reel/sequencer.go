// Package reel implements the reel sequencer: given a per-symbol
// stack histogram, produce a concrete cyclic reel strip honoring the
// adjacency rules between special, high and low symbol stacks, or
// report failure after a bounded number of attempts.
package reel

import (
	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/rng"
)

// DefaultMaxAttempts is the sequencer's own per-call attempt cap.
const DefaultMaxAttempts = 50

// Sequencer materializes histograms into reel strips for one reel.
type Sequencer struct {
	Classes     *model.SymbolClasses
	Radius      int
	MaxAttempts int
}

// New builds a sequencer for a reel with the given radius and symbol
// classification. MaxAttempts defaults to DefaultMaxAttempts when 0.
func New(classes *model.SymbolClasses, radius int) *Sequencer {
	return &Sequencer{Classes: classes, Radius: radius, MaxAttempts: DefaultMaxAttempts}
}

// Sequence produces a strip for histogram h using seed as the base
// PRNG seed. It returns (strip, true) on success, or (nil, false) once
// every attempt in [0, MaxAttempts) produced a sentinel.
func (s *Sequencer) Sequence(h model.Histogram, seed int64) ([]model.Symbol, bool) {
	maxAttempts := s.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		r := rng.New(seed, attempt)
		b := newBuckets(h, s.Classes)

		var stacks []model.Stack
		if len(b.special) > 0 {
			for _, sp := range b.special {
				stacks = append(stacks, sp)
				gap := fillGap(b, r, s.Radius-1, false, true)
				stacks = append(stacks, gap...)
			}
			stacks = append(stacks, buildSuffix(b, r, true)...)
		} else {
			stacks = append(stacks, buildSuffix(b, r, false)...)
		}

		strip, ok := expand(stacks)
		if ok {
			return strip, true
		}
	}
	return nil, false
}

// expand flattens stacks into repeated symbols, returning ok=false if
// any sentinel stack is present.
func expand(stacks []model.Stack) ([]model.Symbol, bool) {
	strip := make([]model.Symbol, 0)
	for _, st := range stacks {
		if st.Symbol == sentinelSymbol {
			return nil, false
		}
		for i := 0; i < st.Length; i++ {
			strip = append(strip, st.Symbol)
		}
	}
	return strip, true
}
