package reel

import (
	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/rng"
)

// buildSuffix consumes every remaining high and low stack in b,
// respecting "no two highs adjacent". If mustStartLow and a low stack
// remains, one is emitted first.
func buildSuffix(b *buckets, r *rng.Mulberry32, mustStartLow bool) []model.Stack {
	highs := flattenByLength(b.high)
	lows := flattenByLength(b.low)

	var out []model.Stack
	prevHigh := false

	if mustStartLow && len(lows) > 0 {
		st, rest := popRandom(r, lows)
		lows = rest
		out = append(out, st)
		prevHigh = false
	}

	for len(highs) > 0 || len(lows) > 0 {
		switch {
		case prevHigh && len(lows) > 0:
			st, rest := popRandom(r, lows)
			lows = rest
			out = append(out, st)
			prevHigh = false

		case len(highs) > 0 && len(lows) == 0:
			st, rest := popRandom(r, highs)
			highs = rest
			out = append(out, st)
			prevHigh = true

		case len(lows) > 0 && len(highs) == 0:
			st, rest := popRandom(r, lows)
			lows = rest
			out = append(out, st)
			prevHigh = false

		default:
			emitHigh := r.Bool(0.5) || len(highs) > len(lows)
			if emitHigh {
				st, rest := popRandom(r, highs)
				highs = rest
				out = append(out, st)
				prevHigh = true
			} else {
				st, rest := popRandom(r, lows)
				lows = rest
				out = append(out, st)
				prevHigh = false
			}
		}
	}
	return out
}

// popRandom removes and returns a uniformly random element of list,
// pop-swapping with the last element to keep it O(1).
func popRandom(r *rng.Mulberry32, list []model.Stack) (model.Stack, []model.Stack) {
	idx := r.Intn(len(list))
	st := list[idx]
	last := len(list) - 1
	list[idx] = list[last]
	return st, list[:last]
}
