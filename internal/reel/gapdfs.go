package reel

import (
	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/rng"
)

// sentinelSymbol marks a gap position that could not be filled. Its
// presence in the assembled strip triggers an attempt retry; it never
// escapes a successful Sequence call.
const sentinelSymbol model.Symbol = -1

// fillGap runs a randomized DFS to place stacks totaling exactly g
// non-special positions, honoring "no two highs adjacent" and "first
// stack of the gap is never high" (isFirst). Recursion depth is
// bounded by g (itself bounded by radius-1), so an explicit tail loop
// is unnecessary but would be equally valid.
func fillGap(b *buckets, r *rng.Mulberry32, g int, prevWasHigh, isFirst bool) []model.Stack {
	if g == 0 {
		return nil
	}

	type move struct {
		length int
		high   bool
	}
	var moves []move
	for ln := 1; ln <= g; ln++ {
		if b.lowCount(ln) > 0 {
			moves = append(moves, move{ln, false})
		}
		if ln < g && !isFirst && !prevWasHigh && b.highCount(ln) > 0 {
			moves = append(moves, move{ln, true})
		}
	}

	if len(moves) == 0 {
		out := make([]model.Stack, g)
		for i := range out {
			out[i] = model.Stack{Symbol: sentinelSymbol, Length: 1}
		}
		return out
	}

	chosen := moves[r.Intn(len(moves))]
	var st model.Stack
	if chosen.high {
		idx := r.Intn(b.highCount(chosen.length))
		st = b.popRandomHigh(chosen.length, idx)
	} else {
		idx := r.Intn(b.lowCount(chosen.length))
		st = b.popRandomLow(chosen.length, idx)
	}

	rest := fillGap(b, r, g-chosen.length, chosen.high, false)
	out := make([]model.Stack, 0, 1+len(rest))
	out = append(out, st)
	out = append(out, rest...)
	return out
}
