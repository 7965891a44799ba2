package ga

import (
	"math"

	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/rng"
)

// gaussian draws one N(0, sigma) sample via a Box-Muller pair of
// uniform draws from master.
func gaussian(sigma float64, master *rng.Mulberry32) float64 {
	u1 := math.Max(master.Float64(), 1e-12)
	u2 := master.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return z * sigma
}

// mutate applies Gaussian mutation to every gene of every reel of h,
// each with independent probability rate, then clamps the result back
// into its reel box.
func mutate(hists []model.Histogram, boxes []model.ReelBox, rate, sigma float64, master *rng.Mulberry32) []model.Histogram {
	out := make([]model.Histogram, len(hists))
	for r, h := range hists {
		box := boxes[r]
		mutated := make(model.Histogram, len(h))
		for sym, counts := range h {
			c := make([]int, len(counts))
			for i, v := range counts {
				if master.Bool(rate) {
					v += int(math.Round(gaussian(sigma, master)))
				}
				c[i] = v
			}
			mutated[sym] = c
		}
		out[r] = box.Clamp(mutated)
	}
	return out
}
