package ga

import (
	"math"

	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/rng"
)

// blendGene draws one BLX-α offspring gene from parent values x, y.
// The result may fall outside [lo, hi]; blendHistogram clamps the
// whole histogram back into its box afterward.
func blendGene(x, y int, alpha float64, master *rng.Mulberry32) int {
	fx, fy := float64(x), float64(y)
	lower := math.Min(fx, fy) - alpha*math.Abs(fx-fy)
	upper := math.Max(fx, fy) + alpha*math.Abs(fx-fy)
	lower = math.Round(lower)
	upper = math.Round(upper)
	span := upper - lower + 1
	if span < 1 {
		span = 1
	}
	v := lower + math.Floor(master.Float64()*span)
	return int(v)
}

// blendHistogram produces one offspring histogram for a reel by
// blending two parent histograms gene-by-gene, then clamping the
// result back into box.
func blendHistogram(x, y model.Histogram, box model.ReelBox, alpha float64, master *rng.Mulberry32) model.Histogram {
	out := make(model.Histogram, len(x))
	for sym, xs := range x {
		ys := y[sym]
		counts := make([]int, len(xs))
		for i := range xs {
			counts[i] = blendGene(xs[i], ys[i], alpha, master)
		}
		out[sym] = counts
	}
	return box.Clamp(out)
}

// crossover produces two offspring genomes (not yet sequenced) from
// two parents by applying BLX-α independently to every reel.
func crossover(p1, p2 *Individual, boxes []model.ReelBox, alpha float64, master *rng.Mulberry32) (child1, child2 []model.Histogram) {
	child1 = make([]model.Histogram, len(boxes))
	child2 = make([]model.Histogram, len(boxes))
	for r, box := range boxes {
		child1[r] = blendHistogram(p1.Histograms[r], p2.Histograms[r], box, alpha, master)
		child2[r] = blendHistogram(p1.Histograms[r], p2.Histograms[r], box, alpha, master)
	}
	return child1, child2
}
