package ga

import "github.com/yola1107/reelforge/internal/rng"

// tournamentSelect draws k indices uniformly with replacement from
// pop and returns the individual with the lowest fitness total.
func tournamentSelect(pop *Population, k int, master *rng.Mulberry32) *Individual {
	n := len(pop.Individuals)
	best := pop.Individuals[master.Intn(n)]
	for i := 1; i < k; i++ {
		cand := pop.Individuals[master.Intn(n)]
		if cand.Fitness.Total < best.Fitness.Total {
			best = cand
		}
	}
	return best
}
