package ga

import (
	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/rng"
)

// DefaultMaxRetries is the GA's per-operator retry cap for a single
// reel's sequencing.
const DefaultMaxRetries = 250

// Config is the GA's tunable parameter set, the gaConfig tree.
type Config struct {
	PopSize                   int
	Generations               int
	CrossoverRate             float64
	MutationRate              float64
	Elitism                   int
	TournamentK               int
	Seed                      int64
	CrossoverAlpha            float64
	MutationSigma             float64
	SymbolRTPUnevennessWeight float64
	VerboseProgress           bool
	MaxRetriesPerReel         int
}

func (c Config) maxRetries() int {
	if c.MaxRetriesPerReel > 0 {
		return c.MaxRetriesPerReel
	}
	return DefaultMaxRetries
}

// Population is the GA's owned set of individuals for one generation.
type Population struct {
	Individuals []*Individual
}

// initializePopulation builds popSize individuals, each reel sampled
// uniformly within its box.
func initializePopulation(seqs sequencers, boxes []model.ReelBox, popSize int, master *rng.Mulberry32, maxRetries int) (*Population, error) {
	pop := &Population{Individuals: make([]*Individual, 0, popSize)}
	for i := 0; i < popSize; i++ {
		hists := make([]model.Histogram, len(boxes))
		for r, box := range boxes {
			hists[r] = box.Sample(master.Float64)
		}
		ind, err := materialize(seqs, boxes, hists, master.Float64, maxRetries)
		if err != nil {
			return nil, err
		}
		pop.Individuals = append(pop.Individuals, ind)
	}
	return pop, nil
}
