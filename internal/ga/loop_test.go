package ga

import (
	"testing"

	"github.com/yola1107/reelforge/internal/fitness"
	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/rng"
)

func simpleBoxes() ([]model.ReelBox, []*model.SymbolClasses) {
	box := model.ReelBox{
		Radius: 1,
		Seed:   1,
		Low:    map[model.Symbol][]int{1: {2}, 5: {4}},
		High:   map[model.Symbol][]int{1: {4}, 5: {8}},
	}
	classes := model.NewSymbolClasses([]model.Symbol{1}, nil, nil)
	return []model.ReelBox{box}, []*model.SymbolClasses{classes}
}

// evalStripLength is a cheap deterministic stand-in for a real
// Monte-Carlo fitness call: it scores a candidate by total strip
// length, so the GA has a real (if artificial) gradient to search
// without paying for simulation in every unit test.
func evalStripLength(strips [][]model.Symbol) (fitness.Breakdown, error) {
	total := 0
	for _, s := range strips {
		total += len(s)
	}
	return fitness.Breakdown{Total: float64(total)}, nil
}

func TestElitismPopSizePreservesPopulation(t *testing.T) {
	boxes, classes := simpleBoxes()
	cfg := Config{
		PopSize: 6, Generations: 3, CrossoverRate: 1, MutationRate: 1,
		Elitism: 6, TournamentK: 2, Seed: 1, CrossoverAlpha: 0.5, MutationSigma: 1,
	}
	res, err := Run(cfg, boxes, classes, evalStripLength, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(res.History); i++ {
		if res.History[i] != res.History[0] {
			t.Fatalf("history changed at gen %d: %v != %v", i, res.History[i], res.History[0])
		}
	}
}

func TestGenerationLoopHistoryNonIncreasing(t *testing.T) {
	boxes, classes := simpleBoxes()
	cfg := Config{
		PopSize: 8, Generations: 10, CrossoverRate: 0.7, MutationRate: 0.3,
		Elitism: 1, TournamentK: 3, Seed: 42, CrossoverAlpha: 0.5, MutationSigma: 1,
	}
	res, err := Run(cfg, boxes, classes, evalStripLength, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(res.History); i++ {
		if res.History[i] > res.History[i-1] {
			t.Fatalf("history increased at gen %d: %v -> %v", i-1, res.History[i-1], res.History[i])
		}
	}
	if len(res.History) != cfg.Generations+1 {
		t.Fatalf("history length = %d, want %d", len(res.History), cfg.Generations+1)
	}
}

func TestRunDeterministicGivenSeed(t *testing.T) {
	boxes, classes := simpleBoxes()
	cfg := Config{
		PopSize: 6, Generations: 5, CrossoverRate: 0.5, MutationRate: 0.2,
		Elitism: 1, TournamentK: 2, Seed: 7, CrossoverAlpha: 0.5, MutationSigma: 1,
	}
	r1, err := Run(cfg, boxes, classes, evalStripLength, nil)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Run(cfg, boxes, classes, evalStripLength, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(r1.History) != len(r2.History) {
		t.Fatalf("history length differs")
	}
	for i := range r1.History {
		if r1.History[i] != r2.History[i] {
			t.Fatalf("history diverged at %d: %v != %v", i, r1.History[i], r2.History[i])
		}
	}
	for r := range r1.Best.Strips {
		if len(r1.Best.Strips[r]) != len(r2.Best.Strips[r]) {
			t.Fatalf("best strip length diverged on reel %d", r)
		}
		for k := range r1.Best.Strips[r] {
			if r1.Best.Strips[r][k] != r2.Best.Strips[r][k] {
				t.Fatalf("best strip content diverged on reel %d at %d", r, k)
			}
		}
	}
}

func TestNoCrossoverNoMutationOffspringMatchParents(t *testing.T) {
	boxes, classes := simpleBoxes()
	master := rng.New(1, 0)
	seqs := newSequencers(boxes, classes)

	pop, err := initializePopulation(seqs, boxes, 4, master, DefaultMaxRetries)
	if err != nil {
		t.Fatal(err)
	}
	if err := evaluateAll(pop, evalStripLength); err != nil {
		t.Fatal(err)
	}

	cfg := Config{PopSize: 4, CrossoverRate: 0, MutationRate: 0, Elitism: 0, TournamentK: 2, CrossoverAlpha: 0.5, MutationSigma: 1}
	next, err := nextGeneration(cfg, boxes, seqs, pop, master, DefaultMaxRetries)
	if err != nil {
		t.Fatal(err)
	}
	for _, child := range next.Individuals {
		matched := false
		for _, parent := range pop.Individuals {
			if histogramsEqual(child.Histograms, parent.Histograms) {
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("offspring histogram %v matches no parent", child.Histograms)
		}
	}
}

func histogramsEqual(a, b []model.Histogram) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for sym, counts := range a[r] {
			other, ok := b[r][sym]
			if !ok || len(other) != len(counts) {
				return false
			}
			for i := range counts {
				if counts[i] != other[i] {
					return false
				}
			}
		}
	}
	return true
}
