package ga

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yola1107/reelforge/internal/apperr"
	"github.com/yola1107/reelforge/internal/fitness"
	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/rng"
	"github.com/yola1107/reelforge/internal/simulate"
	"github.com/yola1107/reelforge/internal/spin"
)

// EvalFunc evaluates one individual's strips into a fitness
// Breakdown. The GA loop calls it once per individual per generation;
// implementations may cache by genome identity, but re-evaluation is
// always permitted.
type EvalFunc func(strips [][]model.Symbol) (fitness.Breakdown, error)

// Result is what runGeneticSearch returns to its host: the best
// individual observed, its fitness and the per-generation best-total
// history (length generations+1).
type Result struct {
	RunID       uuid.UUID
	Best        *Individual
	BestFitness fitness.Breakdown
	History     []float64
}

// Sink is the line-oriented text receiver the GA loop reports
// progress to. Reported line formats are host-defined; ga only
// guarantees that WriteLine is called at least once per generation
// when Config.VerboseProgress is set.
type Sink interface {
	WriteLine(string) error
}

// NewEvalFunc builds an EvalFunc that runs spinCount spins of each
// candidate reel set through a fresh spin.Engine/simulate.Simulator
// pair and scores the result against targets. One Engine per call
// avoids any shared mutable buffer across goroutines.
func NewEvalFunc(cfg *model.SlotMachineConfig, targets model.SimulationTargets, spinCount int64, simSeed int64) EvalFunc {
	return func(strips [][]model.Symbol) (fitness.Breakdown, error) {
		engine, err := spin.New(strips, cfg)
		if err != nil {
			return fitness.Breakdown{}, err
		}
		sim := simulate.New(engine, simSeed)
		result := sim.Run(spinCount)
		return fitness.Score(result, targets), nil
	}
}

// Run executes the full GA loop and returns the best individual, its
// fitness, and the per-generation best-total history.
func Run(cfg Config, boxes []model.ReelBox, classes []*model.SymbolClasses, eval EvalFunc, sink Sink) (*Result, error) {
	runID := uuid.New()
	if sink != nil {
		line := fmt.Sprintf("run=%s popSize=%d generations=%d seed=%d", runID, cfg.PopSize, cfg.Generations, cfg.Seed)
		if err := sink.WriteLine(line); err != nil {
			return nil, &apperr.SinkError{Cause: err}
		}
	}

	master := rng.New(cfg.Seed, 0)
	seqs := newSequencers(boxes, classes)
	maxRetries := cfg.maxRetries()

	pop, err := initializePopulation(seqs, boxes, cfg.PopSize, master, maxRetries)
	if err != nil {
		return nil, err
	}
	if err := evaluateAll(pop, eval); err != nil {
		return nil, err
	}

	best := bestOf(pop)
	history := make([]float64, 0, cfg.Generations+1)
	history = append(history, best.Fitness.Total)
	if err := report(sink, cfg, 0, best); err != nil {
		return nil, &apperr.SinkError{Cause: err}
	}

	for gen := 1; gen <= cfg.Generations; gen++ {
		next, err := nextGeneration(cfg, boxes, seqs, pop, master, maxRetries)
		if err != nil {
			return nil, err
		}
		if err := evaluateAll(next, eval); err != nil {
			return nil, err
		}
		pop = next

		genBest := bestOf(pop)
		if genBest.Fitness.Total < best.Fitness.Total {
			best = genBest
		}
		history = append(history, best.Fitness.Total)
		if err := report(sink, cfg, gen, genBest); err != nil {
			return nil, &apperr.SinkError{Cause: err}
		}
	}

	return &Result{RunID: runID, Best: best, BestFitness: best.Fitness, History: history}, nil
}

// nextGeneration builds the next population: elitism first, then
// tournament-selected pairs run through crossover/mutation until
// popSize is reached.
func nextGeneration(cfg Config, boxes []model.ReelBox, seqs sequencers, pop *Population, master *rng.Mulberry32, maxRetries int) (*Population, error) {
	sorted := sortedByFitness(pop)
	next := &Population{Individuals: make([]*Individual, 0, cfg.PopSize)}
	for i := 0; i < cfg.Elitism && i < len(sorted); i++ {
		next.Individuals = append(next.Individuals, sorted[i].Clone())
	}

	for len(next.Individuals) < cfg.PopSize {
		p1 := tournamentSelect(pop, cfg.TournamentK, master)
		p2 := tournamentSelect(pop, cfg.TournamentK, master)

		var h1, h2 []model.Histogram
		if master.Bool(cfg.CrossoverRate) {
			h1, h2 = crossover(p1, p2, boxes, cfg.CrossoverAlpha, master)
		} else {
			h1 = cloneHistograms(p1.Histograms)
			h2 = cloneHistograms(p2.Histograms)
		}

		h1 = mutate(h1, boxes, cfg.MutationRate, cfg.MutationSigma, master)
		h2 = mutate(h2, boxes, cfg.MutationRate, cfg.MutationSigma, master)

		for _, h := range [][]model.Histogram{h1, h2} {
			if len(next.Individuals) >= cfg.PopSize {
				break
			}
			ind, err := materialize(seqs, boxes, h, master.Float64, maxRetries)
			if err != nil {
				return nil, err
			}
			next.Individuals = append(next.Individuals, ind)
		}
	}
	return next, nil
}

func cloneHistograms(hists []model.Histogram) []model.Histogram {
	out := make([]model.Histogram, len(hists))
	for i, h := range hists {
		out[i] = h.Clone()
	}
	return out
}

// evaluateAll scores every individual in pop. Evaluation is
// independent per individual, so it runs on a worker pool via
// errgroup bounded to GOMAXPROCS; results are written back at fixed
// indices, so aggregation order is deterministic regardless of
// goroutine scheduling.
func evaluateAll(pop *Population, eval EvalFunc) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range pop.Individuals {
		i := i
		g.Go(func() error {
			b, err := eval(pop.Individuals[i].Strips)
			if err != nil {
				return err
			}
			pop.Individuals[i].Fitness = b
			return nil
		})
	}
	return g.Wait()
}

func bestOf(pop *Population) *Individual {
	best := pop.Individuals[0]
	for _, ind := range pop.Individuals[1:] {
		if ind.Fitness.Total < best.Fitness.Total {
			best = ind
		}
	}
	return best
}

func sortedByFitness(pop *Population) []*Individual {
	out := make([]*Individual, len(pop.Individuals))
	copy(out, pop.Individuals)
	sort.Slice(out, func(i, j int) bool { return out[i].Fitness.Total < out[j].Fitness.Total })
	return out
}
