package main

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yola1107/reelforge"
	"github.com/yola1107/reelforge/internal/config"
	"github.com/yola1107/reelforge/internal/simulate"
	"github.com/yola1107/reelforge/internal/sink"
)

// App is the CLI host's assembled dependency graph: an output sink
// and a run identifier tagging this invocation's sink output,
// mirroring the teacher's practice of stamping session/request
// identifiers onto its own log lines. The config bundle is loaded
// per-subcommand in main, since "simulate" and "search" read
// differently shaped documents.
type App struct {
	Sink  sink.Sink
	RunID uuid.UUID
}

// NewApp assembles an App from its already-constructed dependencies.
// It is a wire provider: see wire.go/wire_gen.go.
func NewApp(s sink.Sink, runID uuid.UUID) *App {
	return &App{Sink: s, RunID: runID}
}

// NewRunID is a wire provider for the CLI's run identifier.
func NewRunID() uuid.UUID {
	return uuid.New()
}

// RunSearch runs runGeneticSearch over bundle, streaming progress to
// the app's sink, and reports the final best fitness. A failed sink
// write is fatal to the run and is surfaced as a reelforge.SinkError.
func (a *App) RunSearch(bundle *config.Bundle) error {
	if err := a.Sink.WriteLine(fmt.Sprintf("run=%s search start: popSize=%d generations=%d seed=%d",
		a.RunID, bundle.GA.PopSize, bundle.GA.Generations, bundle.GA.Seed)); err != nil {
		return &reelforge.SinkError{Cause: err}
	}

	result, err := reelforge.RunGeneticSearch(
		bundle.GA, bundle.ReelBoxes, bundle.Classes, bundle.SimTargets,
		bundle.SpinCount, bundle.SlotConfig, bundle.GA.Seed, a.Sink,
	)
	if err != nil {
		return err
	}

	if err := a.Sink.WriteLine(fmt.Sprintf("run=%s search done: best.total=%.6f rtp=%.6f hitFreq=%.6f bonusFreq=%.6f",
		a.RunID, result.BestFitness.Total, result.BestFitness.RTP, result.BestFitness.HitFrequency, result.BestFitness.BonusFrequency)); err != nil {
		return &reelforge.SinkError{Cause: err}
	}
	for r, strip := range result.BestStrips {
		if err := a.Sink.WriteLine(fmt.Sprintf("run=%s reel[%d] len=%d strip=%v", a.RunID, r, len(strip), strip)); err != nil {
			return &reelforge.SinkError{Cause: err}
		}
	}
	return nil
}

// RunSimulate runs runSimulation over an explicit reel set, printing
// the summary and winning-combinations table. A failed sink write is
// fatal to the run and is surfaced as a reelforge.SinkError.
func (a *App) RunSimulate(input *config.SimulationInput) error {
	result, err := reelforge.RunSimulation(input.Reels, input.SpinCount, input.SlotConfig, input.Seed)
	if err != nil {
		return err
	}
	if err := a.Sink.WriteLine(fmt.Sprintf("run=%s simulate done: rtp=%.6f hitFreq=%.6f bonusFreq=%.6f",
		a.RunID, result.RTP, result.HitFrequency, result.BonusFrequency)); err != nil {
		return &reelforge.SinkError{Cause: err}
	}

	rows := make([]simulate.ComboRow, 0, len(result.WinningCombinationCounts))
	for k, count := range result.WinningCombinationCounts {
		rows = append(rows, simulate.ComboRow{
			Symbol: k.Symbol,
			Length: k.Length,
			Count:  count,
			WinSum: decimal.NewFromInt(result.WinningCombinationSums[k]),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Symbol != rows[j].Symbol {
			return rows[i].Symbol < rows[j].Symbol
		}
		return rows[i].Length < rows[j].Length
	})
	if err := sink.WriteWinningCombinations(a.Sink, rows); err != nil {
		return &reelforge.SinkError{Cause: err}
	}
	return nil
}
