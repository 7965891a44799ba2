// Package simulate implements the Monte-Carlo simulator: it drives
// the spin engine over spinCount random spin indices and aggregates
// the statistics the fitness function needs.
package simulate

import (
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yola1107/reelforge/internal/spin"
)

// ComboKey identifies a (symbol, length) winning-combination bucket.
type ComboKey struct {
	Symbol int
	Length int
}

// ComboRow is one row of a winning-combinations report: how many
// times a (symbol, length) combination won, and the total amount it
// paid out across the run.
type ComboRow struct {
	Symbol int
	Length int
	Count  int64
	WinSum decimal.Decimal
}

// WinningCombinations returns every (symbol, length) bucket that won
// at least once, ordered by ascending symbol then ascending length —
// the stable order the sink's table renderer depends on.
func (r *Result) WinningCombinations() []ComboRow {
	rows := make([]ComboRow, 0, len(r.ComboCounts))
	for k, count := range r.ComboCounts {
		rows = append(rows, ComboRow{Symbol: k.Symbol, Length: k.Length, Count: count, WinSum: r.ComboWinSums[k]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Symbol != rows[j].Symbol {
			return rows[i].Symbol < rows[j].Symbol
		}
		return rows[i].Length < rows[j].Length
	})
	return rows
}

// Result is the aggregate outcome of one Run call.
type Result struct {
	SpinCount  int64
	TotalWin   decimal.Decimal
	WinSpins   int64
	BonusSpins int64

	ComboCounts  map[ComboKey]int64
	ComboWinSums map[ComboKey]decimal.Decimal
}

// RTP returns totalWin / spinCount.
func (r *Result) RTP() float64 {
	if r.SpinCount == 0 {
		return 0
	}
	v, _ := r.TotalWin.Div(decimal.NewFromInt(r.SpinCount)).Float64()
	return v
}

// HitFrequency returns winSpins / spinCount.
func (r *Result) HitFrequency() float64 {
	if r.SpinCount == 0 {
		return 0
	}
	return float64(r.WinSpins) / float64(r.SpinCount)
}

// BonusFrequency returns bonusSpins / spinCount.
func (r *Result) BonusFrequency() float64 {
	if r.SpinCount == 0 {
		return 0
	}
	return float64(r.BonusSpins) / float64(r.SpinCount)
}

// SymbolRTP returns, for each symbol seen in a winning combination,
// its win-sum share of spinCount.
func (r *Result) SymbolRTP() map[int]float64 {
	sums := make(map[int]decimal.Decimal)
	for k, v := range r.ComboWinSums {
		sums[k.Symbol] = sums[k.Symbol].Add(v)
	}
	out := make(map[int]float64, len(sums))
	if r.SpinCount == 0 {
		return out
	}
	denom := decimal.NewFromInt(r.SpinCount)
	for sym, sum := range sums {
		v, _ := sum.Div(denom).Float64()
		out[sym] = v
	}
	return out
}

// Simulator runs repeated spins of one Engine using its own seeded
// random index source, rather than an ambient shared one, so a run is
// reproducible independent of what else is running concurrently.
type Simulator struct {
	engine *spin.Engine
	rand   *rand.Rand
}

// New builds a simulator over engine, seeded with seed.
func New(engine *spin.Engine, seed int64) *Simulator {
	return &Simulator{engine: engine, rand: rand.New(rand.NewSource(seed))}
}

// Run executes spinCount spins and aggregates the results. Cycle
// overflow is caught by the engine at construction time.
func (s *Simulator) Run(spinCount int64) *Result {
	r := &Result{
		SpinCount:    spinCount,
		TotalWin:     decimal.Zero,
		ComboCounts:  make(map[ComboKey]int64),
		ComboWinSums: make(map[ComboKey]decimal.Decimal),
	}
	cycle := s.engine.Cycle()
	for n := int64(0); n < spinCount; n++ {
		idx := s.randIndex(cycle)
		win, bonus, combos := s.engine.SpinRecording(idx)
		if win != 0 {
			r.TotalWin = r.TotalWin.Add(decimal.NewFromInt(win))
			r.WinSpins++
		}
		if bonus {
			r.BonusSpins++
		}
		for _, c := range combos {
			key := ComboKey{Symbol: int(c.Symbol), Length: c.Length}
			r.ComboCounts[key]++
			r.ComboWinSums[key] = r.ComboWinSums[key].Add(decimal.NewFromInt(c.Win))
		}
	}
	return r
}

func (s *Simulator) randIndex(cycle int64) int64 {
	if cycle <= 0 {
		return 0
	}
	return s.rand.Int63n(cycle)
}
