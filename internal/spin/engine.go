// Package spin implements the paylines spin engine: window extraction
// from a reel set, line evaluation with wild adoption and scatter
// termination, and the bonus-trigger predicate.
package spin

import (
	"github.com/yola1107/reelforge/internal/apperr"
	"github.com/yola1107/reelforge/internal/model"
)

// WinningCombination is one non-zero-payout line result, recorded
// only when its payout is non-zero.
type WinningCombination struct {
	Symbol model.Symbol
	Length int
	Win    int64
}

// Engine evaluates spins against a fixed reel set and slot config. It
// owns two reusable buffers (index and cell) that are overwritten on
// every call; callers running fitness evaluation in parallel must use
// one Engine per worker goroutine.
type Engine struct {
	reels  [][]model.Symbol
	cfg    *model.SlotMachineConfig
	cycle  int64
	offset []int
	cell   []model.Symbol

	flatLines [][]int
}

// New builds an engine over a materialized reel set and validates the
// flattened line indices once, up front.
func New(reels [][]model.Symbol, cfg *model.SlotMachineConfig) (*Engine, error) {
	if len(reels) != len(cfg.Window) {
		return nil, apperr.NewConfigError("reels", "reel count does not match window count")
	}
	cycle := int64(1)
	for r, strip := range reels {
		if len(strip) == 0 {
			return nil, apperr.NewConfigError("reels", "reel has zero length")
		}
		next := cycle * int64(len(strip))
		if cycle != 0 && next/int64(len(strip)) != cycle {
			return nil, apperr.NewConfigError("reels", "cycle overflows int64")
		}
		cycle = next
		if cfg.Window[r] <= 0 || cfg.Window[r] > len(strip) {
			return nil, apperr.NewConfigError("window", "window exceeds reel length")
		}
	}

	e := &Engine{
		reels:  reels,
		cfg:    cfg,
		cycle:  cycle,
		offset: make([]int, len(reels)),
		cell:   make([]model.Symbol, cfg.CellCount()),
	}

	base := make([]int, len(cfg.Window))
	acc := 0
	for r, w := range cfg.Window {
		base[r] = acc
		acc += w
	}
	for _, line := range cfg.Lines {
		if len(line) != len(cfg.Window) {
			return nil, apperr.NewConfigError("lines", "line length does not match reel count")
		}
		flat := make([]int, len(line))
		for r, row := range line {
			if row < 0 || row >= cfg.Window[r] {
				return nil, apperr.NewConfigError("lines", "line row index out of window")
			}
			flat[r] = base[r] + row
		}
		e.flatLines = append(e.flatLines, flat)
	}
	return e, nil
}

// Cycle is the total number of distinct spin indices, product of reel
// lengths.
func (e *Engine) Cycle() int64 { return e.cycle }

// loadWindow decomposes spin index i into per-reel offsets and fills
// the cell buffer, reel-major.
func (e *Engine) loadWindow(i int64) {
	rem := i
	for r := len(e.reels) - 1; r >= 0; r-- {
		n := int64(len(e.reels[r]))
		e.offset[r] = int(rem % n)
		rem /= n
	}
	pos := 0
	for r, strip := range e.reels {
		w := e.cfg.Window[r]
		off := e.offset[r]
		n := len(strip)
		for k := 0; k < w; k++ {
			e.cell[pos] = strip[(off+k)%n]
			pos++
		}
	}
}

// Spin evaluates spin index i without recording winning combinations,
// returning only the total win and the bonus predicate. This is the
// allocation-free fast path; the simulator calls SpinRecording
// instead, since it aggregates per-combination statistics.
func (e *Engine) Spin(i int64) (win int64, bonus bool) {
	e.loadWindow(i)
	for _, flat := range e.flatLines {
		win += e.evalLine(flat)
	}
	bonus = e.bonusTriggered()
	return win, bonus
}

// SpinRecording evaluates spin index i and additionally returns every
// winning combination whose payout was non-zero.
func (e *Engine) SpinRecording(i int64) (win int64, bonus bool, combos []WinningCombination) {
	e.loadWindow(i)
	for _, flat := range e.flatLines {
		w, combo, ok := e.evalLineRecording(flat)
		win += w
		if ok {
			combos = append(combos, combo)
		}
	}
	bonus = e.bonusTriggered()
	return win, bonus, combos
}

// evalLine walks one line and returns its payout.
func (e *Engine) evalLine(flat []int) int64 {
	runLen, locked := e.walkLine(flat)
	return e.payout(locked, runLen)
}

func (e *Engine) evalLineRecording(flat []int) (int64, WinningCombination, bool) {
	runLen, locked := e.walkLine(flat)
	w := e.payout(locked, runLen)
	if w == 0 {
		return 0, WinningCombination{}, false
	}
	return w, WinningCombination{Symbol: locked, Length: runLen, Win: w}, true
}

// walkLine implements the left-to-right run/lock logic.
func (e *Engine) walkLine(flat []int) (runLen int, locked model.Symbol) {
	locked = e.cell[flat[0]]
	runLen = 1
	for k := 1; k < len(flat); k++ {
		s := e.cell[flat[k]]
		if e.cfg.IsScatter(locked) {
			if !e.cfg.IsScatter(s) {
				break
			}
			runLen++
			continue
		}
		if e.cfg.IsWild(locked) && !e.cfg.IsWild(s) && !e.cfg.IsScatter(s) {
			locked = s
		}
		if s == locked || e.cfg.IsWild(s) {
			runLen++
			continue
		}
		break
	}
	return runLen, locked
}

func (e *Engine) payout(symbol model.Symbol, runLen int) int64 {
	table, ok := e.cfg.PayTable[symbol]
	if !ok || runLen-1 < 0 || runLen-1 >= len(table) {
		return 0
	}
	return table[runLen-1]
}

// bonusTriggered reports whether every reel's visible window contains
// at least one scatter symbol.
func (e *Engine) bonusTriggered() bool {
	if len(e.cfg.Scatter) == 0 {
		return false
	}
	pos := 0
	for _, w := range e.cfg.Window {
		found := false
		for k := 0; k < w; k++ {
			if e.cfg.IsScatter(e.cell[pos+k]) {
				found = true
				break
			}
		}
		pos += w
		if !found {
			return false
		}
	}
	return true
}
