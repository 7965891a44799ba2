package model

// Line is one payline pattern: for each reel, the visible row index
// to read.
type Line []int

// SlotMachineConfig is the immutable per-run configuration shared by
// the spin engine and simulator.
type SlotMachineConfig struct {
	Window   []int
	Wild     []Symbol
	Scatter  []Symbol
	High     []Symbol
	PayTable map[Symbol][]int64
	Lines    []Line
}

// Classes builds the sequencer's symbol classifier from this config.
func (c *SlotMachineConfig) Classes() *SymbolClasses {
	return NewSymbolClasses(c.Wild, c.Scatter, c.High)
}

// IsWild reports whether s is one of the configured wild symbols.
func (c *SlotMachineConfig) IsWild(s Symbol) bool {
	for _, w := range c.Wild {
		if w == s {
			return true
		}
	}
	return false
}

// IsScatter reports whether s is one of the configured scatter
// symbols.
func (c *SlotMachineConfig) IsScatter(s Symbol) bool {
	for _, sc := range c.Scatter {
		if sc == s {
			return true
		}
	}
	return false
}

// ReelCount is the number of reels this config describes.
func (c *SlotMachineConfig) ReelCount() int { return len(c.Window) }

// CellCount is the size of one spin's flat cell buffer: sum of window
// heights.
func (c *SlotMachineConfig) CellCount() int {
	total := 0
	for _, w := range c.Window {
		total += w
	}
	return total
}

// SimulationTargets is the operator-supplied statistical target set
// the fitness function scores candidates against.
type SimulationTargets struct {
	TargetRTP                 float64
	TargetHitFrequency        float64
	TargetBonusFrequency      float64
	SymbolRTPTarget           map[Symbol]float64
	SymbolRTPUnevennessWeight float64
}
