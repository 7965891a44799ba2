package simulate

import (
	"testing"

	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/spin"
)

func newFixedEngine(t *testing.T) *spin.Engine {
	t.Helper()
	cfg := &model.SlotMachineConfig{
		Window:   []int{3},
		Lines:    []model.Line{{0}},
		PayTable: map[model.Symbol][]int64{7: {2, 5, 10}},
	}
	e, err := spin.New([][]model.Symbol{{7, 7, 7}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSimulatorS3Constant(t *testing.T) {
	e := newFixedEngine(t)
	sim := New(e, 1)
	r := sim.Run(1000)
	if r.RTP() != 2.0 {
		t.Fatalf("rtp = %v, want 2.0", r.RTP())
	}
	if r.HitFrequency() != 1.0 {
		t.Fatalf("hit frequency = %v, want 1.0", r.HitFrequency())
	}
	if r.BonusFrequency() != 0 {
		t.Fatalf("bonus frequency = %v, want 0", r.BonusFrequency())
	}
}

func TestSimulatorMetricsNonNegativeAndBounded(t *testing.T) {
	cfg := &model.SlotMachineConfig{
		Window:   []int{2, 2},
		Lines:    []model.Line{{0, 0}, {1, 1}},
		Scatter:  []model.Symbol{9},
		PayTable: map[model.Symbol][]int64{1: {1, 3}, 9: {0, 0}},
	}
	e, err := spin.New([][]model.Symbol{{1, 2, 9, 1}, {1, 9, 2, 1}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim := New(e, 7)
	r := sim.Run(5000)
	if r.RTP() < 0 {
		t.Fatal("rtp must be non-negative")
	}
	if r.HitFrequency() < 0 || r.HitFrequency() > 1 {
		t.Fatalf("hit frequency out of range: %v", r.HitFrequency())
	}
	if r.BonusFrequency() < 0 || r.BonusFrequency() > 1 {
		t.Fatalf("bonus frequency out of range: %v", r.BonusFrequency())
	}
}

func TestSimulatorEmptyScatterNeverBonuses(t *testing.T) {
	e := newFixedEngine(t)
	sim := New(e, 3)
	r := sim.Run(2000)
	if r.BonusFrequency() != 0 {
		t.Fatalf("bonus frequency = %v, want 0 with empty scatter set", r.BonusFrequency())
	}
}

func TestSimulatorDeterministicGivenSeed(t *testing.T) {
	e1 := newFixedEngine(t)
	e2 := newFixedEngine(t)
	r1 := New(e1, 42).Run(500)
	r2 := New(e2, 42).Run(500)
	if !r1.TotalWin.Equal(r2.TotalWin) {
		t.Fatalf("totalWin diverged: %v != %v", r1.TotalWin, r2.TotalWin)
	}
	if r1.WinSpins != r2.WinSpins || r1.BonusSpins != r2.BonusSpins {
		t.Fatal("spin counts diverged for identical seed")
	}
}
