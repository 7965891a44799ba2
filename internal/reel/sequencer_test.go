package reel

import (
	"testing"

	"github.com/yola1107/reelforge/internal/model"
)

// S1 — Pure-low strip: radius=2, no special or high symbols,
// histogram {5: [2]} (two length-1 stacks of symbol 5).
func TestSequenceS1PureLow(t *testing.T) {
	classes := model.NewSymbolClasses(nil, nil, nil)
	seq := New(classes, 2)
	h := model.Histogram{5: {2}}

	strip, ok := seq.Sequence(h, 42)
	if !ok {
		t.Fatal("expected success")
	}
	if len(strip) != 2 {
		t.Fatalf("strip length = %d, want 2", len(strip))
	}
	for _, s := range strip {
		if s != 5 {
			t.Fatalf("strip contains unexpected symbol %d", s)
		}
	}
}

// S2 — Special spacing with insufficient lows: radius=3, specials
// {1}, one length-1 low stack {5:[1]}, histogram {1:[2], 5:[1]}. Every
// attempt should fail because there aren't enough low stacks to fill
// two gaps of length 2 each.
func TestSequenceS2InsufficientLows(t *testing.T) {
	classes := model.NewSymbolClasses(nil, nil, nil)
	classes = model.NewSymbolClasses([]model.Symbol{1}, nil, nil)
	seq := New(classes, 3)
	h := model.Histogram{1: {2}, 5: {1}}

	_, ok := seq.Sequence(h, 7)
	if ok {
		t.Fatal("expected sequencing to fail with insufficient low stock")
	}
}

func TestSequenceRespectsSpecialSpacing(t *testing.T) {
	classes := model.NewSymbolClasses([]model.Symbol{1}, nil, nil)
	seq := New(classes, 3)
	// Enough low stock this time: two gaps of length 2 need 4 low
	// stack-positions total.
	h := model.Histogram{1: {2}, 5: {4}}

	strip, ok := seq.Sequence(h, 7)
	if !ok {
		t.Fatal("expected success with sufficient low stock")
	}
	assertSpecialSpacing(t, strip, classes, 3)
}

// With a single high stack there is no way for the suffix builder to
// place two highs back to back, regardless of the random draws it
// makes among the lows — this exercises the "no two highs adjacent"
// bookkeeping without depending on how many low stacks happen to be
// drawn between highs.
func TestSequenceNoTwoHighsAdjacentSingleHigh(t *testing.T) {
	classes := model.NewSymbolClasses(nil, nil, []model.Symbol{2})
	seq := New(classes, 1)
	h := model.Histogram{
		2: {1},
		9: {4},
	}
	strip, ok := seq.Sequence(h, 99)
	if !ok {
		t.Fatal("expected success")
	}
	assertNoTwoHighsCyclicallyAdjacent(t, strip, classes)
}

func TestSequenceStackMultisetPreserved(t *testing.T) {
	classes := model.NewSymbolClasses([]model.Symbol{1}, nil, []model.Symbol{2})
	seq := New(classes, 1)
	h := model.Histogram{
		1: {1, 1},
		2: {2},
		9: {0, 3},
	}
	strip, ok := seq.Sequence(h, 555)
	if !ok {
		t.Fatal("expected success")
	}
	got := runLengthEncode(strip)
	want := h.Stacks()
	assertMultisetEqual(t, got, want)
}

// --- helpers ---

func runLengthEncode(strip []model.Symbol) []model.Stack {
	if len(strip) == 0 {
		return nil
	}
	var out []model.Stack
	cur := strip[0]
	n := 1
	for i := 1; i < len(strip); i++ {
		if strip[i] == cur {
			n++
			continue
		}
		out = append(out, model.Stack{Symbol: cur, Length: n})
		cur = strip[i]
		n = 1
	}
	out = append(out, model.Stack{Symbol: cur, Length: n})
	// The strip is cyclic: if it starts and ends with the same run,
	// merge the wraparound run.
	if len(out) > 1 && out[0].Symbol == out[len(out)-1].Symbol {
		out[0].Length += out[len(out)-1].Length
		out = out[:len(out)-1]
	}
	return out
}

func assertMultisetEqual(t *testing.T, got, want []model.Stack) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("stack count = %d, want %d (got=%v want=%v)", len(got), len(want), got, want)
	}
	remaining := append([]model.Stack(nil), want...)
	for _, g := range got {
		found := -1
		for i, w := range remaining {
			if g.Equal(w) {
				found = i
				break
			}
		}
		if found == -1 {
			t.Fatalf("unexpected stack %v not in histogram", g)
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
}

func assertSpecialSpacing(t *testing.T, strip []model.Symbol, classes *model.SymbolClasses, radius int) {
	t.Helper()
	n := len(strip)
	var specialIdx []int
	for i, s := range strip {
		if classes.IsSpecial(s) {
			specialIdx = append(specialIdx, i)
		}
	}
	for i := 0; i < len(specialIdx); i++ {
		a := specialIdx[i]
		b := specialIdx[(i+1)%len(specialIdx)]
		gap := (b - a - 1 + n) % n
		if len(specialIdx) == 1 {
			gap = n - 1
		}
		if gap < radius-1 {
			t.Fatalf("special spacing violated: gap=%d, want >= %d", gap, radius-1)
		}
	}
}

func assertNoTwoHighsCyclicallyAdjacent(t *testing.T, strip []model.Symbol, classes *model.SymbolClasses) {
	t.Helper()
	n := len(strip)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if classes.IsHigh(strip[i]) && classes.IsHigh(strip[j]) {
			t.Fatalf("two highs adjacent at %d,%d: %v,%v", i, j, strip[i], strip[j])
		}
	}
}
