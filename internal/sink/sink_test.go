package sink

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yola1107/reelforge/internal/simulate"
)

func TestWriterSinkWriteLine(t *testing.T) {
	var buf strings.Builder
	s := NewWriterSink(&buf)
	if err := s.WriteLine("hello"); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteLine("world"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "hello\nworld\n"; got != want {
		t.Fatalf("buf = %q, want %q", got, want)
	}
}

type recordingSink struct {
	lines []string
}

func (r *recordingSink) WriteLine(line string) error {
	r.lines = append(r.lines, line)
	return nil
}

func TestWriteWinningCombinationsOrdersRows(t *testing.T) {
	rows := []simulate.ComboRow{
		{Symbol: 2, Length: 3, Count: 5, WinSum: decimal.NewFromInt(50)},
		{Symbol: 1, Length: 5, Count: 2, WinSum: decimal.NewFromInt(20)},
	}
	rec := &recordingSink{}
	if err := WriteWinningCombinations(rec, rows); err != nil {
		t.Fatal(err)
	}
	if len(rec.lines) != 4 {
		t.Fatalf("wrote %d lines, want 4 (header + rule + 2 rows)", len(rec.lines))
	}
	if !strings.Contains(rec.lines[2], "2") || !strings.Contains(rec.lines[2], "3") {
		t.Fatalf("row 0 = %q, want symbol=2 length=3", rec.lines[2])
	}
}
