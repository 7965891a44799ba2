package sink

import (
	"fmt"
	"strings"

	"github.com/yola1107/reelforge/internal/simulate"
)

// RenderWinningCombinations formats rows as a fixed-width text table:
// one line per (symbol, length) bucket that won at least once, with a
// header and a rule line, plain-text reporting rather than a terminal
// UI widget.
func RenderWinningCombinations(rows []simulate.ComboRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-8s %-12s %s\n", "symbol", "length", "count", "winSum")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 40))
	for _, row := range rows {
		fmt.Fprintf(&b, "%-8d %-8d %-12d %s\n", row.Symbol, row.Length, row.Count, row.WinSum.String())
	}
	return b.String()
}

// WriteWinningCombinations renders rows and writes each line to s.
func WriteWinningCombinations(s Sink, rows []simulate.ComboRow) error {
	table := RenderWinningCombinations(rows)
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		if err := s.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}
