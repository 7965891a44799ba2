// Package sink implements the line-oriented text receiver the GA loop
// and the simulation host write progress and diagnostics to, without
// knowing whether the destination is stdout, a rotating log file, or
// a test buffer.
package sink

// Sink is a line-oriented text receiver. WriteLine appends one line;
// implementations decide framing (newline, timestamp, level).
type Sink interface {
	WriteLine(line string) error
}
