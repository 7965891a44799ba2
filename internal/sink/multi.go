package sink

// MultiSink fans one line out to several sinks, in order, stopping at
// the first error. Used by the CLI host to stream progress to stdout
// and, optionally, a rotating log file at the same time.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink builds a MultiSink over sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) WriteLine(line string) error {
	for _, s := range m.sinks {
		if err := s.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}
