package sink

import (
	"bufio"
	"io"
	"sync"
)

// WriterSink adapts any io.Writer (typically os.Stdout) into a Sink,
// following the teacher's benchmark idiom of a single reused
// strings.Builder/writer rather than allocating per line. Writes are
// serialized: the GA loop is expected to report from one goroutine at
// a time, but the mutex makes concurrent use safe regardless.
type WriterSink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// NewWriterSink wraps w in a buffered, line-flushing Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	return s.w.Flush()
}
