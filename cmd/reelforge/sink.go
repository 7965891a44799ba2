package main

import (
	"os"

	"github.com/yola1107/reelforge/internal/sink"
)

// provideSink is a wire provider building the CLI's output sink:
// always stdout, plus a rotating log file when logPath is non-empty.
// The cleanup func flushes the file sink; wire wires it into the
// caller's defer chain.
func provideSink(logPath string) (sink.Sink, func(), error) {
	stdout := sink.NewWriterSink(os.Stdout)
	if logPath == "" {
		return stdout, func() {}, nil
	}
	file := sink.NewFileSink(sink.FileSinkOptions{
		Path:       logPath,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
	})
	return sink.NewMultiSink(stdout, file), func() { _ = file.Close() }, nil
}
