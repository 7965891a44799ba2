package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink is a rotating-file Sink backed by go.uber.org/zap for
// encoding and gopkg.in/natefinch/lumberjack.v2 for rotation — zap
// has no rotation of its own, so pairing it with a lumberjack
// WriteSyncer is the standard way the ecosystem combines the two.
// Each WriteLine call is one zap Info entry with the raw line as the
// message and no structured fields, so the file reads as plain
// progress text rather than JSON.
type FileSink struct {
	logger *zap.Logger
}

// FileSinkOptions configures the backing lumberjack.Logger.
type FileSinkOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewFileSink builds a FileSink writing to opts.Path with rotation.
func NewFileSink(opts FileSinkOptions) *FileSink {
	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
		EncodeLevel: zapcore.CapitalLevelEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(rotator), zap.InfoLevel)
	return &FileSink{logger: zap.New(core)}
}

func (f *FileSink) WriteLine(line string) error {
	f.logger.Info(line)
	return nil
}

// Close flushes any buffered log entries.
func (f *FileSink) Close() error {
	return f.logger.Sync()
}
