package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level is shared by every logger built here so SetDebug affects loggers
// created during package init.
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// newConfig disables sampling so every copy outcome gets its own line.
func newConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	cfg.Sampling = nil

	return cfg
}

func NewLogger() *zap.SugaredLogger {
	t, err := newConfig().Build()
	if err != nil {
		panic(err)
	}

	return t.Sugar()
}

func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}
