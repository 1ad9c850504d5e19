package main

import (
	"strings"

	"go.uber.org/zap"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
)

// zapLogger implements calculation.Logger on a sugared zap logger
type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ calculation.Logger = (*zapLogger)(nil)

// newZapLogger builds a production (JSON) or development (console) logger
func newZapLogger(mode string, debug bool) (*zapLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: logger.Sugar()}, nil
}

func (l *zapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *zapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *zapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *zapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

func (l *zapLogger) Sync() {
	_ = l.sugar.Sync()
}
