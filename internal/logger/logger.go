package logger

import (
	"go.uber.org/zap"
)

// Log is the global logger initialized by Initialize.
// Until then it is a zap.NewNop() stub that emits nothing.
var Log *zap.Logger = zap.NewNop()

// Initialize builds the global logger with the given log level
func Initialize(level string) error {
	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	logger, err := loggerCfg.Build()
	if err != nil {
		return err
	}

	Log = logger

	return nil
}
