package logger

import "go.uber.org/zap"

// NewProductionLogger builds the portal's zap logger: JSON output with the
// level opened up to debug so therapy-data handlers can trace reads.
func NewProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return config.Build()
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}
