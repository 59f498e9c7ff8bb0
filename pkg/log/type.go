package log

import "go.uber.org/zap"

// ZapConfig is the logger configuration.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or "debug"
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

// zapLogger implements Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}
