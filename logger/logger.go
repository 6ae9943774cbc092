package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"sync"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	ModeQuiet       = "quiet"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// InitLogger builds the process logger. Production logs JSON at info level,
// development logs colored console output at debug level and quiet only
// reports errors. Later calls are no-ops.
func InitLogger(mode string) error {
	var err error

	once.Do(func() {
		var config zap.Config
		switch mode {
		case ModeProduction:
			config = zap.NewProductionConfig()
		case ModeQuiet:
			config = zap.NewProductionConfig()
			config.Encoding = "console"
			config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
			config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		default:
			config = zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.OutputPaths = []string{"stderr"}
		logger, err = config.Build()
	})

	return err
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		panic("Logger not initialized. Call InitLogger first.")
	}
	return logger
}

// Named returns a child of the global logger, or a no-op logger if InitLogger
// was never called.
func Named(name string) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(name)
}

// Sync flushes any buffered log entries (should be called before program exit)
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func Debug(message string, fields ...zap.Field) {
	GetLogger().Debug(message, fields...)
}

func Info(message string, fields ...zap.Field) {
	GetLogger().Info(message, fields...)
}

// Warn logs a warning message with optional fields
func Warn(message string, fields ...zap.Field) {
	GetLogger().Warn(message, fields...)
}

// Error logs an error message with optional fields
func Error(message string, fields ...zap.Field) {
	GetLogger().Error(message, fields...)
}
