package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setLogger builds the zap logger for the given environment. Production logs
// JSON to stderr and, when the file logger is enabled, tees into a rotating
// lumberjack file.
func setLogger(environment string, lc LoggerConfig) (*zap.Logger, error) {
	switch environment {
	case "production":
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zap.InfoLevel)
		if lc.Enabled {
			fileCore := zapcore.NewCore(encoder, zapcore.AddSync(&lumberjack.Logger{
				Filename:   lc.Filename,
				MaxSize:    lc.MaxSize,
				MaxAge:     lc.MaxAge,
				MaxBackups: lc.MaxBackups,
				Compress:   lc.Compress,
			}), zap.InfoLevel)
			core = zapcore.NewTee(core, fileCore)
		}
		return zap.New(core), nil
	case "development":
		return zap.NewDevelopment()
	default:
		conf := zap.NewDevelopmentConfig()
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return conf.Build()
	}
}
