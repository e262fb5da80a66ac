package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger writes to stdout and to a rotated <app>.log under LogPath.
// Debug switches to the console encoder and debug level.
func InitLogger(config AppConfig) (*zap.Logger, error) {
	level := zap.InfoLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	if config.Debug {
		level = zap.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var encoder zapcore.Encoder
	if config.Debug {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	if config.LogPath != "" {
		if err := os.MkdirAll(config.LogPath, 0o755); err != nil {
			return nil, err
		}
		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(config.LogPath, config.Name+".log"),
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotated), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).
		With(zap.String("app", config.Name)), nil
}
