package utils

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFile is the rotated file InitLogger writes to, named after the app.
func LogFile(app AppConfig) string {
	name := strings.ToLower(strings.Join(strings.Fields(app.Name), "-"))
	if name == "" {
		name = "sendit"
	}
	return filepath.Join(app.LogPath, name+".log")
}

// InitLogger tees JSON (console encoding in debug) to stdout and a rotated log file.
// Every entry carries the app name.
func InitLogger(app AppConfig) (*zap.Logger, error) {
	if app.LogPath != "" {
		if err := os.MkdirAll(app.LogPath, 0o755); err != nil {
			return nil, err
		}
	}

	level := zap.InfoLevel
	encCfg := zap.NewProductionEncoderConfig()
	if app.Debug {
		level = zap.DebugLevel
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	var encoder zapcore.Encoder
	if app.Debug {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	rotated := &lumberjack.Logger{
		Filename:   LogFile(app),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(rotated), level),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	)

	return zap.New(core, zap.AddCaller()).With(zap.String("app", app.Name)), nil
}
