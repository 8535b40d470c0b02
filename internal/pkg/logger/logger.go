package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/safinity/safinity/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the application logger, writing structured JSON to stdout
// and optionally a log file
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}

// NewZapLogger creates a new application logger
func NewZapLogger(config Config) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var cores []zapcore.Core
	cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))

	zl := &ZapLogger{filePath: config.FilePath}

	if config.FilePath != "" {
		file, err := openLogFile(config.FilePath)
		if err != nil {
			return nil, err
		}
		zl.file = file
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zl.Logger = logger
	zl.sugar = logger.Sugar()

	return zl, nil
}

// InitZapLoggerFromConfig initializes the logger from application config
func InitZapLoggerFromConfig(configs *models.Config) (*ZapLogger, error) {
	return NewZapLogger(Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// LogHTTPRequest logs one HTTP request with its outcome, using a level
// matching the status code
func (zl *ZapLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	fields := []Field{
		Int("status", statusCode),
		String("latency", latency.String()),
		Int64("latency_ms", latency.Milliseconds()),
		String("client_ip", clientIP),
		String("method", method),
		String("path", path),
		String("request_id", requestID),
	}
	if err != nil {
		fields = append(fields, Err(err))
	}

	switch {
	case statusCode >= 500:
		zl.Error("Server error", fields...)
	case statusCode >= 400:
		zl.Warn("Client error", fields...)
	default:
		zl.Info("Request processed", fields...)
	}
}
