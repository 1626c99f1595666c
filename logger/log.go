package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Init initializes the global logger. Call once at startup.
func Init() {
	var err error
	if os.Getenv("ENV") == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
}

// Close flushes buffered entries; call before process exit.
func Close() {
	if err := Logger.Sync(); err != nil {
		log.Printf("failed to flush log entries: %v", err)
	}
}

func Info(msg string, fields ...zapcore.Field)  { Logger.Info(msg, fields...) }
func Warn(msg string, fields ...zapcore.Field)  { Logger.Warn(msg, fields...) }
func Error(msg string, fields ...zapcore.Field) { Logger.Error(msg, fields...) }
func Fatal(msg string, fields ...zapcore.Field) { Logger.Fatal(msg, fields...) }
