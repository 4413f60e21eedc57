package logger

import (
	"fmt"
	"log/slog"
	"os"
)

var log *slog.Logger

func Init() {
	log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)
}

func get() *slog.Logger {
	if log == nil {
		Init()
	}
	return log
}

func Info(msg string, args ...interface{}) {
	get().Info(msg, args...)
}

func Infof(format string, v ...interface{}) {
	get().Info(fmt.Sprintf(format, v...))
}

func Error(msg string, args ...interface{}) {
	get().Error(msg, args...)
}

func Errorf(format string, v ...interface{}) {
	get().Error(fmt.Sprintf(format, v...))
}

func Warn(msg string, args ...interface{}) {
	get().Warn(msg, args...)
}

func Warnf(format string, v ...interface{}) {
	get().Warn(fmt.Sprintf(format, v...))
}

func Debug(msg string, args ...interface{}) {
	get().Debug(msg, args...)
}

func Debugf(format string, v ...interface{}) {
	get().Debug(fmt.Sprintf(format, v...))
}

func Fatal(msg string) {
	get().Error(msg)
	os.Exit(1)
}

func Fatalf(format string, v ...interface{}) {
	get().Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
