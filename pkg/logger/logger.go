package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init sets up the global logger. Development gets human-readable text at
// debug level, everything else structured JSON at info level.
func Init(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	log = slog.New(handler)
}

func get() *slog.Logger {
	if log == nil {
		Init("development")
	}

	return log
}

func Debug(msg string, args ...interface{}) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...interface{}) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...interface{}) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...interface{}) {
	get().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...interface{}) {
	get().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize accepts both key-value pairs and bare errors, so call sites can
// write logger.Error("failed to fetch orders", err) as well as
// logger.Info("server starting", "address", addr).
func normalize(args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			out = append(out, "error", err)
			continue
		}

		if i+1 < len(args) {
			out = append(out, args[i], args[i+1])
			i++
			continue
		}

		out = append(out, "detail", args[i])
	}

	return out
}
