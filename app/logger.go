package app

import (
	"io"
	"os"
	"time"

	"github.com/biosecret/go-tasks/config"
	"github.com/rs/zerolog"
)

// NewLogger tạo logger theo môi trường: local in ra console, dev/prod ghi JSON
func NewLogger(env string) zerolog.Logger {
	zerolog.TimestampFieldName = "timestamp"

	level := zerolog.InfoLevel
	w := io.Writer(os.Stdout)
	switch env {
	case config.EnvLocal:
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	case config.EnvDev:
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("env", env).
		Logger()
}
