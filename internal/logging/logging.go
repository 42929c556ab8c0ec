// Package logging sets up the process logger. The terminal belongs to the
// UI, so log lines go to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"mapdraw/internal/config"
)

// New returns a logger configured from cfg and a closer for its output.
// If the log file cannot be opened, logging is discarded rather than
// failing startup.
func New(cfg *config.Config) (*logrus.Logger, io.Closer) {
	log := logrus.New()
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	var closer io.Closer = nopCloser{}
	out, err := openLogFile(cfg.LogFile)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(out)
		closer = out
	}
	log.WithFields(logrus.Fields{"level": level.String(), "file": cfg.LogFile}).Info("logger initialized")
	return log, closer
}

// Component returns an entry tagged with a component name.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
