// Package logger provides JSON structured logging for a generation run.
// Each run writes to its own timestamped log file so that console output
// stays clean for the interactive prompts.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Setup returns a slog.Logger emitting JSON records to w.
func Setup(w io.Writer, verbose bool) (logger *slog.Logger) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	logger = slog.New(handler)
	return logger
}

// OpenRunLog creates a timestamped log file in dir and returns a logger
// writing to it. The caller is responsible for closing the file.
func OpenRunLog(dir string, verbose bool) (logger *slog.Logger, file *os.File, err error) {
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create log directory: %s", dir)
		return logger, file, err
	}

	name := fmt.Sprintf("portfolio_forge_%s.log", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to open log file: %s", path)
		return logger, file, err
	}

	logger = Setup(file, verbose)
	return logger, file, err
}
