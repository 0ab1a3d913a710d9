// Package logging sets up the per-run log file and console logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Setup creates a logger writing to stderr and to a per-run file under
// logsDir named etl_<timestamp>.log. The returned closer owns the file.
func Setup(logsDir string, verbose bool) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create logs dir: %w", err)
	}

	name := fmt.Sprintf("etl_%s.log", time.Now().Format("20060102_150405"))
	f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(io.MultiWriter(os.Stderr, f), &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler), f, nil
}
