// Package watcher observes the upload directory and hands settled files to
// the processing pipeline, one at a time.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler processes one settled file. Errors are logged; they never stop the
// watch loop.
type Handler func(path string) error

// Clock abstracts time for deterministic settle tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Stater abstracts file metadata lookups for deterministic settle tests.
type Stater interface {
	Stat(path string) (os.FileInfo, error)
}

type osStater struct{}

func (osStater) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Sentinel settle outcomes.
var (
	errVanished = errors.New("file vanished before settling")
	errUnstable = errors.New("file did not settle")
)

// Config configures a Watcher.
type Config struct {
	// Dir is the directory to observe. Must exist at startup.
	Dir string
	// Extensions lists accepted file extensions (lowercase, with dot).
	Extensions []string
	// SettleInterval is the initial wait after a file appears.
	SettleInterval time.Duration
	// PollInterval is the wait between stability checks.
	PollInterval time.Duration
	// SettleAttempts bounds the stability checks per file.
	SettleAttempts int
	// Clock defaults to the system clock.
	Clock Clock
	// Stat defaults to os.Stat.
	Stat Stater
	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// Watcher observes one directory and settles files before processing.
type Watcher struct {
	cfg     Config
	exts    map[string]bool
	handler Handler
	log     *slog.Logger
}

// New creates a Watcher. Zero-valued optional fields get defaults.
func New(cfg Config, handler Handler) *Watcher {
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	if cfg.Stat == nil {
		cfg.Stat = osStater{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".xlsx", ".xlsm", ".xls"}
	}
	if cfg.SettleInterval <= 0 {
		cfg.SettleInterval = time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.SettleAttempts <= 0 {
		cfg.SettleAttempts = 20
	}

	exts := make(map[string]bool, len(cfg.Extensions))
	for _, e := range cfg.Extensions {
		exts[strings.ToLower(e)] = true
	}
	return &Watcher{cfg: cfg, exts: exts, handler: handler, log: cfg.Logger}
}

// Run watches the directory until the context is cancelled. A missing watch
// directory is fatal; per-file failures are logged and the loop continues.
// Files already present at startup are processed first.
func (w *Watcher) Run(ctx context.Context) error {
	info, err := os.Stat(w.cfg.Dir)
	if err != nil {
		return fmt.Errorf("watch dir %s: %w", w.cfg.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch dir %s: not a directory", w.cfg.Dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.cfg.Dir, err)
	}

	w.log.Info("watching for workbooks", "dir", w.cfg.Dir)
	w.scanExisting()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			w.Observe(event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

// scanExisting processes files already sitting in the directory at startup.
func (w *Watcher) scanExisting() {
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		w.log.Error("initial scan failed", "dir", w.cfg.Dir, "error", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		w.Observe(filepath.Join(w.cfg.Dir, entry.Name()))
	}
}

// Observe runs one file through the settle state machine and, once ready,
// the handler. Processing is synchronous: one file start-to-finish before
// the next event is looked at.
func (w *Watcher) Observe(path string) {
	if !w.exts[strings.ToLower(filepath.Ext(path))] {
		return
	}

	state := StateDetected
	w.log.Info("file detected", "file", path, "state", state)

	state = StateSettling
	w.log.Debug("settling", "file", path, "state", state)
	if err := w.settle(path); err != nil {
		if errors.Is(err, errVanished) {
			w.log.Debug("file vanished while settling", "file", path)
			return
		}
		state = StateFailed
		w.log.Error("file never settled", "file", path, "state", state)
		return
	}
	state = StateReady
	w.log.Debug("file stable", "file", path, "state", state)

	state = StateProcessing
	if err := w.handler(path); err != nil {
		state = StateFailed
		w.log.Error("processing failed", "file", path, "state", state, "error", err)
		return
	}
	state = StateDone
	w.log.Info("processing complete", "file", path, "state", state)
}

// settle waits the settle interval, then polls size and mtime until they are
// unchanged across one poll interval. Vanished files report errVanished;
// files still changing after SettleAttempts polls report errUnstable.
func (w *Watcher) settle(path string) error {
	w.cfg.Clock.Sleep(w.cfg.SettleInterval)

	prev, err := w.cfg.Stat.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errVanished
		}
		return err
	}

	for i := 0; i < w.cfg.SettleAttempts; i++ {
		w.cfg.Clock.Sleep(w.cfg.PollInterval)
		cur, err := w.cfg.Stat.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errVanished
			}
			return err
		}
		if cur.Size() == prev.Size() && cur.ModTime().Equal(prev.ModTime()) {
			return nil
		}
		prev = cur
	}
	return errUnstable
}
