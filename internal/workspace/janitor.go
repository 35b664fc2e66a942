// Package workspace keeps the checkout directory healthy. Clones are
// removed after each request, but crashes and kills can leave orphaned
// checkouts behind; the Janitor sweeps those on a schedule.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
)

// checkoutPrefix matches the directories created by the git client.
const checkoutPrefix = "repo-"

// Janitor periodically removes stale checkout directories.
type Janitor struct {
	scheduler gocron.Scheduler
	dir       string
	maxAge    time.Duration
	now       func() time.Time
}

// NewJanitor creates a janitor sweeping dir for checkouts older than maxAge.
func NewJanitor(dir string, maxAge time.Duration) (*Janitor, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	return &Janitor{
		scheduler: s,
		dir:       dir,
		maxAge:    maxAge,
		now:       time.Now,
	}, nil
}

// Start schedules the sweep at half the max-age interval and runs the
// scheduler. Safe on nil.
func (j *Janitor) Start(ctx context.Context) error {
	if j == nil {
		return nil
	}
	interval := j.maxAge / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	_, err := j.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(j.sweep),
		gocron.WithName("workspace-sweep"),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule workspace sweep: %w", err)
	}
	slog.Info("Starting workspace janitor",
		logfields.Path(j.dir),
		slog.Duration("max_age", j.maxAge),
		slog.Duration("interval", interval))
	j.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down. Safe on nil.
func (j *Janitor) Stop() error {
	if j == nil {
		return nil
	}
	slog.Info("Stopping workspace janitor")
	return j.scheduler.Shutdown()
}

// sweep removes checkout directories older than maxAge. Individual removal
// failures are logged and skipped so one bad entry never blocks the rest.
func (j *Janitor) sweep() {
	removed, err := j.SweepOnce()
	if err != nil {
		slog.Warn("Workspace sweep failed", logfields.Error(err))
		return
	}
	if removed > 0 {
		slog.Info("Workspace sweep removed stale checkouts", slog.Int("removed", removed))
	}
}

// SweepOnce scans the workspace once and returns how many stale checkouts
// were removed.
func (j *Janitor) SweepOnce() (int, error) {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read workspace dir: %w", err)
	}

	cutoff := j.now().Add(-j.maxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), checkoutPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			slog.Debug("Skipping unreadable workspace entry",
				logfields.Path(entry.Name()),
				logfields.Error(err))
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(j.dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			slog.Warn("Failed to remove stale checkout",
				logfields.Path(path),
				logfields.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}
