package cleanup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/inframe/campus-portal/internal/storage"
)

// Pruner periodically removes form submissions older than the retention
// window
type Pruner struct {
	repo      storage.Repository
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewPruner creates a new retention worker
func NewPruner(repo storage.Repository, interval, retention time.Duration) *Pruner {
	if interval <= 0 {
		interval = time.Hour
	}

	return &Pruner{
		repo:      repo,
		interval:  interval,
		retention: retention,
		now:       time.Now,
	}
}

// Start begins the worker in a goroutine
func (p *Pruner) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

// Wait blocks until a started worker has stopped
func (p *Pruner) Wait() {
	p.wg.Wait()
}

func (p *Pruner) run(ctx context.Context) {
	slog.Info("submission pruner started", "interval", p.interval, "retention", p.retention)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Run immediately on start
	p.Prune(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("submission pruner stopped")
			return
		case <-ticker.C:
			p.Prune(ctx)
		}
	}
}

// Prune deletes submissions older than the retention window once
func (p *Pruner) Prune(ctx context.Context) int64 {
	cutoff := p.now().Add(-p.retention)

	n, err := p.repo.DeleteSubmissionsBefore(ctx, cutoff)
	if err != nil {
		slog.Error("failed to prune submissions", "error", err, "cutoff", cutoff)
		return 0
	}

	if n > 0 {
		slog.Info("pruned expired submissions", "count", n, "cutoff", cutoff)
	} else {
		slog.Debug("no expired submissions found")
	}
	return n
}
