package jobs

import (
	"context"
	"log"
	"log/slog"
	"time"
)

// Sweeper drops expired entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// DraftSweeper periodically purges expired drafts from an in-process draft
// store. Redis expires keys on its own and needs no sweeper.
type DraftSweeper struct {
	store    Sweeper
	interval time.Duration
}

// DefaultSweepInterval is used when a non-positive interval is given.
const DefaultSweepInterval = 10 * time.Minute

// NewDraftSweeper creates a new draft sweeper.
func NewDraftSweeper(store Sweeper, interval time.Duration) *DraftSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &DraftSweeper{store: store, interval: interval}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *DraftSweeper) Start(ctx context.Context) {
	log.Printf("Draft sweeper started (interval: %v)", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Draft sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *DraftSweeper) sweep() int {
	n := s.store.Sweep()
	if n > 0 {
		slog.Info("expired drafts removed", "count", n)
	}
	return n
}
