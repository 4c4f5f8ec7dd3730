// Package cloudsync pushes profile snapshots to a remote store in the
// background. The accepted policy is debounced last-write-wins with no
// field-level merge: concurrent edits from two sessions clobber each other.
package cloudsync

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// Remote is the external store snapshots are pushed to.
type Remote interface {
	Push(ctx context.Context, userID string, snapshot []byte) error
}

// DefaultDebounce is how long after the last local change the push happens.
const DefaultDebounce = 3 * time.Second

const (
	maxPushAttempts = 3
	retryDelay      = 500 * time.Millisecond
)

// Syncer debounces snapshot uploads. Enqueue replaces any pending snapshot
// for the same user; only the latest one is ever pushed.
type Syncer struct {
	remote   Remote
	limiter  *rate.Limiter
	debounce time.Duration
	log      *log.Logger

	mu      sync.Mutex
	pending map[string][]byte
	timer   *time.Timer
}

// NewSyncer creates a Syncer with the default debounce and a push rate of one
// per second. logger may be nil.
func NewSyncer(remote Remote, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.Default()
	}
	return &Syncer{
		remote:   remote,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		debounce: DefaultDebounce,
		log:      logger,
		pending:  make(map[string][]byte),
	}
}

// SetDebounce overrides the debounce window. Call before the first Enqueue.
func (s *Syncer) SetDebounce(d time.Duration) {
	if d > 0 {
		s.debounce = d
	}
}

// Enqueue schedules a snapshot for upload, replacing whatever was queued for
// this user. The push happens once the debounce window elapses with no newer
// snapshot arriving.
func (s *Syncer) Enqueue(userID string, snapshot []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = snapshot
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

// Flush pushes all pending snapshots immediately (e.g. on shutdown).
func (s *Syncer) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	batch := s.pending
	s.pending = make(map[string][]byte)
	s.mu.Unlock()

	for userID, snapshot := range batch {
		s.push(ctx, userID, snapshot)
	}
}

func (s *Syncer) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Flush(ctx)
}

// push uploads one snapshot, retrying transient failures a few times. The
// snapshot is dropped after the last attempt: the next local change enqueues
// a fresh one anyway.
func (s *Syncer) push(ctx context.Context, userID string, snapshot []byte) {
	for attempt := 1; attempt <= maxPushAttempts; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			s.log.Warn("sync aborted", "user", userID, "err", err)
			return
		}
		err := s.remote.Push(ctx, userID, snapshot)
		if err == nil {
			s.log.Debug("snapshot pushed", "user", userID, "bytes", len(snapshot))
			return
		}
		s.log.Warn("snapshot push failed", "user", userID, "attempt", attempt, "err", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay):
		}
	}
}
