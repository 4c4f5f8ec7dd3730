// Package delivery defers companion replies by a pace-dependent "thinking
// time". The pending task is cancellable and bound to a generation counter:
// a reply that resolves after the conversation was reset or replaced is
// discarded instead of applied.
package delivery

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fdumary/AI-Companion/internal/companion"
)

// Reply delays per chat pace.
const (
	SlowDelay   = 2500 * time.Millisecond
	MediumDelay = 1500 * time.Millisecond
	FastDelay   = 800 * time.Millisecond
)

// PaceDelay maps a chat pace preference to its reply delay. Unknown paces get
// the medium delay.
func PaceDelay(pace companion.ChatPace) time.Duration {
	switch pace {
	case companion.PaceSlow:
		return SlowDelay
	case companion.PaceFast:
		return FastDelay
	default:
		return MediumDelay
	}
}

// Scheduler holds at most one pending delivery. Scheduling a new reply or
// resetting the conversation discards whatever was pending.
type Scheduler struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
	log   *log.Logger
}

// NewScheduler creates a Scheduler. logger may be nil.
func NewScheduler(logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{log: logger}
}

// Schedule arms the delivery timer. deliver runs on the timer goroutine after
// delay, unless Schedule or Reset was called again in the meantime.
func (s *Scheduler) Schedule(delay time.Duration, deliver func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.gen++
	gen := s.gen

	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		stale := gen != s.gen
		if !stale {
			s.timer = nil
		}
		s.mu.Unlock()
		if stale {
			s.log.Debug("discarding stale reply", "gen", gen)
			return
		}
		deliver()
	})
}

// Reset discards any pending delivery. Call when the conversation state the
// reply was computed for no longer exists.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	s.gen++
}

// Pending reports whether a delivery is currently armed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *Scheduler) cancelPendingLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
