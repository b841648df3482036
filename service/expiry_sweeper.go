package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"mypresence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	DefaultExpiryAge       = 2000 * time.Millisecond
	DefaultCleanupInterval = 3000 * time.Millisecond
)

// ExpirySweeper periodically removes entries whose last heartbeat is older than maxAge.
// An entry is removed by the first tick at or after the moment it expires, so removal
// latency is at most maxAge + interval.
//
// At most one sweep runs at a time: a tick that fires while a sweep is in progress is
// skipped. Stop halts future ticks; a sweep already running finishes on its own.
type ExpirySweeper struct {
	remover  interfaces.ExpiredRemover
	maxAge   time.Duration
	interval time.Duration
	metrics  interfaces.SweepMetrics
	logger   log.Logger

	running  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewExpirySweeper creates a sweeper and starts its ticker; the first sweep happens one interval
// after construction. Panics on nil remover, metrics or logger, or a non-positive interval.
//
// Called from cmd/main with the presence store as remover.
func NewExpirySweeper(
	remover interfaces.ExpiredRemover,
	maxAge time.Duration,
	interval time.Duration,
	metrics interfaces.SweepMetrics,
	logger log.Logger,
) *ExpirySweeper {
	if interval <= 0 {
		panic("service.expiry_sweeper.go: interval must be positive")
	}
	s := &ExpirySweeper{
		remover:  NilPanic(remover, "service.expiry_sweeper.go: remover is required"),
		maxAge:   maxAge,
		interval: interval,
		metrics:  NilPanic(metrics, "service.expiry_sweeper.go: metrics is required"),
		logger:   log.With(NilPanic(logger, "service.expiry_sweeper.go: logger is required"), "component", "ExpirySweeper"),
		stopCh:   make(chan struct{}),
	}
	go s.loop()
	return s
}

// Stop halts future ticks. Idempotent. It neither waits for nor cancels a running sweep.
func (s *ExpirySweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		level.Info(s.logger).Log("msg", "Expiry sweeper stopped")
	})
}

func (s *ExpirySweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			// a pending tick must not start a sweep after Stop
			select {
			case <-s.stopCh:
				return
			default:
			}
			s.tick()
		}
	}
}

func (s *ExpirySweeper) tick() {
	if !s.running.CompareAndSwap(false, true) {
		s.metrics.SweepSkipped()
		level.Warn(s.logger).Log("msg", "Previous sweep still running, tick skipped")
		return
	}
	// in-flight store calls are never cancelled
	go func() {
		defer s.running.Store(false)
		s.sweep(context.Background())
	}()
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	start := time.Now()
	removed, err := s.remover.RemoveExpired(ctx, s.maxAge)
	if err != nil {
		s.metrics.SweepFailed()
		level.Error(s.logger).Log("msg", "Expiry sweep failed", "err", err)
		return
	}

	elapsed := time.Since(start)
	s.metrics.SweepCompleted(removed, elapsed)
	logger := level.Debug(s.logger)
	if removed > 0 {
		logger = level.Info(s.logger)
	}
	logger.Log("msg", "Expiry sweep completed", "removed", removed, "duration", elapsed)
}
