package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/lucasv/prepdeck/internal/logger"
)

// Countdown is a cancellable repeating timer with an explicit start/stop
// handle. The controller keeps one running for the life of the process to
// drive Tick across sessions; Stop is for shutdown.
type Countdown struct {
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewCountdown creates a Countdown firing at the given interval.
func NewCountdown(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{
		interval: interval,
		log:      logger.Default().WithPrefix("countdown"),
	}
}

// Start begins invoking fn once per interval until Stop is called or ctx is
// cancelled. A previous run, if any, is stopped first.
func (c *Countdown) Start(ctx context.Context, fn func(context.Context)) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	c.log.Debug("countdown started, interval=%v", c.interval)
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				c.log.Debug("countdown stopped")
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	}()
}

// Stop signals the timer goroutine to exit. Idempotent. A tick already in
// flight may still run; callers guard side effects behind their own state.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Running reports whether the countdown has been started and not stopped.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}
