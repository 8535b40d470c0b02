package usecase

import (
	"context"
	"sync"
	"time"
)

// ResendCountdown drives the resend-button cooldown after an OTP issuance.
// Starting a countdown cancels any running one; Cancel is safe to call at
// any time, including when nothing is running.
type ResendCountdown struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewResendCountdown creates an idle countdown
func NewResendCountdown() *ResendCountdown {
	return &ResendCountdown{}
}

// Start begins a countdown of the given number of seconds. tick is invoked
// once per second with the remaining count, and done exactly once when the
// countdown reaches zero. Neither callback fires after Cancel.
func (c *ResendCountdown) Start(seconds int, tick func(remaining int), done func()) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		remaining := seconds
		if tick != nil {
			tick(remaining)
		}
		for remaining > 0 {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				remaining--
				if tick != nil {
					tick(remaining)
				}
			}
		}
		if done != nil {
			done()
		}
	}()
}

// Cancel stops a running countdown
func (c *ResendCountdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
