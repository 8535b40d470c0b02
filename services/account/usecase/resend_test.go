package usecase

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResendCountdown_CompletesAndTicks(t *testing.T) {
	countdown := NewResendCountdown()

	var ticks int32
	doneCh := make(chan struct{})

	countdown.Start(2, func(remaining int) {
		atomic.AddInt32(&ticks, 1)
	}, func() {
		close(doneCh)
	})

	select {
	case <-doneCh:
	case <-time.After(5 * time.Second):
		t.Fatal("countdown did not complete")
	}

	// Initial tick plus one per elapsed second
	assert.GreaterOrEqual(t, atomic.LoadInt32(&ticks), int32(3))
}

func TestResendCountdown_CancelStopsCallbacks(t *testing.T) {
	countdown := NewResendCountdown()

	var done int32
	countdown.Start(3, nil, func() {
		atomic.AddInt32(&done, 1)
	})
	countdown.Cancel()

	time.Sleep(4 * time.Second)
	assert.Zero(t, atomic.LoadInt32(&done))
}

func TestResendCountdown_RestartCancelsPrevious(t *testing.T) {
	countdown := NewResendCountdown()

	var firstDone, secondDone int32
	countdown.Start(10, nil, func() {
		atomic.AddInt32(&firstDone, 1)
	})
	countdown.Start(1, nil, func() {
		atomic.AddInt32(&secondDone, 1)
	})

	time.Sleep(2500 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&firstDone))
	assert.Equal(t, int32(1), atomic.LoadInt32(&secondDone))
}

func TestResendCountdown_CancelWhenIdle(t *testing.T) {
	countdown := NewResendCountdown()
	// Must not panic
	countdown.Cancel()
	countdown.Cancel()
}
