package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_SubmitAndClose(t *testing.T) {
	wp := NewWorkerPool(3)

	var done int32
	for i := 0; i < 10; i++ {
		err := wp.Submit(context.Background(), "raffle-1", func() error {
			atomic.AddInt32(&done, 1)
			return nil
		})
		assert.NoError(t, err)
	}

	wp.Close()
	assert.Equal(t, int32(10), atomic.LoadInt32(&done))
}

func TestWorkerPool_TaskErrorDoesNotStopWorkers(t *testing.T) {
	wp := NewWorkerPool(1)

	var done int32
	assert.NoError(t, wp.Submit(context.Background(), "raffle-1", func() error {
		return errors.New("draw failed")
	}))
	assert.NoError(t, wp.Submit(context.Background(), "raffle-2", func() error {
		atomic.AddInt32(&done, 1)
		return nil
	}))

	wp.Close()
	assert.Equal(t, int32(1), atomic.LoadInt32(&done))
}

func TestWorkerPool_SubmitCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	assert.NoError(t, wp.Submit(context.Background(), "raffle-1", func() error {
		<-block
		return nil
	}))
	// Fill the buffered queue so the next Submit has to wait.
	assert.NoError(t, wp.Submit(context.Background(), "raffle-2", func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.Submit(ctx, "raffle-3", func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	close(block)
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	assert.NotPanics(t, func() { wp.Close() })
}
