package scheduler

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	Submit(ctx context.Context, raffleID string, task Task) error
	Close()
}

type Task func() error

// WorkerPool bounds how many draws run at once so a backlog of overdue
// raffles cannot exhaust database connections.
type WorkerPool struct {
	jobs chan job
	wg   sync.WaitGroup
	once sync.Once
}

type job struct {
	raffleID string
	task     Task
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{jobs: make(chan job, size)}
	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for j := range wp.jobs {
		if err := j.task(); err != nil {
			zap.L().Error("Scheduled draw failed", zap.String("raffleID", j.raffleID), zap.Error(err))
		}
	}
}

func (wp *WorkerPool) Submit(ctx context.Context, raffleID string, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.jobs <- job{raffleID: raffleID, task: task}:
		return nil
	}
}

// Close stops accepting jobs and waits for in-flight draws to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.jobs)
	})
	wp.wg.Wait()
}
