package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// indexedJob tags a job with its submission position so results can be
// re-aligned to input order regardless of completion order
type indexedJob struct {
	index int
	job   Job
}

// Pool manages a fixed number of workers that execute jobs concurrently.
// Results are collected positionally: Wait returns them in submission order.
type Pool struct {
	workers    int
	jobQueue   chan indexedJob
	results    []Result
	next       int
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// NewPool creates a worker pool detached from any caller context.
// capacity is the number of jobs that will be submitted; Submit beyond it
// panics.
func NewPool(workers, capacity int) *Pool {
	return NewPoolWithContext(context.Background(), workers, capacity)
}

// NewPoolWithContext creates a pool whose jobs run under a context derived
// from ctx, so caller deadlines and cancellation reach every job.
func NewPoolWithContext(ctx context.Context, workers, capacity int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan indexedJob, capacity),
		results:    make([]Result, capacity),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the queue is drained or the pool is shut down
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case ij, ok := <-p.jobQueue:
			if !ok {
				return
			}
			// Each index is written by exactly one worker, so no lock
			// is needed around the results slice.
			p.results[ij.index] = ij.job.Execute(p.ctx)
		}
	}
}

// Submit queues a job for execution. Jobs are indexed in submission order.
func (p *Pool) Submit(job Job) {
	ij := indexedJob{index: p.next, job: job}
	p.next++

	select {
	case <-p.ctx.Done():
	case p.jobQueue <- ij:
	}
}

// Wait blocks until all submitted jobs complete and returns their results
// aligned to submission order. Slots for jobs never submitted are nil.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	return p.results[:p.next]
}

// Shutdown cancels in-flight work and waits for workers to exit
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
}
