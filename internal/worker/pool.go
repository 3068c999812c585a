// Package worker runs self-play games on a bounded set of goroutines.
package worker

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Job identifies one game to play.
type Job struct {
	Index int   // Position in the batch, used to restore order
	Seed  int64 // Seed for the game's move picker
}

// Result is the outcome of one Job.
type Result struct {
	Index  int
	Record *output.Record
	Err    error
}

// PlayFunc plays a job to completion. It should return early once ctx is
// cancelled.
type PlayFunc func(ctx context.Context, job Job) Result

// Pool feeds jobs to a fixed number of workers.
type Pool struct {
	workers int
	buffer  int
	jobs    chan Job
	results chan Result
	play    PlayFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
	cancel  context.CancelFunc
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are
// ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the job and result channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool. By default it runs one worker per CPU with a
// buffer of 16.
func NewPool(play PlayFunc, opts ...Option) *Pool {
	p := &Pool{
		workers: runtime.NumCPU(),
		buffer:  16,
		play:    play,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.buffer)
	p.results = make(chan Result, p.buffer)
	return p
}

// Start launches the workers. Cancelling ctx, or calling Stop, makes the
// remaining jobs drain without being played.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.Stopped() || ctx.Err() != nil {
			continue
		}
		p.results <- p.play(ctx, job)
	}
}

// Submit queues a job, blocking while the buffer is full. It returns false
// once the pool is stopped.
func (p *Pool) Submit(job Job) bool {
	if p.Stopped() {
		return false
	}
	p.jobs <- job
	return true
}

// Stop abandons the queued jobs and cancels the ones in flight.
func (p *Pool) Stop() {
	p.stopped.Store(true)
	if p.cancel != nil {
		p.cancel()
	}
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close stops accepting jobs, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	if p.cancel != nil {
		p.cancel()
	}
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Run plays every job on a new pool and returns the results sorted by
// Index. Jobs skipped because ctx was cancelled have no result.
func Run(ctx context.Context, play PlayFunc, jobs []Job, opts ...Option) []Result {
	p := NewPool(play, opts...)
	p.Start(ctx)

	go func() {
		for _, job := range jobs {
			if !p.Submit(job) {
				break
			}
		}
		p.Close()
	}()

	results := make([]Result, 0, len(jobs))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
