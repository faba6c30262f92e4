// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool.
//
// Timed measurements never run on the pool: the harness is single-threaded
// so timings are not disturbed by sibling work. The pool serves the
// correctness sweep, where every (size, shape) task sorts its own copies
// with its own merge buffers and nothing is shared between tasks.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Run(ctx, len(tasks), func(ctx context.Context, i int) error {
//	    return check(tasks[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gravitational/trace"
)

// Pool is a fixed set of goroutines fed through a channel. Workers start
// in New and live until Close, so one pool serves any number of calls.
type Pool struct {
	numWorkers int
	jobs       chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

// job is one worker's share of a call; done is released when it returns.
type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines, or GOMAXPROCS when
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan job, numWorkers*2),
	}
	for range numWorkers {
		go p.serve()
	}
	return p
}

func (p *Pool) serve() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued jobs finish. It is idempotent. A
// closed pool runs later calls on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// ParallelForAtomic calls fn once for every index in [0, n). Workers claim
// indices from a shared counter, so tasks of uneven cost (n=500 next to
// n=100000) balance out. It returns when every call has returned.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.claim(n, func(i int) bool {
		fn(i)
		return true
	})
}

// claim hands indices of [0, n) to fn until they run out or fn returns
// false. After a false return no worker claims another index; calls
// already in flight finish. It returns the number of indices claimed.
func (p *Pool) claim(n int, fn func(i int) bool) int {
	if n <= 0 {
		return 0
	}

	var (
		next    atomic.Int64
		stopped atomic.Bool
		claimed atomic.Int64
	)
	loop := func() {
		for !stopped.Load() {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			claimed.Add(1)
			if !fn(i) {
				stopped.Store(true)
				return
			}
		}
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		loop()
		return int(claimed.Load())
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobs <- job{run: loop, done: &wg}
	}
	wg.Wait()
	return int(claimed.Load())
}

// Run calls fn for every index in [0, n) on the pool and returns the
// aggregate of all task errors, or nil. Once ctx is done workers stop
// claiming tasks, and ctx.Err() joins the result if any task was left
// unstarted.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	var (
		mu   sync.Mutex
		errs []error
		ran  atomic.Int64
	)
	p.claim(n, func(i int) bool {
		if ctx.Err() != nil {
			return false
		}
		ran.Add(1)
		if err := fn(ctx, i); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
		return ctx.Err() == nil
	})
	if int(ran.Load()) < n {
		errs = append(errs, ctx.Err())
	}
	return trace.NewAggregate(errs...)
}
