// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Parallel runs every elimination step on a fixed pool of workers
// which claim row updates from a shared counter and meet at a
// barrier between steps.
type Parallel struct {
	g       *gmu
	threads int
	log     logrus.FieldLogger
}

// NewParallel returns a Parallel engine with cfg.Threads workers
// (runtime.NumCPU() if cfg.Threads <= 0).
func NewParallel(cfg Config) *Parallel {
	t := cfg.Threads
	if t <= 0 {
		t = runtime.NumCPU()
	}
	return &Parallel{g: cfg.gmu(), threads: t, log: cfg.logger()}
}

func (p *Parallel) Name() string { return "ParallelInverse" }

func (p *Parallel) Threads() int { return p.threads }

// parallelRun is the shared state of one Parallel.Invert.
type parallelRun struct {
	e     *elim
	bar   *barrier
	count atomic.Int64
	err   atomic.Pointer[error]
}

// fail records the first error and releases the barrier.
func (pr *parallelRun) fail(err error) {
	pr.err.CompareAndSwap(nil, &err)
	pr.bar.breakAll()
}

func (pr *parallelRun) failed() bool { return pr.err.Load() != nil }

// Invert inverts m in place.
func (p *Parallel) Invert(ctx context.Context, m *Matrix) (err error) {
	done := logRun(p.log, p, m.N())
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return interrupted(err)
	}
	n := m.N()
	if n == 0 {
		return nil
	}

	// With more workers than rows, the others could claim a whole step
	// while one worker is still in the previous one and it would miss
	// that step's barrier.
	threads := p.threads
	if threads > n {
		threads = n
	}

	pr := &parallelRun{e: newElim(p.g, m), bar: newBarrier(threads)}
	var g errgroup.Group
	for id := 0; id < threads; id++ {
		g.Go(func() error {
			pr.work(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	if perr := pr.err.Load(); perr != nil {
		return *perr
	}
	pr.e.permute()
	return nil
}

func (pr *parallelRun) work(ctx context.Context, id int) {
	defer func() {
		if r := recover(); r != nil {
			pr.fail(recovered(r))
		}
	}()

	e := pr.e
	n := int64(e.n)
	if id == 0 {
		if err := e.pivot(0); err != nil {
			pr.fail(err)
			return
		}
	}

	step := -1
	for !pr.failed() {
		if err := ctx.Err(); err != nil {
			pr.fail(interrupted(err))
			return
		}
		task := pr.count.Add(1) - 1
		k, l := int(task/n), int(task%n)
		if k != step {
			if k == e.n {
				return
			}
			if pr.bar.await() != nil {
				return // Someone failed, the error is recorded.
			}
			step = k
		}

		// Rows are visited from k+1 cyclically, so the next
		// step's pivot row is the first one updated.
		r := (k + l + 1) % e.n
		if r == k {
			continue
		}
		e.update(r, k)
		if r == k+1 {
			if err := e.pivot(r); err != nil {
				pr.fail(err)
				return
			}
		}
	}
}
