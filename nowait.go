// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// NoWait runs the elimination as a graph of (row, step) tasks without
// any global barrier. A task starts as soon as the tasks it depends on
// have signaled it:
//
//	pivot (k, k):   row k at step k-1.
//	update (r, k):  row r at step k-1, pivot (k, k).
//	(k, k+1):       pivot (k, k), all n-1 updates reading row k at step k.
//
// Every row sees its steps in the same order as in Serial, so the
// result is bit-identical.
type NoWait struct {
	g       *gmu
	threads int
	log     logrus.FieldLogger
}

// NewNoWait returns a NoWait engine with cfg.Threads workers
// (runtime.NumCPU() if cfg.Threads <= 0).
func NewNoWait(cfg Config) *NoWait {
	t := cfg.Threads
	if t <= 0 {
		t = runtime.NumCPU()
	}
	return &NoWait{g: cfg.gmu(), threads: t, log: cfg.logger()}
}

func (w *NoWait) Name() string { return "NoWaitInverse" }

func (w *NoWait) Threads() int { return w.threads }

// task is step `step` of row `row`.
type task struct {
	row, step int
	pending   atomic.Int32 // Signals still missing.
	base      *task        // Pivot row's task of the next step.
	next      *task        // This row's task of the next step.
	gen       []*task      // All tasks of this step, indexed by row.
}

// signal reports whether t became ready.
func (t *task) signal() bool {
	return t.pending.Add(-1) == 0
}

// nowaitRun is the shared state of one NoWait.Invert.
type nowaitRun struct {
	e         *elim
	queue     chan *task
	done      chan struct{}
	finished  sync.Once
	remaining atomic.Int64 // Rows whose last step hasn't run.
	err       atomic.Pointer[error]
}

func (nr *nowaitRun) finish() {
	nr.finished.Do(func() { close(nr.done) })
}

// fail records the first error and stops the run.
func (nr *nowaitRun) fail(err error) {
	nr.err.CompareAndSwap(nil, &err)
	nr.finish()
}

func (nr *nowaitRun) stopped() bool {
	select {
	case <-nr.done:
		return true
	default:
		return false
	}
}

// Invert inverts m in place.
func (w *NoWait) Invert(ctx context.Context, m *Matrix) (err error) {
	done := logRun(w.log, w, m.N())
	defer func() { done(err) }()

	if err = ctx.Err(); err != nil {
		return interrupted(err)
	}
	n := m.N()
	if n == 0 {
		return nil
	}

	nr := &nowaitRun{
		e: newElim(w.g, m),
		// At most one task per row is ready at any time.
		queue: make(chan *task, n),
		done:  make(chan struct{}),
	}
	nr.remaining.Store(int64(n))

	first := make([]*task, n)
	for i := range first {
		first[i] = &task{row: i, gen: first}
		first[i].pending.Store(1)
	}
	nr.queue <- first[0]

	var g errgroup.Group
	for i := 0; i < w.threads; i++ {
		g.Go(func() error {
			nr.work(ctx)
			return nil
		})
	}
	_ = g.Wait()

	if perr := nr.err.Load(); perr != nil {
		return *perr
	}
	nr.e.permute()
	return nil
}

func (nr *nowaitRun) work(ctx context.Context) {
	for {
		select {
		case <-nr.done:
			return
		case <-ctx.Done():
			nr.fail(interrupted(ctx.Err()))
			return
		case t := <-nr.queue:
			// Keep running what this worker made ready itself,
			// the rest is in the queue for the others.
			for t != nil && !nr.stopped() {
				if err := ctx.Err(); err != nil {
					nr.fail(interrupted(err))
					return
				}
				t = nr.run(t)
			}
		}
	}
}

func (nr *nowaitRun) run(t *task) (cont *task) {
	defer func() {
		if r := recover(); r != nil {
			nr.fail(recovered(r))
			cont = nil
		}
	}()
	return nr.exec(t)
}

// exec runs t, signals its successors and returns one of those that
// became ready (others are queued).
func (nr *nowaitRun) exec(t *task) *task {
	var cont *task
	ready := func(s *task) {
		if !s.signal() {
			return
		}
		if cont == nil {
			cont = s
		} else {
			nr.queue <- s
		}
	}

	e := nr.e
	last := t.step+1 == e.n
	if t.step == t.row {
		if err := e.pivot(t.row); err != nil {
			nr.fail(err)
			return nil
		}
		base := t
		if !last {
			base = nr.nextGen(t)
		}
		for _, s := range t.gen {
			if s != t {
				s.base = base
				ready(s)
			}
		}
	} else {
		e.update(t.row, t.step)
		if !last {
			ready(t.base)
			ready(t.next)
		}
	}

	if last && nr.remaining.Add(-1) == 0 {
		nr.finish()
	}
	return cont
}

// nextGen creates the tasks of step pivot.step+1 and returns
// the pivot row's one.
func (nr *nowaitRun) nextGen(pivot *task) *task {
	n := nr.e.n
	next := make([]*task, n)
	for i, prev := range pivot.gen {
		t := &task{row: i, step: prev.step + 1, gen: next}
		switch {
		case prev.step == i:
			t.pending.Store(int32(n))
		case t.step == i:
			t.pending.Store(1)
		default:
			t.pending.Store(2)
		}
		next[i] = t
		prev.next = t
	}
	return next[pivot.row]
}
