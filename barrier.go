// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import (
	"errors"
	"sync"
)

var errBrokenBarrier = errors.New("gjinverse: broken barrier")

// barrier is a reusable rendezvous for a fixed number of parties.
//
// Once broken, every waiting and future await returns errBrokenBarrier.
// Arrival happens before return of every await of the same round,
// which is what publishes a step's row writes to the next step.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	round   uint64
	broken  bool
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *barrier) await() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.broken {
		return errBrokenBarrier
	}
	round := b.round
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.round++
		b.cond.Broadcast()
		return nil
	}
	for round == b.round && !b.broken {
		b.cond.Wait()
	}
	if round == b.round {
		return errBrokenBarrier
	}
	return nil
}

// breakAll releases every waiting party.
func (b *barrier) breakAll() {
	b.mu.Lock()
	b.broken = true
	b.mu.Unlock()
	b.cond.Broadcast()
}
