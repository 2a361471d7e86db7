// SPDX-License-Identifier: MIT

// Package barrier provides a reusable rendezvous point for a fixed set of
// goroutines that advance through a sequence of phases together.
//
// Purpose:
//   - Block every participant of a phase until all of them have arrived.
//   - Release them at once and become ready for the next phase without
//     reconstruction.
//
// Notes:
//   - Every phase is identified by a generation number. A waiter captures the
//     generation on entry and sleeps until it changes, so a fast participant
//     that re-enters for the next phase can never satisfy a slow participant
//     still leaving the previous one.
package barrier

import "sync"

const panicPartiesInvalid = "barrier: New: parties must be >= 1"

// Barrier is a cyclic barrier for a fixed number of parties.
//   - parties is the number of Wait calls that complete a phase.
//   - waiting counts arrivals in the current phase (0 <= waiting < parties
//     between phases).
//   - generation increments exactly once per completed phase.
type Barrier struct {
	mu   sync.Mutex
	cond *sync.Cond

	parties    int
	waiting    int
	generation uint64
}

// New returns a Barrier expecting exactly parties participants per phase.
// A non-positive parties value is a programmer error and panics.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(parties int) *Barrier {
	if parties < 1 {
		panic(panicPartiesInvalid)
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// Parties returns the number of participants the barrier waits for.
func (b *Barrier) Parties() int { return b.parties }

// Generation returns the number of phases completed so far.
func (b *Barrier) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.generation
}

// Wait blocks the caller until all parties have called Wait for the current
// phase. The last arrival opens the next generation and wakes everyone.
//
// Implementation:
//   - Stage 1: capture the generation and register the arrival.
//   - Stage 2: the last arrival resets the counter, bumps the generation and
//     broadcasts.
//   - Stage 3: everyone else sleeps until the captured generation is stale.
//
// Complexity:
//   - Time O(1) per call plus scheduling, Space O(1).
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return
	}

	for gen == b.generation {
		b.cond.Wait()
	}
}
