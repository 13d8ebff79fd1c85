// Package reach marks every storable game state reachable from a starting
// state, using the storage bits as the visited set.
package reach

import (
	"fmt"

	"github.com/luca-patrignani/mu-rainbow/domain/rainbow"
	"github.com/luca-patrignani/mu-rainbow/storage"
)

// frame is one level of the depth-first walk: the state being expanded,
// the next move to try and the pending outcomes of the current move.
type frame struct {
	state    rainbow.State
	moves    []rainbow.Move
	move     int
	outcomes []rainbow.State
	next     int
}

// Walker runs depth-first walks over the game graph. The walk keeps its own
// frame stack, so its depth does not depend on the goroutine stack.
// A Walker is not safe for concurrent use.
type Walker struct {
	tables  *rainbow.Tables
	storage *storage.Storage
	stack   []frame

	maxDepth int
}

// NewWalker returns a walker marking states of t in s.
func NewWalker(t *rainbow.Tables, s *storage.Storage) *Walker {
	return &Walker{tables: t, storage: s}
}

// MaxDepth returns the deepest stack reached by any walk so far.
func (w *Walker) MaxDepth() int {
	return w.maxDepth
}

// Walk marks start and every storable state reachable from it that is not
// marked yet, and returns the number of states it marked.
//
// Moves are tried in cached order and the outcomes of a move in generation
// order; an outcome is entered only if it is storable and still unmarked
// when its turn comes. A non-storable start marks nothing. Walk panics if
// it is asked to enter a state that is already marked.
func (w *Walker) Walk(start rainbow.State) int {
	if !start.Storable() {
		return 0
	}
	w.enter(start)
	marked := 1

	for len(w.stack) > 0 {
		f := &w.stack[len(w.stack)-1]

		if f.next < len(f.outcomes) {
			o := f.outcomes[f.next]
			f.next++
			if o.Storable() && !w.storage.Get(o) {
				w.enter(o)
				marked++
			}
			continue
		}

		if f.move < len(f.moves) {
			m := f.moves[f.move]
			f.move++
			f.outcomes = rainbow.AppendOutcomes(f.outcomes[:0], f.state, m)
			f.next = 0
			if len(f.outcomes) == 0 {
				panic(fmt.Sprintf("reach: move %v from %+v has no outcome", m, f.state))
			}
			continue
		}

		w.stack = w.stack[:len(w.stack)-1]
	}
	return marked
}

// enter marks s and pushes its frame, reusing the outcome buffer of a
// previously popped frame at the same depth.
func (w *Walker) enter(s rainbow.State) {
	if w.storage.Get(s) {
		panic(fmt.Sprintf("reach: state %+v is already marked", s))
	}
	w.storage.Set(s, true)

	n := len(w.stack)
	if n < cap(w.stack) {
		w.stack = w.stack[:n+1]
	} else {
		w.stack = append(w.stack, frame{})
	}
	f := &w.stack[n]
	f.state = s
	f.moves = w.tables.Moves(s.Hand)
	f.move = 0
	f.outcomes = f.outcomes[:0]
	f.next = 0

	if n+1 > w.maxDepth {
		w.maxDepth = n + 1
	}
}
