package search

import (
	"math"
	"sync"
	"time"
)

// sharedState is the single search-state object every worker of one
// search invocation mutates. The visited set and the best-solution slot
// share one lock so that check-then-update sequences on them are atomic.
type sharedState struct {
	mu        sync.Mutex
	visited   map[string]struct{}
	best      *Solution
	bestValue float64
	start     time.Time
	progress  chan Progress
}

func newSharedState(mode Mode) *sharedState {
	st := &sharedState{
		visited:  make(map[string]struct{}),
		start:    time.Now(),
		progress: make(chan Progress, progressBuffer),
	}
	if mode == ModeCost {
		st.bestValue = math.Inf(1)
	} else {
		st.bestValue = math.Inf(-1)
	}
	return st
}

// markVisited records the effect set's key if unseen and reports whether
// this caller was the first to see it. First writer wins: once a set is
// marked, no worker enqueues a node with it again, whatever the path.
func (st *sharedState) markVisited(key string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, seen := st.visited[key]; seen {
		return false
	}
	st.visited[key] = struct{}{}
	return true
}

// recordSolution replaces the best solution if the candidate value beats
// the current one: strictly lower cost in cost mode, strictly higher
// profit in profit mode.
func (st *sharedState) recordSolution(mode Mode, sol *Solution) {
	st.mu.Lock()
	defer st.mu.Unlock()
	switch mode {
	case ModeCost:
		if float64(sol.Cost) < st.bestValue {
			st.best = sol
			st.bestValue = float64(sol.Cost)
		}
	case ModeProfit:
		if sol.Profit > st.bestValue {
			st.best = sol
			st.bestValue = sol.Profit
		}
	}
}

// emitProgress pushes a snapshot without ever blocking a worker. When the
// channel is full the snapshot is dropped; the consumer only needs the
// latest picture anyway.
func (st *sharedState) emitProgress(depth, states, maxDepth int) {
	p := Progress{
		Depth:    depth,
		States:   states,
		MaxDepth: maxDepth,
		Elapsed:  time.Since(st.start),
	}
	select {
	case st.progress <- p:
	default:
	}
}
