package search

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimeout bounds a search whose request leaves Timeout unset.
	DefaultTimeout = 30 * time.Second

	// maxWorkers caps the pool; tiny catalogs get fewer workers.
	maxWorkers = 4

	// drainGrace is how much longer than the timeout the coordinator
	// waits for workers to notice expiry before returning anyway.
	drainGrace = 500 * time.Millisecond

	progressBuffer = 256
)

// Search explores the ingredient-application graph breadth-first with a
// pool of workers racing over one shared visited set and returns the best
// recipe found before the queue empties or the timeout fires.
//
// A nil solution with a nil error means no recipe satisfied the request
// within the depth and time bounds; that is a normal outcome, not a
// failure. Invalid parameters are reported synchronously before any
// worker starts.
func Search(req Request) (*Solution, error) {
	if len(req.Catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if req.Mode != ModeCost && req.Mode != ModeProfit {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}
	if req.MaxDepth < 1 || req.MinDepth < 0 || req.MinDepth > req.MaxDepth {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrDepthRange, req.MinDepth, req.MaxDepth)
	}

	allowed := req.AllowedIngredients
	if allowed == nil {
		allowed = req.Catalog.Names()
	} else {
		for _, name := range allowed {
			if _, ok := req.Catalog[name]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownIngredient, name)
			}
		}
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	st := newSharedState(req.Mode)

	workers := maxWorkers
	if len(req.Catalog) < workers {
		workers = len(req.Catalog)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(req, st, allowed, timeout)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	// Relay progress while workers run. The wait is bounded by the same
	// timeout (plus a short grace) so the call returns promptly even if a
	// worker loop is slow to notice expiry.
	deadline := time.NewTimer(timeout + drainGrace)
	defer deadline.Stop()

	for {
		select {
		case p := <-st.progress:
			if req.Progress != nil {
				req.Progress(p)
			}
		case <-done:
			drainProgress(st, req.Progress)
			return best(st), nil
		case <-deadline.C:
			return best(st), nil
		}
	}
}

func drainProgress(st *sharedState, cb ProgressFunc) {
	for {
		select {
		case p := <-st.progress:
			if cb != nil {
				cb(p)
			}
		default:
			return
		}
	}
}

func best(st *sharedState) *Solution {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.best
}
