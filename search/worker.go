package search

import "time"

// node is one entry of a worker's BFS queue.
type node struct {
	effects EffectSet
	path    []string
	cost    int
}

// progressInterval is how many dequeued states pass between forced
// progress snapshots, on top of the snapshot sent at each depth increase.
const progressInterval = 1000

// worker runs one breadth-first exploration over the ingredient graph.
// Each worker owns its queue but shares the visited set and the best
// solution with every other worker, so states discovered by one become
// invisible to the rest: the workers race over a common frontier instead
// of partitioning it.
//
// A worker never fails; it simply stops on queue exhaustion or timeout.
func worker(req Request, st *sharedState, allowed []string, timeout time.Duration) {
	queue := []node{{effects: NewEffectSet(), path: nil, cost: 0}}
	statesExplored := 0
	currentDepth := 0

	for len(queue) > 0 {
		if time.Since(st.start) > timeout {
			return
		}

		current := queue[0]
		queue = queue[1:]

		if len(current.path) > currentDepth {
			currentDepth = len(current.path)
			st.emitProgress(currentDepth, statesExplored, req.MaxDepth)
		}
		statesExplored++
		if statesExplored%progressInterval == 0 {
			st.emitProgress(currentDepth, statesExplored, req.MaxDepth)
		}

		if accepts(req, current) {
			_, profit := BestProfit(current.effects, current.cost)
			st.recordSolution(req.Mode, &Solution{
				Path:    current.path,
				Effects: current.effects,
				Cost:    current.cost,
				Profit:  profit,
			})
			if req.Mode == ModeCost {
				// Extending a valid recipe can only add cost.
				continue
			}
		}

		if len(current.path) >= req.MaxDepth {
			continue
		}

		for _, name := range allowed {
			ing := req.Catalog[name]
			next := Apply(current.effects, ing, req.Replacement)
			if !st.markVisited(next.Key()) {
				continue
			}
			path := make([]string, len(current.path), len(current.path)+1)
			copy(path, current.path)
			queue = append(queue, node{
				effects: next,
				path:    append(path, name),
				cost:    current.cost + ing.Price,
			})
		}
	}
}

// accepts reports whether a node is a candidate solution: it carries all
// required effects, is non-trivial (an empty requirement still needs at
// least one ingredient), and is at or past the minimum depth.
func accepts(req Request, n node) bool {
	if !n.effects.ContainsAll(req.RequiredEffects) {
		return false
	}
	if len(req.RequiredEffects) == 0 && len(n.path) == 0 {
		return false
	}
	return len(n.path) >= req.MinDepth
}
