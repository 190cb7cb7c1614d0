package bfs

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/search"
)

// queueItem pairs a state with its depth (edge distance) from the root.
type queueItem struct {
	state search.State
	depth int
}

// Sequential runs queue-based breadth-first search from root.
// FIFO order guarantees the first goal dequeued is at minimum depth; among
// several minimum-depth goals the first-enqueued one is returned.
// Returns a not-found Result (nil error) when the queue empties without a goal.
func Sequential(root search.State, opts ...Option) (*search.Result, error) {
	if root == nil {
		return nil, search.ErrNilRoot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := search.NewResult()
	visited := make(map[uint64]struct{})
	queue := []queueItem{{state: root, depth: 0}}

	for len(queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		id := item.state.ID()
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		res.Expanded++

		if item.state.IsGoal() {
			res.Record(item.state, item.depth)
			return res, nil
		}

		for _, child := range item.state.Successors() {
			if _, seen := visited[child.ID()]; !seen {
				queue = append(queue, queueItem{state: child, depth: item.depth + 1})
			}
		}
	}

	return res, nil
}

// Parallel runs level-synchronous breadth-first search from root.
// Two frontier buffers are exchanged every round; within a round each
// frontier member's children are computed concurrently and merged into the
// shared (next-frontier, visited) pair under a single mutex per child.
// The result is the minimum-identifier goal among all goals discovered in
// the shallowest goal-bearing level — see the package documentation for how
// this tie-break differs from Sequential.
func Parallel(root search.State, opts ...Option) (*search.Result, error) {
	if root == nil {
		return nil, search.ErrNilRoot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := search.NewResult()
	if root.IsGoal() {
		res.Expanded = 1
		res.Record(root, 0)
		return res, nil
	}

	// Shared coordination state, freshly allocated per call.
	var (
		mu        sync.Mutex
		visited   = map[uint64]struct{}{root.ID(): {}}
		next      = []search.State{root}
		current   []search.State
		goal      search.State
		goalID    uint64
		goalDepth int
		depth     int // depth of the children discovered this round
	)

	for len(next) > 0 && goal == nil {
		// Swap current and next frontier.
		current, next = next, nil
		depth++

		g, ctx := errgroup.WithContext(o.Ctx)
		g.SetLimit(o.Workers)
		for _, member := range current {
			member := member
			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				// Successor enumeration runs outside the lock; all shared
				// mutation per child happens inside one critical section.
				children := member.Successors()
				for _, child := range children {
					id := child.ID()
					mu.Lock()
					if _, seen := visited[id]; !seen {
						visited[id] = struct{}{}
						if child.IsGoal() && (goal == nil || id < goalID) {
							goal = child
							goalID = id
							goalDepth = depth
						}
						next = append(next, child)
					}
					mu.Unlock()
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		res.Expanded += len(current)
	}

	if goal != nil {
		res.Record(goal, goalDepth)
	}

	return res, nil
}
