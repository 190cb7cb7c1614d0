package iddfs

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/search"
)

// Sequential runs iterative-deepening depth-first search from root.
// Each pass is a fresh depth-limited traversal carrying a per-branch copy of
// the path-visited set; the pass records the lowest-identifier goal seen
// anywhere in the full limited traversal. On a goal-free space the call
// returns only via context cancellation or an exhausted WithMaxDepth cap.
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
	for limit := 1; o.MaxDepth == 0 || limit <= o.MaxDepth; limit++ {
		p := &seqPass{limit: limit, ctx: o.Ctx}
		p.walk(root, 0, make(map[uint64]struct{}))
		res.Expanded += p.expanded
		if p.err != nil {
			return nil, p.err
		}
		if p.goal != nil {
			res.Record(p.goal, p.goalDepth)
			return res, nil
		}
	}

	return res, nil
}

// seqPass holds the state of one sequential depth-limited traversal.
// All fields are freshly allocated per pass.
type seqPass struct {
	limit     int
	ctx       context.Context
	goal      search.State
	goalID    uint64
	goalDepth int
	expanded  int
	err       error
}

// walk performs the depth-limited traversal from s at the given depth.
// onPath holds the identifiers of s's proper ancestors; each recursive call
// receives its own copy, so sibling subtrees never observe each other's
// exclusions.
func (p *seqPass) walk(s search.State, depth int, onPath map[uint64]struct{}) {
	if p.err != nil {
		return
	}
	select {
	case <-p.ctx.Done():
		p.err = p.ctx.Err()
		return
	default:
	}

	p.expanded++
	if s.IsGoal() {
		if id := s.ID(); p.goal == nil || id < p.goalID {
			p.goal, p.goalID, p.goalDepth = s, id, depth
		}
		return
	}
	if depth >= p.limit {
		return
	}

	id := s.ID()
	for _, child := range s.Successors() {
		if _, on := onPath[child.ID()]; on {
			continue
		}
		branch := clonePathSet(onPath)
		branch[id] = struct{}{}
		p.walk(child, depth+1, branch)
	}
}

// Parallel runs iterative-deepening depth-first search with bounded
// fork-join fan-out. Child subtrees fork as independent tasks while the
// current depth is below ForkDepth and a task slot is free; otherwise
// recursion is inline. Every branch point forks its own copy of the
// path-visited set. The best-goal cell is advisory: in-flight tasks run to
// completion, only the pass result reflects the improved bound.
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
	sem := semaphore.NewWeighted(int64(o.TaskLimit))

	for limit := 1; o.MaxDepth == 0 || limit <= o.MaxDepth; limit++ {
		p := &parPass{
			limit:     limit,
			forkDepth: o.ForkDepth,
			ctx:       o.Ctx,
			sem:       sem,
		}
		p.walk(root, 0, make(map[uint64]struct{}))
		res.Expanded += int(p.expanded.Load())
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		p.mu.Lock()
		goal, depth := p.goal, p.goalDepth
		p.mu.Unlock()
		if goal != nil {
			res.Record(goal, depth)
			return res, nil
		}
	}

	return res, nil
}

// parPass holds the shared coordination state of one parallel pass:
// the best-goal cell guarded by mu, and the task pool bound.
// All fields are freshly allocated per solve invocation.
type parPass struct {
	limit     int
	forkDepth int
	ctx       context.Context
	sem       *semaphore.Weighted

	mu        sync.Mutex
	goal      search.State
	goalID    uint64
	goalDepth int

	expanded atomic.Int64
}

// walk traverses the subtree rooted at s, forking eligible children and
// joining them before returning. onPath is owned by this call; forked
// children receive independent copies.
func (p *parPass) walk(s search.State, depth int, onPath map[uint64]struct{}) {
	if p.ctx.Err() != nil {
		return
	}

	p.expanded.Add(1)
	if s.IsGoal() {
		p.record(s, depth)
		return
	}
	if depth >= p.limit {
		return
	}

	id := s.ID()
	var wg sync.WaitGroup
	for _, child := range s.Successors() {
		if _, on := onPath[child.ID()]; on {
			continue
		}
		branch := clonePathSet(onPath)
		branch[id] = struct{}{}

		if depth < p.forkDepth && p.sem.TryAcquire(1) {
			wg.Add(1)
			go func(c search.State, b map[uint64]struct{}) {
				defer wg.Done()
				defer p.sem.Release(1)
				p.walk(c, depth+1, b)
			}(child, branch)
		} else {
			p.walk(child, depth+1, branch)
		}
	}
	wg.Wait()
}

// record updates the best-goal cell on strict improvement only.
func (p *parPass) record(s search.State, depth int) {
	id := s.ID()
	p.mu.Lock()
	if p.goal == nil || id < p.goalID {
		p.goal, p.goalID, p.goalDepth = s, id, depth
	}
	p.mu.Unlock()
}

// clonePathSet copies a path-visited set for an independent branch.
func clonePathSet(src map[uint64]struct{}) map[uint64]struct{} {
	dst := make(map[uint64]struct{}, len(src)+1)
	for id := range src {
		dst[id] = struct{}{}
	}

	return dst
}
