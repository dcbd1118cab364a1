package tableau

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bradleypallen/tableaux-go/internal/signed"
)

// RunParallel saturates the branches spawned by roots the same way Run
// does, but farms independent open branches out across a bounded worker
// pool once the initial β-split has produced more than one branch to
// saturate. Every rule step runs while holding one mutex, so steps on
// different branches are serialized rather than concurrent. The verdict
// (Closed) matches a sequential Run, but branch IDs, the trace, the order
// of OpenBranches and the stats counters depend on goroutine scheduling
// and can differ from a sequential Run and between runs.
func (t *Tableau) RunParallel(roots []signed.Formula, workers int) Outcome {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	root := newBranch(t.nextBranchID)
	t.nextBranchID++
	for _, sf := range roots {
		root.add(t.plugin.Signs, sf)
	}
	t.trace.record(Step{Kind: StepInitial, BranchID: root.id, Produced: roots})

	var mu sync.Mutex
	pending := []*Branch{root}
	var open []*Branch
	incomplete := false

	for len(pending) > 0 {
		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(workers)

		batch := pending
		pending = nil
		var nextBatch []*Branch

		for _, b := range batch {
			b := b
			g.Go(func() error {
				for {
					mu.Lock()
					children, applied, budgetHit := t.stepLocked(b)
					if !applied {
						t.stats.BranchesExplored++
						if b.closed {
							t.trace.record(Step{Kind: StepClosure, BranchID: b.id, Reason: b.closureReason})
							mu.Unlock()
							return nil
						}
						sig := b.signature()
						if t.seenSignatures[sig] {
							mu.Unlock()
							return nil
						}
						t.seenSignatures[sig] = true
						if budgetHit {
							incomplete = true
						}
						t.trace.record(Step{Kind: StepCompletion, BranchID: b.id})
						open = append(open, b)
						mu.Unlock()
						return nil
					}
					if len(children) > 1 {
						// A β/γ split: keep working this branch locally,
						// hand the rest back to the pool as new tasks.
						b = children[0]
						nextBatch = append(nextBatch, children[1:]...)
						mu.Unlock()
						continue
					}
					b = children[0]
					mu.Unlock()
				}
			})
		}
		_ = g.Wait()
		pending = nextBatch
	}

	t.stats.MaxBranchDepth = maxDepth(open)
	outcome := Outcome{
		Closed:               len(open) == 0,
		OpenBranches:         open,
		ClosedBranchCount:    t.stats.BranchesExplored - len(open),
		IncompleteSaturation: incomplete,
		Trace:                t.trace,
		Stats:                t.stats,
	}
	if t.options.MaxModels > 0 && len(outcome.OpenBranches) > t.options.MaxModels {
		outcome.OpenBranches = outcome.OpenBranches[:t.options.MaxModels]
	}
	return outcome
}

// stepLocked is step, called with t's mutex already held by the caller:
// RunParallel serializes every mutation of shared engine state — the
// fresh-constant counter, branch-ID counter, trace, and stats.
func (t *Tableau) stepLocked(b *Branch) ([]*Branch, bool, bool) {
	return t.step(b)
}
