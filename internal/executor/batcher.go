package executor

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/go-runz/runz/internal/attrs"
	"github.com/go-runz/runz/internal/pkgmodel"
	"github.com/go-runz/runz/internal/planner"
	"github.com/go-runz/runz/internal/taskspec"
)

// Batcher fans a single task name out across multiple target packages: K
// parallel entry Calls, each planned and run independently, failures
// aggregated via the first error reported. golang.org/x/sync/errgroup is
// exactly this shape — run K goroutines, collect the first error, wait for
// all.
type Batcher struct {
	planner  *planner.Planner
	executor *Executor
}

// NewBatcher pairs a Planner (to resolve taskName against each target) with
// an Executor (to run the resulting per-package plans, sharing its process
// concurrency ceiling across every sub-entry).
func NewBatcher(pl *planner.Planner, ex *Executor) *Batcher {
	return &Batcher{planner: pl, executor: ex}
}

// Run plans and executes taskName against every package in targets,
// returning the aggregated Jobs of every sub-entry and the first
// sub-entry's error, if any.
func (b *Batcher) Run(ctx context.Context, taskName string, targets []*pkgmodel.Package, extraAttrs attrs.Attrs, extraArgs []string) ([]*Job, error) {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var jobs []*Job

	for _, target := range targets {
		target := target
		g.Go(func() error {
			task, ok := target.Task(taskName)
			if !ok {
				task = taskspec.NewUnknownTask(target, taskName, false)
			}
			plan, err := b.planner.Plan(gctx, task, extraAttrs, extraArgs)
			if err != nil {
				return err
			}
			subJobs, err := b.executor.Run(gctx, plan)
			mu.Lock()
			jobs = append(jobs, subJobs...)
			mu.Unlock()
			return err
		})
	}
	err := g.Wait()
	return jobs, err
}
