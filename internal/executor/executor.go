// Package executor implements the Job Executor: given a Plan, it runs a
// cooperative, ready-channel-driven worker pool of OS-level subprocesses and
// resolves once the entry Call's Job is done, or rejects on first failure.
//
// The worker pool is a ready channel fed by an atomic dependency counter,
// with cancellation cascaded by skipping not-yet-started dependents.
// Concurrency across concurrently-spawned OS processes is additionally
// bounded by a golang.org/x/sync/semaphore.Weighted sized from the
// "--max-parallel" ceiling the CLI exposes.
package executor

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/go-runz/runz/internal/ctxlog"
	"github.com/go-runz/runz/internal/pkgmodel"
	"github.com/go-runz/runz/internal/planner"
	"github.com/go-runz/runz/internal/shell"
	"github.com/go-runz/runz/internal/taskspec"
)

// Executor runs the Jobs of a Plan. It holds only state safe to share
// across concurrently-running plans (the Shell collaborator and the
// process-concurrency semaphore); per-run bookkeeping lives in run, so one
// Executor may back several simultaneous Batcher sub-entries.
type Executor struct {
	shell shell.Shell
	sem   *semaphore.Weighted
}

// New returns an Executor that spawns subprocesses through sh and bounds
// concurrently-running processes across every plan it runs to maxParallel
// (values <= 0 mean unbounded).
func New(sh shell.Shell, maxParallel int) *Executor {
	weight := int64(maxParallel)
	if weight <= 0 {
		weight = 1 << 30
	}
	return &Executor{
		shell: sh,
		sem:   semaphore.NewWeighted(weight),
	}
}

// run holds the Job bookkeeping for one in-flight Plan execution.
type run struct {
	executor *Executor
	jobs     map[*planner.Call]*Job
	order    []*Job
	// depMu guards the dependency counters that workers decrement.
	depMu sync.Mutex
}

// Run executes every Call in plan concurrently, respecting prerequisite
// and sibling-serialization edges, and returns the error of the first Job,
// in planning order, that failed on its own rather than being skipped (nil
// if none failed). The returned Jobs carry each Call's terminal state and
// timing for summary reporting.
func (e *Executor) Run(ctx context.Context, plan *planner.Plan) ([]*Job, error) {
	r := &run{
		executor: e,
		jobs:     make(map[*planner.Call]*Job, len(plan.Calls())),
		order:    make([]*Job, 0, len(plan.Calls())),
	}
	for _, call := range plan.Calls() {
		job := newJob(call)
		r.jobs[call] = job
		r.order = append(r.order, job)
	}

	logger := ctxlog.FromContext(ctx)
	graph := buildDependencyGraph(plan)

	depCount := make(map[*planner.Call]int, len(plan.Calls()))
	for _, call := range plan.Calls() {
		depCount[call] = graph.depCount(call)
	}

	readyChan := make(chan *planner.Call, len(plan.Calls()))
	var wg sync.WaitGroup
	wg.Add(len(plan.Calls()))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	rootCount := 0
	for _, call := range plan.Calls() {
		if depCount[call] == 0 {
			readyChan <- call
			rootCount++
		}
	}
	logger.Debug("executor: starting", "roots", rootCount, "calls", len(plan.Calls()))

	numWorkers := len(plan.Calls())
	if numWorkers == 0 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		go r.worker(runCtx, graph, depCount, readyChan, &wg, cancel, i)
	}

	wg.Wait()
	close(readyChan)

	// The first non-skipped failure is the root cause; a Skipped Job's
	// error is a cancellation symptom, not something worth surfacing.
	for _, job := range r.order {
		if job.State() == JobDoneErr && job.Err != nil && !job.Skipped {
			return r.order, job.Err
		}
	}
	return r.order, nil
}

func (r *run) worker(
	ctx context.Context,
	graph *dependencyGraph,
	depCount map[*planner.Call]int,
	readyChan chan *planner.Call,
	wg *sync.WaitGroup,
	cancel context.CancelFunc,
	workerID int,
) {
	logger := ctxlog.FromContext(ctx)

	for call := range readyChan {
		job := r.jobs[call]
		workerLogger := logger.With("worker", workerID, "task", call.Task.Name)

		if ctx.Err() != nil {
			if job.skip(ctx.Err(), wg) {
				r.skipDependents(ctx, graph, call, wg)
			}
			continue
		}

		job.setState(JobRunning)
		job.StartedAt = time.Now()
		workerLogger.Debug("executor: starting job")

		err := r.executor.runCall(ctx, call)
		job.FinishedAt = time.Now()

		if err != nil {
			workerLogger.Error("executor: job failed", "error", err)
			job.setState(JobDoneErr)
			job.Err = err
			cancel()
			r.skipDependents(ctx, graph, call, wg)
			wg.Done()
			continue
		}

		job.setState(JobDoneOK)
		workerLogger.Debug("executor: job done")

		r.depMu.Lock()
		for _, dependent := range graph.dependents[call] {
			depCount[dependent]--
			if depCount[dependent] == 0 {
				readyChan <- dependent
			}
		}
		r.depMu.Unlock()
		wg.Done()
	}
}

// skipDependents marks every not-yet-started dependent of call as
// done-err-cancelled, recursively cascading through the whole downstream
// subgraph.
func (r *run) skipDependents(ctx context.Context, graph *dependencyGraph, call *planner.Call, wg *sync.WaitGroup) {
	logger := ctxlog.FromContext(ctx)
	for _, dependent := range graph.dependents[call] {
		job := r.jobs[dependent]
		if job.skip(fmt.Errorf("skipped due to upstream failure of %q", call.Task.Name), wg) {
			logger.Warn("executor: skipping dependent", "task", dependent.Task.Name, "cause", call.Task.Name)
			r.skipDependents(ctx, graph, dependent, wg)
		}
	}
}

// runCall starts and waits for call's action, dispatching on its kind.
func (e *Executor) runCall(ctx context.Context, call *planner.Call) error {
	switch call.Task.Spec.Action.Kind {
	case taskspec.ActionGroup:
		return nil

	case taskspec.ActionUnknown:
		if call.Task.IfPresent() {
			return nil
		}
		return &planner.UnknownTask{Target: targetName(call.Task.Target), TaskName: call.Task.Name}

	case taskspec.ActionCommand:
		return e.runProcess(ctx, call, call.Task.Spec.Action.Command, "")

	case taskspec.ActionScript:
		return e.runProcess(ctx, call, "", call.Task.Name)

	default:
		return fmt.Errorf("executor: task %q has unrecognized action kind", call.Task.Name)
	}
}

func (e *Executor) runProcess(ctx context.Context, call *planner.Call, command, scriptName string) error {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer e.sem.Release(1)

	pkg, ok := call.Task.Target.(*pkgmodel.Package)
	if !ok {
		return fmt.Errorf("executor: task %q target is not a resolvable package", call.Task.Name)
	}

	params := shell.Params{
		Args: append(append([]string(nil), call.Task.Spec.Args...), call.Args...),
		Env:  append(os.Environ(), envFromAttrs(call.Attrs)...),
		Dir:  string(pkg.Location()),
	}

	jobID := uuid.NewString()

	var handle shell.ProcessHandle
	var err error
	if scriptName != "" {
		handle, err = e.shell.ExecScript(ctx, jobID, params.Dir, scriptName, params)
	} else {
		handle, err = e.shell.ExecCommand(ctx, jobID, command, params)
	}
	if err != nil {
		return err
	}

	select {
	case <-handle.Done():
	case <-ctx.Done():
		_ = handle.Kill()
		<-handle.Done()
	}

	code, waitErr := handle.Wait()
	if code != 0 {
		return &JobFailed{Target: pkg.DisplayName(), TaskName: call.Task.Name, ExitCode: code, Err: waitErr}
	}
	return waitErr
}

func targetName(t taskspec.TargetPackage) string {
	if t == nil {
		return ""
	}
	return t.DisplayName()
}
