// Package planner implements the deduplicating, reentrant call planner:
// given an entry Task, it performs a transitive walk of prerequisites into
// a Plan of Calls with prerequisite and parallel relations.
package planner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-runz/runz/internal/attrs"
	"github.com/go-runz/runz/internal/manifest"
	"github.com/go-runz/runz/internal/pkgmodel"
	"github.com/go-runz/runz/internal/taskparser"
	"github.com/go-runz/runz/internal/taskspec"
)

// callKey identifies a Call uniquely by the (package, task name) pair a
// Task was planned against — Calls are unique per Task within one planning
// session.
type callKey struct {
	target taskspec.TargetPackage
	name   string
}

// Call is a planner record keyed by Task, holding effective parameters
// merged from every call-site that planned it in this session.
type Call struct {
	Task  taskspec.Task
	Attrs attrs.Attrs
	Args  []string

	prerequisites []*Call
	complete      bool
}

// Prerequisites returns the Calls that must finish before c, in
// planning-insertion order.
func (c *Call) Prerequisites() []*Call { return c.prerequisites }

// Qualifier generalizes a Task for parallelism statements. This
// implementation qualifies individual Calls; group-level qualifier
// expansion (a whole Group's members sharing one qualifier identity) is a
// documented simplification — see DESIGN.md.
type Qualifier struct{ call *Call }

// Plan is the transitive set of Calls produced from an entry task, plus the
// prerequisite and parallel relations over them.
type Plan struct {
	Entry *Call

	calls    []*Call
	byKey    map[callKey]*Call
	parallel map[*Call]map[*Call]bool
}

// Calls returns every Call in the plan, in planning-insertion order.
func (p *Plan) Calls() []*Call { return p.calls }

// AreParallel reports whether a and b were marked as able to run
// concurrently, checked bidirectionally.
func (p *Plan) AreParallel(a, b *Call) bool {
	if s, ok := p.parallel[a]; ok && s[b] {
		return true
	}
	if s, ok := p.parallel[b]; ok && s[a] {
		return true
	}
	return false
}

func (p *Plan) makeParallel(a, b *Call) {
	if p.parallel == nil {
		p.parallel = make(map[*Call]map[*Call]bool)
	}
	if p.parallel[a] == nil {
		p.parallel[a] = make(map[*Call]bool)
	}
	p.parallel[a][b] = true
}

// Planner walks prerequisites against a tree of packages, loading new ones
// on demand through a Locator when a PackageSelector names a path it has
// not yet seen.
type Planner struct {
	locator manifest.Locator
	cache   *taskparser.Cache
	root    string

	packages map[manifest.Location]*pkgmodel.Package
}

// New builds a Planner rooted at root, resolving new packages through
// locator and memoizing parsed command lines in cache (may be nil).
func New(locator manifest.Locator, root string, cache *taskparser.Cache) *Planner {
	return &Planner{
		locator:  locator,
		cache:    cache,
		root:     root,
		packages: make(map[manifest.Location]*pkgmodel.Package),
	}
}

// Plan performs a transitive walk of task's prerequisites into a new Plan.
func (pl *Planner) Plan(ctx context.Context, task taskspec.Task, extraAttrs attrs.Attrs, extraArgs []string) (*Plan, error) {
	plan := &Plan{byKey: make(map[callKey]*Call)}
	entry, err := pl.planTask(ctx, plan, task, extraAttrs, extraArgs)
	if err != nil {
		return nil, err
	}
	plan.Entry = entry
	return plan, nil
}

func (pl *Planner) planTask(ctx context.Context, plan *Plan, task taskspec.Task, extraAttrs attrs.Attrs, extraArgs []string) (*Call, error) {
	key := callKey{target: task.Target, name: task.Name}

	if existing, ok := plan.byKey[key]; ok {
		existing.Attrs.Merge(extraAttrs)
		existing.Args = append(existing.Args, extraArgs...)
		return existing, nil
	}

	call := &Call{Task: task, Attrs: attrs.New(), Args: append([]string(nil), extraArgs...)}
	call.Attrs.Merge(task.Spec.Attrs)
	call.Attrs.Merge(extraAttrs)

	plan.byKey[key] = call
	plan.calls = append(plan.calls, call)

	if task.Spec.Action.Kind == taskspec.ActionGroup {
		if err := pl.planGroup(ctx, plan, call); err != nil {
			return nil, err
		}
	}

	call.complete = true
	return call, nil
}

func (pl *Planner) planGroup(ctx context.Context, plan *Plan, call *Call) error {
	currentTarget, ok := call.Task.Target.(*pkgmodel.Package)
	if !ok {
		return fmt.Errorf("planner: task %q target is not a resolvable package", call.Task.Name)
	}

	var prev *Call
	for _, pre := range call.Task.Spec.Pre {
		switch {
		case pre.IsPackageSelector():
			resolved, err := pl.resolvePackageSelector(ctx, currentTarget, pre.PackageSelector.Host)
			if err != nil {
				return err
			}
			currentTarget = resolved

		case pre.IsTaskRef():
			ref := pre.TaskRef
			ifPresent := ref.Attrs.Has("if-present") || call.Attrs.Has("if-present")
			childTask := pl.resolveTaskRef(currentTarget, ref, ifPresent)
			child, err := pl.planTask(ctx, plan, childTask, ref.Attrs, ref.Args)
			if err != nil {
				return err
			}
			call.prerequisites = append(call.prerequisites, child)
			if ref.Parallel && prev != nil {
				plan.makeParallel(prev, child)
				plan.makeParallel(child, prev)
			}
			prev = child
		}
	}
	return nil
}

// resolveTaskRef resolves ref against target's task table, materializing an
// Unknown task if absent. ifPresent is true if either the reference itself
// or its containing group's spec carried the if-present attribute.
func (pl *Planner) resolveTaskRef(target *pkgmodel.Package, ref *taskspec.TaskRef, ifPresent bool) taskspec.Task {
	if t, ok := target.Task(ref.Task); ok {
		return t
	}
	return taskspec.NewUnknownTask(target, ref.Task, ifPresent)
}

// resolvePackageSelector resolves a relative path selector against from's
// location into a sibling/ancestor Package, loading and caching it via the
// Locator if it has not been seen yet.
func (pl *Planner) resolvePackageSelector(ctx context.Context, from *pkgmodel.Package, host string) (*pkgmodel.Package, error) {
	base := string(from.Location())
	target := filepath.Clean(filepath.Join(base, host))
	loc := manifest.Location(target)

	if pkg, ok := pl.packages[loc]; ok {
		return pkg, nil
	}

	man, err := pl.locator.Load(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("resolving package selector %q from %s: %w", host, base, err)
	}
	pkg, err := pkgmodel.New(loc, man, nil, pl.cache)
	if err != nil {
		return nil, err
	}
	pl.packages[loc] = pkg
	return pkg, nil
}

// RegisterPackage seeds the planner's known-package table, used by the CLI
// front-end after a Locate walk so PackageSelector resolution never
// re-reads a manifest it already has in hand.
func (pl *Planner) RegisterPackage(pkg *pkgmodel.Package) {
	pl.packages[pkg.Location()] = pkg
}
