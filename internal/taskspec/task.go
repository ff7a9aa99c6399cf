package taskspec

import "github.com/go-runz/runz/internal/attrs"

// TargetPackage is the minimal package surface the Task variants need: a
// display name (for error messages). Sibling-task lookup is not part of it;
// the planner resolves task names on the concrete pkgmodel.Package, which
// satisfies this interface.
type TargetPackage interface {
	DisplayName() string
}

// Task binds a TaskSpec to the package it was built against and the name
// it is known by within that package.
type Task struct {
	Target TargetPackage
	Name   string
	Spec   TaskSpec
}

// NewTask constructs a Task from a package, a name, and an already-built
// spec, as the final step of Builder.Task.
func NewTask(target TargetPackage, name string, spec TaskSpec) Task {
	return Task{Target: target, Name: name, Spec: spec}
}

// NewUnknownTask materializes a placeholder Task for a name that does not
// resolve against target's manifest. ifPresent mirrors the requesting
// prerequisite's if-present attribute, letting execution no-op instead of
// failing.
func NewUnknownTask(target TargetPackage, name string, ifPresent bool) Task {
	spec := TaskSpec{Action: Action{Kind: ActionUnknown}}
	if ifPresent {
		spec.Attrs = attrs.New()
		spec.Attrs.Append("if-present", "true")
	}
	return Task{Target: target, Name: name, Spec: spec}
}

// IfPresent reports whether this task's attrs carry the if-present flag.
func (t Task) IfPresent() bool {
	return t.Spec.Attrs.Has("if-present")
}
