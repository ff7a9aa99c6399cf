// Package taskspec holds the immutable TaskSpec value, its mutable Builder,
// and the Task variants that give a spec its executable meaning.
package taskspec

import "github.com/go-runz/runz/internal/attrs"

// TaskRef is a prerequisite naming another task, optionally with its own
// arguments and attributes and a parallel-with-predecessor hint.
type TaskRef struct {
	Task     string
	Parallel bool
	Attrs    attrs.Attrs
	Args     []string
}

// PackageSelector is a prerequisite that retargets subsequent TaskRefs in
// the same positional prefix to a different package, without itself
// producing a Call.
type PackageSelector struct {
	Host string
}

// Prerequisite is either a TaskRef or a PackageSelector.
type Prerequisite struct {
	TaskRef         *TaskRef
	PackageSelector *PackageSelector
}

// IsTaskRef reports whether this prerequisite is a TaskRef.
func (p Prerequisite) IsTaskRef() bool { return p.TaskRef != nil }

// IsPackageSelector reports whether this prerequisite is a PackageSelector.
func (p Prerequisite) IsPackageSelector() bool { return p.PackageSelector != nil }

// ActionKind tags which Action variant a TaskSpec carries.
type ActionKind int

const (
	// ActionGroup expands into prerequisite calls only; the default action.
	ActionGroup ActionKind = iota
	// ActionCommand runs a subprocess with the given command line.
	ActionCommand
	// ActionScript delegates to the manifest's script runner.
	ActionScript
	// ActionUnknown fails unless the if-present attribute is set.
	ActionUnknown
)

func (k ActionKind) String() string {
	switch k {
	case ActionCommand:
		return "command"
	case ActionScript:
		return "script"
	case ActionUnknown:
		return "unknown"
	default:
		return "group"
	}
}

// Action is the tagged-variant execution payload of a TaskSpec.
type Action struct {
	Kind ActionKind

	// Command holds the shell command line for ActionCommand.
	Command string
	// Parallel marks an ActionCommand that may run concurrently with its
	// siblings rather than blocking the pipeline (mirrors TaskRef.Parallel
	// but for the command itself). Nothing in this module sets it, and the
	// planner and executor do not read it.
	Parallel bool

	// Targets holds the qualifier names an ActionGroup expands into; for a
	// plain Group built from spec.Pre, this is left empty and the planner
	// walks Pre directly.
	Targets []string
}

// TaskSpec is the immutable result of parsing and building a task
// description: an ordered prerequisite list, accumulated attributes,
// trailing arguments, and an action.
type TaskSpec struct {
	Pre    []Prerequisite
	Attrs  attrs.Attrs
	Args   []string
	Action Action
}

// IsNative reports whether this spec resulted from a non-run-z command line
// (an opaque shell script with no grammar to interpret). Script is the only
// action kind the grammar parser ever produces for a native line, so the
// kind alone is definitive.
func (s TaskSpec) IsNative() bool { return s.Action.Kind == ActionScript }
