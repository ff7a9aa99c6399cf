package taskspec

import "github.com/go-runz/runz/internal/attrs"

// Builder accumulates prerequisites, attributes, arguments, and an action
// incrementally, then freezes into an immutable TaskSpec on Spec (or a
// concrete Task on Task). It is not safe for concurrent use.
type Builder struct {
	pre    []Prerequisite
	attrs  attrs.Attrs
	args   []string
	action Action
}

// NewBuilder returns an empty Builder with the default Group action.
func NewBuilder() *Builder {
	return &Builder{attrs: attrs.New(), action: Action{Kind: ActionGroup}}
}

// AddPrerequisite appends a prerequisite to the builder's pending list.
func (b *Builder) AddPrerequisite(p Prerequisite) {
	b.pre = append(b.pre, p)
}

// SetAttr appends value to the named attribute.
func (b *Builder) SetAttr(name, value string) {
	b.attrs.Append(name, value)
}

// AddArgs appends tokens to the trailing argument list.
func (b *Builder) AddArgs(args ...string) {
	b.args = append(b.args, args...)
}

// SetAction replaces the builder's action.
func (b *Builder) SetAction(a Action) {
	b.action = a
}

// Merge folds a previously-built TaskSpec into this builder: prerequisites
// and args are appended, attrs are merged with append semantics, and the
// action is adopted only if the incoming spec's action is non-default
// (a Group with no targets never overrides an already-set action).
func (b *Builder) Merge(spec TaskSpec) {
	b.pre = append(b.pre, spec.Pre...)
	b.attrs.Merge(spec.Attrs)
	b.args = append(b.args, spec.Args...)
	if spec.Action.Kind != ActionGroup || len(spec.Action.Targets) > 0 {
		b.action = spec.Action
	}
}

// Spec freezes the builder's accumulated state into an immutable TaskSpec.
func (b *Builder) Spec() TaskSpec {
	return TaskSpec{
		Pre:    append([]Prerequisite(nil), b.pre...),
		Attrs:  b.attrs.Clone(),
		Args:   append([]string(nil), b.args...),
		Action: b.action,
	}
}

// Task freezes the builder and binds it to target under name, selecting the
// concrete Task variant by the accumulated action's kind.
func (b *Builder) Task(target TargetPackage, name string) Task {
	return NewTask(target, name, b.Spec())
}
