// Package attrs implements the multi-valued, append-only string map shared
// by TaskSpec, TaskRef, and the planner's Call. The option/syntax engine
// keeps its own syntax.Recognized map for its value sets.
//
// Per spec, an attribute name, once it appears, always has at least one
// value; values themselves may be the empty string, but the empty *set* of
// values never occurs.
package attrs

// Attrs is an ordered, multi-valued mapping from attribute name to a
// non-empty sequence of string values. The zero value is a nil map: it can
// be read, but Append and Merge into it panic, so build one with New.
type Attrs map[string][]string

// New returns an empty Attrs map.
func New() Attrs {
	return make(Attrs)
}

// Append adds value to the sequence for name, creating the sequence if this
// is the attribute's first appearance.
func (a Attrs) Append(name, value string) {
	a[name] = append(a[name], value)
}

// Get returns the value sequence for name, or nil if name was never set.
// Callers must not mutate the returned slice.
func (a Attrs) Get(name string) []string {
	return a[name]
}

// Has reports whether name has ever been set.
func (a Attrs) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Last returns the most recently appended value for name and whether it
// exists. This is the form most attributes (like "if-present") care about.
func (a Attrs) Last(name string) (string, bool) {
	values := a[name]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// Clone returns a deep copy of a, safe to mutate independently.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for name, values := range a {
		cp := make([]string, len(values))
		copy(cp, values)
		out[name] = cp
	}
	return out
}

// Merge appends each of other's value sequences onto the receiver's
// sequence of the same name. Values of one name keep their order, and names
// are independent of each other, so the result does not depend on map
// iteration order. The planner merges each call-site's attrs with it, which
// yields the elementwise append in planning order.
func (a Attrs) Merge(other Attrs) {
	for name, values := range other {
		a[name] = append(a[name], values...)
	}
}

// Equal reports whether a and b have the same names mapped to
// elementwise-equal value sequences.
func Equal(a, b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for name, av := range a {
		bv, ok := b[name]
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
	}
	return true
}
