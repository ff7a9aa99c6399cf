package syntax

import "fmt"

// UnknownOption is raised when no reader, exact or wildcard, recognizes an
// option, or when a deferred option never resolves.
type UnknownOption struct {
	Name string
}

func (e *UnknownOption) Error() string {
	return fmt.Sprintf("unknown option %q", e.Name)
}
