package taskparser

import "fmt"

// InvalidTask is raised by Parse when the positional prefix of a run-z
// command line cannot be interpreted as prerequisites/attributes. Position
// is a byte offset into CommandLine, which is reconstructed from every
// token after "run-z" (rejoined with single spaces) rather than the original
// raw input line.
type InvalidTask struct {
	Message     string
	CommandLine string
	Position    int
}

func (e *InvalidTask) Error() string {
	return fmt.Sprintf("%s (in %q at %d)", e.Message, e.CommandLine, e.Position)
}
