package planner

import "fmt"

// UnknownTask is raised when a task name does not resolve against its
// target package and no if-present materialization applies, either during
// planning (resolution failure with materialization disallowed) or during
// execution of a materialized Unknown task.
type UnknownTask struct {
	Target   string
	TaskName string
	Message  string
}

func (e *UnknownTask) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unknown task %q in %s", e.TaskName, e.Target)
}
