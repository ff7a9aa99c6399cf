package shell

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/go-runz/runz/internal/manifest"
	"github.com/go-runz/runz/internal/taskparser"
	"github.com/go-runz/runz/internal/taskspec"
)

// OSShell is the default Shell: it builds an argv, runs it with
// os/exec.CommandContext, and surfaces the exit code — the same
// build-argv/run/surface-exit-code shape as the corpus's directory-picker
// helper, generalized from a single fixed command to an arbitrary one.
type OSShell struct {
	locator manifest.Locator
	cache   *taskparser.Cache
}

// NewOSShell returns an OSShell resolving Script actions through locator.
func NewOSShell(locator manifest.Locator, cache *taskparser.Cache) *OSShell {
	return &OSShell{locator: locator, cache: cache}
}

// ExecCommand runs command through "sh -c", appending params.Args as
// positional arguments available to the script as $1, $2, ....
func (s *OSShell) ExecCommand(ctx context.Context, jobID string, command string, params Params) (ProcessHandle, error) {
	// "sh" fills $0 so that params.Args start at $1.
	argv := append([]string{command, "sh"}, params.Args...)
	cmd := exec.CommandContext(ctx, "sh", append([]string{"-c", "--"}, argv...)...)
	cmd.Dir = params.Dir
	cmd.Env = params.Env
	return startProcess(cmd)
}

// ExecScript resolves name's command line from dir's manifest and parses it
// through the grammar parser: a native result is run directly as a shell
// command. A run-z result means the script is itself a nested invocation,
// which the caller (the executor) is expected to plan and run rather than
// treat as an opaque process, so ExecScript rejects it with an error instead
// of running it.
func (s *OSShell) ExecScript(ctx context.Context, jobID string, dir string, name string, params Params) (ProcessHandle, error) {
	loc := manifest.Location(filepath.Clean(dir))
	man, err := s.locator.Load(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("exec script %q: %w", name, err)
	}
	line, ok := man.Scripts[name]
	if !ok {
		return nil, fmt.Errorf("exec script %q: not found in %s", name, dir)
	}

	spec, err := s.parse(line)
	if err != nil {
		return nil, err
	}
	if !spec.IsNative() {
		return nil, fmt.Errorf("exec script %q: resolves to a run-z invocation, not a native command; re-plan it instead", name)
	}
	return s.ExecCommand(ctx, jobID, line, params)
}

func (s *OSShell) parse(line string) (taskspec.TaskSpec, error) {
	if s.cache != nil {
		return s.cache.Parse(line)
	}
	return taskparser.Parse(line)
}
