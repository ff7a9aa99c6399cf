package shell

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-runz/runz/internal/manifest"
)

func TestExecCommandSucceeds(t *testing.T) {
	s := NewOSShell(manifest.NewDirLocator(), nil)
	h, err := s.ExecCommand(context.Background(), "job-1", "exit 0", Params{})
	require.NoError(t, err)

	code, waitErr := h.Wait()
	assert.NoError(t, waitErr)
	assert.Equal(t, 0, code)
}

func TestExecCommandNonZeroExit(t *testing.T) {
	s := NewOSShell(manifest.NewDirLocator(), nil)
	h, err := s.ExecCommand(context.Background(), "job-2", "exit 7", Params{})
	require.NoError(t, err)

	code, waitErr := h.Wait()
	assert.Error(t, waitErr)
	assert.Equal(t, 7, code)
}

func TestExecCommandPassesArgsAndEnv(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	s := NewOSShell(manifest.NewDirLocator(), nil)
	h, err := s.ExecCommand(context.Background(), "job-3", `echo "$1-$GREETING" > `+out, Params{
		Args: []string{"one"},
		Env:  append(os.Environ(), "GREETING=hi"),
		Dir:  dir,
	})
	require.NoError(t, err)

	code, waitErr := h.Wait()
	require.NoError(t, waitErr)
	require.Equal(t, 0, code)

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "one-hi\n", string(contents))
}

func TestExecScriptRunsNativeScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.ManifestFileName), []byte(
		"name: pkg\nscripts:\n  greet: echo hello\n",
	), 0o644))

	s := NewOSShell(manifest.NewDirLocator(), nil)
	h, err := s.ExecScript(context.Background(), "job-4", dir, "greet", Params{})
	require.NoError(t, err)

	code, waitErr := h.Wait()
	assert.NoError(t, waitErr)
	assert.Equal(t, 0, code)
}

func TestExecScriptRejectsRunZInvocation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.ManifestFileName), []byte(
		"name: pkg\nscripts:\n  build: run-z compile\n  compile: echo compiling\n",
	), 0o644))

	s := NewOSShell(manifest.NewDirLocator(), nil)
	_, err := s.ExecScript(context.Background(), "job-5", dir, "build", Params{})
	assert.Error(t, err)
}

func TestExecScriptMissingScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.ManifestFileName), []byte(
		"name: pkg\nscripts: {}\n",
	), 0o644))

	s := NewOSShell(manifest.NewDirLocator(), nil)
	_, err := s.ExecScript(context.Background(), "job-6", dir, "absent", Params{})
	assert.Error(t, err)
}

func TestKillStopsLongRunningProcess(t *testing.T) {
	s := NewOSShell(manifest.NewDirLocator(), nil)
	h, err := s.ExecCommand(context.Background(), "job-7", "sleep 30", Params{})
	require.NoError(t, err)

	require.NoError(t, h.Kill())

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("process did not exit after Kill")
	}
	_, waitErr := h.Wait()
	assert.Error(t, waitErr)
}
