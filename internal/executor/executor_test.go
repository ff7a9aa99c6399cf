package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/go-runz/runz/internal/manifest"
	"github.com/go-runz/runz/internal/pkgmodel"
	"github.com/go-runz/runz/internal/planner"
	"github.com/go-runz/runz/internal/shell/shellmock"
)

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func mustPkg(t *testing.T, scripts map[string]string) *pkgmodel.Package {
	t.Helper()
	pkg, err := pkgmodel.New(manifest.Location("/repo/app"), &manifest.Manifest{Name: "app", Scripts: scripts}, nil, nil)
	require.NoError(t, err)
	return pkg
}

func TestRunSingleCommandSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	sh := shellmock.NewMockShell(ctrl)
	handle := shellmock.NewMockProcessHandle(ctrl)

	handle.EXPECT().Done().Return(closedChan()).AnyTimes()
	handle.EXPECT().Wait().Return(0, nil)
	sh.EXPECT().ExecScript(gomock.Any(), gomock.Any(), gomock.Any(), "build", gomock.Any()).Return(handle, nil)

	pkg := mustPkg(t, map[string]string{"build": "go build ./..."})
	task, ok := pkg.Task("build")
	require.True(t, ok)

	pl := planner.New(nil, "/repo", nil)
	plan, err := pl.Plan(context.Background(), task, nil, nil)
	require.NoError(t, err)

	ex := New(sh, 0)
	jobs, err := ex.Run(context.Background(), plan)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, JobDoneOK, jobs[0].State())
}

func TestRunPropagatesJobFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sh := shellmock.NewMockShell(ctrl)
	handle := shellmock.NewMockProcessHandle(ctrl)

	handle.EXPECT().Done().Return(closedChan()).AnyTimes()
	handle.EXPECT().Wait().Return(1, assert.AnError)
	sh.EXPECT().ExecScript(gomock.Any(), gomock.Any(), gomock.Any(), "build", gomock.Any()).Return(handle, nil)

	pkg := mustPkg(t, map[string]string{"build": "go build ./..."})
	task, ok := pkg.Task("build")
	require.True(t, ok)

	pl := planner.New(nil, "/repo", nil)
	plan, err := pl.Plan(context.Background(), task, nil, nil)
	require.NoError(t, err)

	ex := New(sh, 0)
	_, err = ex.Run(context.Background(), plan)
	require.Error(t, err)

	var failed *JobFailed
	assert.ErrorAs(t, err, &failed)
	assert.Equal(t, 1, failed.ExitCode)
}

func TestRunSkipsDependentsAfterUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sh := shellmock.NewMockShell(ctrl)
	failing := shellmock.NewMockProcessHandle(ctrl)

	failing.EXPECT().Done().Return(closedChan()).AnyTimes()
	failing.EXPECT().Wait().Return(1, nil)
	sh.EXPECT().ExecScript(gomock.Any(), gomock.Any(), gomock.Any(), "compile", gomock.Any()).Return(failing, nil)

	pkg := mustPkg(t, map[string]string{
		"build":   "run-z compile test",
		"compile": "go build ./...",
		"test":    "go test ./...",
	})
	task, ok := pkg.Task("build")
	require.True(t, ok)

	pl := planner.New(nil, "/repo", nil)
	plan, err := pl.Plan(context.Background(), task, nil, nil)
	require.NoError(t, err)

	ex := New(sh, 0)
	jobs, err := ex.Run(context.Background(), plan)
	require.Error(t, err)

	var testJob *Job
	for _, job := range jobs {
		if job.Call.Task.Name == "test" {
			testJob = job
		}
	}
	require.NotNil(t, testJob)
	assert.Equal(t, JobDoneErr, testJob.State())
	assert.True(t, testJob.Skipped)
}

func TestRunUnknownTaskFailsWithoutIfPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sh := shellmock.NewMockShell(ctrl)

	pkg := mustPkg(t, map[string]string{"build": "run-z absent"})
	task, ok := pkg.Task("build")
	require.True(t, ok)

	pl := planner.New(nil, "/repo", nil)
	plan, err := pl.Plan(context.Background(), task, nil, nil)
	require.NoError(t, err)

	ex := New(sh, 0)
	_, err = ex.Run(context.Background(), plan)
	require.Error(t, err)

	var unknown *planner.UnknownTask
	assert.ErrorAs(t, err, &unknown)
}

func TestRunUnknownTaskNoOpsWithIfPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sh := shellmock.NewMockShell(ctrl)

	pkg := mustPkg(t, map[string]string{"build": "run-z absent =if-present"})
	task, ok := pkg.Task("build")
	require.True(t, ok)

	pl := planner.New(nil, "/repo", nil)
	plan, err := pl.Plan(context.Background(), task, nil, nil)
	require.NoError(t, err)

	ex := New(sh, 0)
	_, err = ex.Run(context.Background(), plan)
	assert.NoError(t, err)
}
