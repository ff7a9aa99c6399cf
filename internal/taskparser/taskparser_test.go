package taskparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-runz/runz/internal/taskspec"
)

func refNames(pre []taskspec.Prerequisite) []string {
	var out []string
	for _, p := range pre {
		if p.TaskRef != nil {
			out = append(out, p.TaskRef.Task)
		}
	}
	return out
}

func TestParseNative(t *testing.T) {
	spec, err := Parse("echo hello | tee log")
	require.NoError(t, err)
	assert.True(t, spec.IsNative())
}

func TestParseNativeEnvExpansion(t *testing.T) {
	spec, err := Parse(`run-z "${HOME}/bin/x"`)
	require.NoError(t, err)
	assert.True(t, spec.IsNative())
}

func TestParseCommaParallelGroups(t *testing.T) {
	spec, err := Parse("run-z dep1,dep2, dep3 dep4")
	require.NoError(t, err)
	require.Len(t, spec.Pre, 4)
	assert.Equal(t, []string{"dep1", "dep2", "dep3", "dep4"}, refNames(spec.Pre))
	assert.False(t, spec.Pre[0].TaskRef.Parallel)
	assert.True(t, spec.Pre[1].TaskRef.Parallel)
	assert.True(t, spec.Pre[2].TaskRef.Parallel)
	assert.False(t, spec.Pre[3].TaskRef.Parallel)
	assert.Empty(t, spec.Args)
}

func TestParseShorthandArgsAndThen(t *testing.T) {
	spec, err := Parse("run-z dep1 dep2/-a dep3 --then command")
	require.NoError(t, err)
	require.Len(t, spec.Pre, 3)
	assert.Equal(t, []string{"dep1", "dep2", "dep3"}, refNames(spec.Pre))
	assert.Equal(t, []string{"-a"}, spec.Pre[1].TaskRef.Args)
	assert.Equal(t, []string{"--then", "command"}, spec.Args)
}

func TestParseAttributes(t *testing.T) {
	spec, err := Parse("run-z attr1=val1 attr2= =attr3 attr3=val3")
	require.NoError(t, err)
	assert.Empty(t, spec.Pre)
	assert.Equal(t, []string{"val1"}, spec.Attrs.Get("attr1"))
	assert.Equal(t, []string{""}, spec.Attrs.Get("attr2"))
	assert.Equal(t, []string{"", "val3"}, spec.Attrs.Get("attr3"))
}

func TestParseInvalidArgBeforeTask(t *testing.T) {
	_, err := Parse("run-z //-a// task")
	var invalid *InvalidTask
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "//-a// task", invalid.CommandLine)
	assert.Equal(t, 0, invalid.Position)
}

func TestParseInvalidArgAfterComma(t *testing.T) {
	_, err := Parse("run-z task1, //-a// task2")
	var invalid *InvalidTask
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "task1, //-a// task2", invalid.CommandLine)
	assert.Equal(t, 7, invalid.Position)
}

func TestParsePackageSelector(t *testing.T) {
	spec, err := Parse("run-z ./pkg task")
	require.NoError(t, err)
	require.Len(t, spec.Pre, 2)
	require.True(t, spec.Pre[0].IsPackageSelector())
	assert.Equal(t, "./pkg", spec.Pre[0].PackageSelector.Host)
	require.True(t, spec.Pre[1].IsTaskRef())
	assert.Equal(t, "task", spec.Pre[1].TaskRef.Task)
}

func TestCache(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)
	spec1, err := c.Parse("run-z dep1")
	require.NoError(t, err)
	spec2, err := c.Parse("run-z dep1")
	require.NoError(t, err)
	assert.Equal(t, spec1, spec2)
}
