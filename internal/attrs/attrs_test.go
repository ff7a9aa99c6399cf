package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	a := New()
	a.Append("env", "dev")
	a.Append("env", "")
	a.Append("env", "prod")

	assert.Equal(t, []string{"dev", "", "prod"}, a.Get("env"))
	assert.True(t, a.Has("env"))
	assert.False(t, a.Has("missing"))
}

func TestLast(t *testing.T) {
	a := New()
	_, ok := a.Last("if-present")
	assert.False(t, ok)

	a.Append("if-present", "")
	a.Append("if-present", "true")
	v, ok := a.Last("if-present")
	require.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestClone(t *testing.T) {
	a := New()
	a.Append("x", "1")
	clone := a.Clone()
	clone.Append("x", "2")

	assert.Equal(t, []string{"1"}, a.Get("x"))
	assert.Equal(t, []string{"1", "2"}, clone.Get("x"))
}

func TestMerge(t *testing.T) {
	a := New()
	a.Append("x", "1")
	b := New()
	b.Append("x", "2")
	b.Append("y", "3")

	a.Merge(b)
	assert.Equal(t, []string{"1", "2"}, a.Get("x"))
	assert.Equal(t, []string{"3"}, a.Get("y"))
}

func TestEqual(t *testing.T) {
	a := New()
	a.Append("x", "1")
	b := New()
	b.Append("x", "1")
	assert.True(t, Equal(a, b))

	b.Append("x", "2")
	assert.False(t, Equal(a, b))

	c := New()
	c.Append("z", "1")
	assert.False(t, Equal(a, c))
}
