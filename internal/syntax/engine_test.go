package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valuesReader(max int) Reader {
	return func(m *Match) { m.Values(max) }
}

func restReader() Reader {
	return func(m *Match) { m.Rest() }
}

func TestLongOptionBasic(t *testing.T) {
	e := NewEngine(Defaults(), map[string]Reader{
		"--name": valuesReader(1),
		"*":      valuesReader(0),
	})
	got, err := e.Parse([]string{"--name", "foo", "bar"})
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, got["--name"])
}

func TestLongOptionInlineValue(t *testing.T) {
	e := NewEngine(Defaults(), map[string]Reader{
		"--name": valuesReader(-1),
	})
	got, err := e.Parse([]string{"--name=foo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, got["--name"])
}

// TestShortOptionDisambiguation mirrors the documented priority order for a
// "-test" token when readers exist for "-t", "-t*", and "-test": the exact
// full token wins, then the prefix+parameter form, then the bare letter
// with its remainder reprocessed as a new cluster.
func TestShortOptionDisambiguation(t *testing.T) {
	t.Run("exact wins", func(t *testing.T) {
		e := NewEngine(Defaults(), map[string]Reader{
			"-test": valuesReader(0),
			"-t*":   valuesReader(0),
			"-t":    valuesReader(0),
		})
		got, err := e.Parse([]string{"-test"})
		require.NoError(t, err)
		assert.True(t, got.has("-test"))
		assert.False(t, got.has("-t*"))
	})

	t.Run("prefix with parameter", func(t *testing.T) {
		e := NewEngine(Defaults(), map[string]Reader{
			"-t*": valuesReader(0),
			"-t":  valuesReader(0),
		})
		got, err := e.Parse([]string{"-test"})
		require.NoError(t, err)
		assert.Equal(t, []string{"est"}, got["-t*"])
	})

	t.Run("bare letter reprocesses remainder", func(t *testing.T) {
		e := NewEngine(Defaults(), map[string]Reader{
			"-t": valuesReader(0),
			"-e": valuesReader(0),
			"-s": valuesReader(0),
		})
		got, err := e.Parse([]string{"-test"})
		require.NoError(t, err)
		assert.True(t, got.has("-t"))
		assert.True(t, got.has("-e"))
		assert.True(t, got.has("-s"))
	})
}

// toShortOption turns a legacy "--old" spelling into the short form "-xy",
// so a retry hands the token back to the standard classifiers for
// reprocessing rather than to a reader keyed on the rename's own candidate.
func toShortOption(argv []string) []Candidate {
	if len(argv) > 0 && argv[0] == "--old" {
		return []Candidate{{Name: "-xy", Retry: true, Tail: argv[1:]}}
	}
	return nil
}

// TestReplacementRetry exercises the candidate retry mechanism: a syntax
// handler renames a token to one no reader recognizes directly, and
// recognition restarts against the expanded argv, where ShortOption
// decomposes it into a form ("-x*") that a registered reader does claim.
func TestReplacementRetry(t *testing.T) {
	e := NewEngine([]SyntaxFunc{toShortOption, ShortOption}, map[string]Reader{
		"-x*": valuesReader(0),
	})
	got, err := e.Parse([]string{"--old"})
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, got["-x*"])
}

// TestRetryRefusedAfterRecognition ensures retry is disabled once any
// option has already been recognized in the parse: the renamed candidate
// is left unresolved instead of being reprocessed.
func TestRetryRefusedAfterRecognition(t *testing.T) {
	e := NewEngine([]SyntaxFunc{toShortOption, LongOption, ShortOption}, map[string]Reader{
		"--first": valuesReader(0),
	})
	_, err := e.Parse([]string{"--first", "--old"})
	var unknown *UnknownOption
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "-xy", unknown.Name)
}

// TestWildcardDispatchWithZeroValues reproduces the documented scenario
// where a renamed option falls through to a wildcard "values" reader that
// asks for zero values, binding an empty value set without consuming the
// tail.
func TestWildcardDispatchWithZeroValues(t *testing.T) {
	rename := func(argv []string) []Candidate {
		if len(argv) > 0 && argv[0] == "--test" {
			return []Candidate{{Name: "--replaced", Retry: true, Tail: argv[1:]}}
		}
		return nil
	}
	e := NewEngine([]SyntaxFunc{rename, LongOption}, map[string]Reader{
		"--test": restReader(),
		"--*":    valuesReader(0),
	})

	results := make(Recognized)
	var deferrals []deferredCall
	anyRecognized := false
	remaining, err := e.recognizeOne([]string{"--test", "1", "2"}, results, &deferrals, &anyRecognized)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, remaining)
	assert.Equal(t, []string{}, results["--replaced"])
}

func TestDeferral(t *testing.T) {
	var ran []string
	e := NewEngine(Defaults(), map[string]Reader{
		"--a": func(m *Match) { m.Values(-1) },
		"--b": func(m *Match) {
			m.Defer(func(values []string) error {
				ran = append(ran, "b")
				return nil
			})
		},
		"--c": func(m *Match) {
			m.Defer(func(values []string) error {
				ran = append(ran, "c")
				return errors.New("boom")
			})
		},
	})

	_, err := e.Parse([]string{"--a", "x", "--b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ran)

	_, err = e.Parse([]string{"--c"})
	var unknown *UnknownOption
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "--c", unknown.Name)
}

func TestUnknownOption(t *testing.T) {
	e := NewEngine(Defaults(), nil)
	_, err := e.Parse([]string{"--nope"})
	var unknown *UnknownOption
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "--nope", unknown.Name)
}

func (r Recognized) has(name string) bool {
	_, ok := r[name]
	return ok
}
