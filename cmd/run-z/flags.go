package main

import (
	"runtime"
	"strconv"

	"github.com/go-runz/runz/internal/syntax"
)

// ambient holds the CLI's own flags: the
// package-discovery root, the process concurrency ceiling, logging
// verbosity/format, and a colorization override. Every other token on the
// command line belongs to the task grammar.
type ambient struct {
	cwd         string
	maxParallel int
	logLevel    string
	logFormat   string
	color       bool
	noColor     bool
}

func defaultAmbient() ambient {
	return ambient{cwd: ".", maxParallel: runtime.NumCPU(), logLevel: "info", logFormat: "text"}
}

// anyToken matches any token at all, bucketing it under the shared "*" name
// so it survives recognition in its original relative order, to be handed
// unparsed to the task grammar parser. It is tried after syntax.LongOption
// in the engine's candidate list, so a token naming one of this CLI's own
// ambient flags is still claimed by that flag's reader first; anyToken only
// wins when no earlier candidate recognizes the token, which is exactly
// what lets an unrelated "--"-prefixed token that belongs to the task
// grammar's own trailing arguments pass through here instead of being
// rejected as an UnknownOption.
func anyToken(argv []string) []syntax.Candidate {
	if len(argv) == 0 {
		return nil
	}
	return []syntax.Candidate{{Name: "*", Bound: []string{argv[0]}, Tail: argv[1:]}}
}

// parseAmbientFlags splits argv into this CLI's own flags and the
// remaining tokens that make up the task grammar line: the
// five ambient flags are recognized wherever they appear (not only as a
// trailing run), and everything else — package selectors, the task name,
// and its grammar args, including the "-"-prefixed tail the grammar treats
// as raw pass-through arguments — is preserved in order for the caller to
// rejoin and feed to taskparser.Parse. An unrecognized "--" option is not
// rejected here: anyToken passes it through unchanged into the task grammar
// line. The only *syntax.UnknownOption this returns (mapped to exit code 2
// at the entrypoint) is for a "--max-parallel" value that is not an integer.
func parseAmbientFlags(argv []string) (ambient, []string, error) {
	a := defaultAmbient()

	value := func(dst *string) syntax.Reader {
		return func(m *syntax.Match) {
			if v := m.Values(1); len(v) > 0 {
				*dst = v[len(v)-1]
			}
		}
	}
	flag := func(dst *bool) syntax.Reader {
		return func(m *syntax.Match) {
			m.Values(0)
			*dst = true
		}
	}
	catchAll := func(m *syntax.Match) { m.Values(0) }

	var maxParallelRaw string
	engine := syntax.NewEngine(
		[]syntax.SyntaxFunc{syntax.LongOption, anyToken},
		map[string]syntax.Reader{
			"--cwd":          value(&a.cwd),
			"--max-parallel": value(&maxParallelRaw),
			"--log-level":    value(&a.logLevel),
			"--log-format":   value(&a.logFormat),
			"--color":        flag(&a.color),
			"--no-color":     flag(&a.noColor),
			"*":              catchAll,
		},
	)

	results, err := engine.Parse(argv)
	if err != nil {
		return ambient{}, nil, err
	}

	if maxParallelRaw != "" {
		n, convErr := strconv.Atoi(maxParallelRaw)
		if convErr != nil {
			return ambient{}, nil, &syntax.UnknownOption{Name: "--max-parallel"}
		}
		a.maxParallel = n
	}

	return a, results["*"], nil
}
