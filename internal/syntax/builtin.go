package syntax

import "strings"

// LongOption recognizes tokens of the form --name or --name=value.
func LongOption(argv []string) []Candidate {
	if len(argv) == 0 || !strings.HasPrefix(argv[0], "--") {
		return nil
	}
	tok := argv[0]
	name := tok
	var bound []string
	if idx := strings.IndexByte(tok, '='); idx >= 0 {
		name = tok[:idx]
		bound = []string{tok[idx+1:]}
	}
	return []Candidate{{Name: name, Bound: bound, Tail: argv[1:]}}
}

// ShortOption recognizes a single-dash token as up to three alternative
// candidates, tried in priority order by the engine: the exact token as a
// name, a one-letter prefix carrying the remainder as an inline parameter
// (looked up under "<prefix>*"), and a bare one-letter cluster that pushes
// the remainder back as a new token to reprocess.
func ShortOption(argv []string) []Candidate {
	if len(argv) == 0 {
		return nil
	}
	tok := argv[0]
	if !strings.HasPrefix(tok, "-") || strings.HasPrefix(tok, "--") || len(tok) < 2 {
		return nil
	}
	rest := argv[1:]
	candidates := []Candidate{{Name: tok, Tail: rest}}
	if len(tok) > 2 {
		prefix := tok[:2]
		param := tok[2:]
		candidates = append(candidates,
			Candidate{Name: prefix + "*", Bound: []string{param}, Tail: rest},
			Candidate{Name: prefix, Tail: append([]string{"-" + param}, rest...)},
		)
	}
	return candidates
}

// Positional recognizes any token that does not look like an option,
// surfacing it under the "*" wildcard name with the token itself pre-bound
// as its value.
func Positional(argv []string) []Candidate {
	if len(argv) == 0 || looksLikeOption(argv[0]) {
		return nil
	}
	return []Candidate{{Name: "*", Bound: []string{argv[0]}, Tail: argv[1:]}}
}

// Defaults is the built-in syntax handler chain: long options, short
// options, then verbatim positionals.
func Defaults() []SyntaxFunc {
	return []SyntaxFunc{LongOption, ShortOption, Positional}
}
