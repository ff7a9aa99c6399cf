// Package syntax implements the pluggable option/syntax recognition engine
// shared by the task grammar parser and the top-level CLI. It drives a list
// of syntax handlers that turn a raw argv tail into candidate option
// interpretations, then tries registered readers against each candidate in
// order, supporting replacement retries, second-pass deferral, and wildcard
// fallback readers.
package syntax

// Candidate is one possible interpretation of the current argv position, as
// produced by a SyntaxFunc. Several candidates may be produced for the same
// position (e.g. a short option token can be read as an exact name, as a
// one-letter option with an inline parameter, or as a one-letter cluster);
// the engine tries each in order until one is recognized.
type Candidate struct {
	// Name is the option name this candidate would be recognized under.
	Name string
	// Bound holds values the syntax handler already extracted from the
	// current token itself (e.g. the "value" half of "--name=value").
	Bound []string
	// Tail is the remaining argv after the token(s) this candidate's own
	// syntax consumed, available for a reader to pull further values from.
	Tail []string
	// Retry marks this candidate as eligible for replacement: if no reader
	// recognizes it, the engine restarts recognition for this position using
	// [Name, Bound..., Tail...] as the new argv, provided no option has been
	// recognized anywhere in the parse yet.
	Retry bool
}

// SyntaxFunc maps the current argv position to zero or more Candidates.
type SyntaxFunc func(argv []string) []Candidate

// Reader is invoked with a Match for a Candidate whose name resolved to it
// (exactly or via wildcard). The reader should call Values, Rest, or Defer
// to claim the option; calling none of them leaves the candidate
// unrecognized.
type Reader func(m *Match)

// looksLikeOption reports whether tok should stop a greedy Values() scan.
func looksLikeOption(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}
