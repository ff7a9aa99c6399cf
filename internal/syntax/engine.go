package syntax

import "strings"

// Engine drives candidate recognition over an argv slice using a chain of
// syntax handlers and a layered table of readers.
type Engine struct {
	syntaxes []SyntaxFunc
	readers  map[string][]Reader
}

// NewEngine builds an Engine from an ordered syntax handler chain and one or
// more reader layers. Layers are not overridden by later ones — every
// reader registered for a given name, across every layer, is tried in the
// order its layer was supplied, until one recognizes the candidate.
func NewEngine(syntaxes []SyntaxFunc, layers ...map[string]Reader) *Engine {
	e := &Engine{syntaxes: syntaxes, readers: make(map[string][]Reader)}
	for _, layer := range layers {
		for name, reader := range layer {
			e.readers[name] = append(e.readers[name], reader)
		}
	}
	return e
}

// wildcardFor returns the wildcard reader-table key for name's class.
func wildcardFor(name string) string {
	switch {
	case strings.HasPrefix(name, "--"):
		return "--*"
	case strings.HasPrefix(name, "-"):
		return "-*"
	default:
		return "*"
	}
}

// readersFor returns the readers registered for name, trying the exact name
// first and falling back to the wildcard for name's class.
func (e *Engine) readersFor(name string) []Reader {
	if rs, ok := e.readers[name]; ok {
		return rs
	}
	if wc := wildcardFor(name); wc != name {
		return e.readers[wc]
	}
	return nil
}

// Parse scans argv to completion, returning the accumulated Recognized
// value sets. It returns an UnknownOption error, unwinding immediately, the
// moment a position cannot be recognized by any candidate (including via
// retry and wildcard fallback), or if a deferred option's callback fails.
func (e *Engine) Parse(argv []string) (Recognized, error) {
	results := make(Recognized)
	var deferrals []deferredCall
	anyRecognized := false

	for len(argv) > 0 {
		remaining, err := e.recognizeOne(argv, results, &deferrals, &anyRecognized)
		if err != nil {
			return nil, err
		}
		argv = remaining
	}

	for _, d := range deferrals {
		if err := d.fn(); err != nil {
			return nil, &UnknownOption{Name: d.name}
		}
	}

	return results, nil
}

// recognizeOne resolves a single argv position, returning the argv tail
// that remains once the winning candidate's own consumption is accounted
// for. It recurses on itself (not on the outer position loop) when a
// candidate triggers a replacement retry.
func (e *Engine) recognizeOne(argv []string, results Recognized, deferrals *[]deferredCall, anyRecognized *bool) ([]string, error) {
	var candidates []Candidate
	for _, syn := range e.syntaxes {
		candidates = append(candidates, syn(argv)...)
	}

	for _, cand := range candidates {
		readers := e.readersFor(cand.Name)
		for _, reader := range readers {
			m := &Match{
				name:      cand.Name,
				bound:     cand.Bound,
				tail:      cand.Tail,
				deferrals: deferrals,
				results:   results,
			}
			reader(m)
			if m.recognized {
				*anyRecognized = true
				return cand.Tail[m.consumed:], nil
			}
		}
		if cand.Retry && !*anyRecognized {
			expanded := make([]string, 0, 1+len(cand.Bound)+len(cand.Tail))
			expanded = append(expanded, cand.Name)
			expanded = append(expanded, cand.Bound...)
			expanded = append(expanded, cand.Tail...)
			return e.recognizeOne(expanded, results, deferrals, anyRecognized)
		}
	}

	name := argv[0]
	if len(candidates) > 0 {
		name = candidates[0].Name
	}
	return nil, &UnknownOption{Name: name}
}
