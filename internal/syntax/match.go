package syntax

// Match is the mutable handle a Reader uses to claim a Candidate's option
// and optionally pull further values out of the remaining argv tail.
type Match struct {
	name       string
	bound      []string
	tail       []string
	consumed   int
	recognized bool
	deferrals  *[]deferredCall
	results    Recognized
}

// Name returns the option name this match was recognized under.
func (m *Match) Name() string { return m.name }

// Values consumes up to max following tokens from the tail, stopping early
// at the next option-like token. max < 0 means "until the next option-like
// token or end of tail" (unbounded). Calling Values(0) claims the option
// with no additional tokens — the idiom for a boolean/presence-only flag.
// Either way, calling Values marks the candidate recognized and appends the
// candidate's pre-bound values plus whatever was consumed to the option's
// value sequence.
func (m *Match) Values(max int) []string {
	limit := len(m.tail)
	if max >= 0 && max < limit {
		limit = max
	}
	got := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		if looksLikeOption(m.tail[i]) {
			break
		}
		got = append(got, m.tail[i])
	}
	m.consumed = len(got)
	m.recognized = true
	m.bind(got)
	return got
}

// Rest consumes every remaining token in the tail, regardless of shape.
func (m *Match) Rest() []string {
	got := append([]string{}, m.tail...)
	m.consumed = len(got)
	m.recognized = true
	m.bind(got)
	return got
}

// Defer registers fn to run after the whole argv has been scanned, once the
// option's final value set (from every call site during this parse) is
// known. A deferred option counts as recognized immediately; if fn returns
// an error when it eventually runs, the parse fails with UnknownOption.
func (m *Match) Defer(fn func(values []string) error) {
	m.recognized = true
	name := m.name
	results := m.results
	*m.deferrals = append(*m.deferrals, deferredCall{
		name: name,
		fn:   func() error { return fn(results[name]) },
	})
}

func (m *Match) bind(extra []string) {
	combined := make([]string, 0, len(m.bound)+len(extra))
	combined = append(combined, m.bound...)
	combined = append(combined, extra...)
	if existing, ok := m.results[m.name]; ok {
		m.results[m.name] = append(existing, combined...)
		return
	}
	m.results[m.name] = combined
}

// deferredCall pairs a registered deferral with the option name it claimed,
// for error reporting if it never resolves.
type deferredCall struct {
	name string
	fn   func() error
}

// Recognized is the per-parse value-set accumulator: option name to the
// ordered sequence of values bound to it across every call site.
type Recognized map[string][]string
