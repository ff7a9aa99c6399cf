package executor

import (
	"sort"
	"strings"

	"github.com/go-runz/runz/internal/attrs"
)

const attrValueSeparator = "\x1e"

// envFromAttrs renders a Call's merged attrs as RUN_Z_ATTR_<NAME>
// assignments, multi-valued attributes joined by the ASCII record
// separator.
func envFromAttrs(a attrs.Attrs) []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)

	env := make([]string, 0, len(names))
	for _, name := range names {
		key := "RUN_Z_ATTR_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		env = append(env, key+"="+strings.Join(a.Get(name), attrValueSeparator))
	}
	return env
}
