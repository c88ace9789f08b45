package hints

import (
	"strings"

	"github.com/josephlewis42/pipesh/core/shell"
)

// Builtins returns an entry for each shell builtin, sorted by name.
func Builtins() []Entry {
	var out []Entry
	for _, name := range shell.BuiltinNames() {
		out = append(out, MustEntry(name, name))
	}
	return out
}

// Registry is an immutable, ordered set of hints.
type Registry struct {
	entries []Entry
}

// NewRegistry creates a registry from entries in priority order. Entries with
// a display text that was already registered are dropped.
func NewRegistry(entries ...Entry) *Registry {
	seen := make(map[string]bool)
	r := &Registry{}
	for _, e := range entries {
		if seen[e.Display] {
			continue
		}
		seen[e.Display] = true
		r.entries = append(r.entries, e)
	}
	return r
}

// Hint returns the suggestion for text with the cursor at byte offset cursor.
// Hints are only given for non-empty text with the cursor at the end.
func (r *Registry) Hint(text string, cursor int) (Entry, bool) {
	if text == "" || cursor != len(text) {
		return Entry{}, false
	}

	for _, e := range r.entries {
		if strings.HasPrefix(e.Display, text) {
			return e.Suffix(cursor), true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the registered entries in priority order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
