package hints

import (
	"github.com/abiosoft/readline"
)

// Completer offers the registry's hint when tab is pressed.
type Completer struct {
	Registry *Registry
}

var _ readline.AutoCompleter = (*Completer)(nil)

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if pos < len(line) {
		return nil, 0
	}

	text := string(line)
	hint, ok := c.Registry.Hint(text, len(text))
	if !ok {
		return nil, 0
	}

	completion, ok := hint.Completion()
	if !ok {
		return nil, 0
	}

	return [][]rune{[]rune(completion)}, pos
}
