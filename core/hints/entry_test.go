package hints

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleEntry_Suffix() {
	e := MustEntry("git status", "git")

	// Strip what the user already typed.
	fmt.Printf("%#v\n", e.Suffix(2))
	// The completable part never goes negative.
	fmt.Printf("%#v\n", e.Suffix(5))

	// Output: hints.Entry{Display:"t status", CompleteUpTo:1}
	// hints.Entry{Display:"tatus", CompleteUpTo:0}
}

func TestNewEntry(t *testing.T) {
	cases := map[string]struct {
		text         string
		completeUpTo string
		want         Entry
		wantErr      bool
	}{
		"full":       {"exit", "exit", Entry{"exit", 4}, false},
		"partial":    {"exit", "ex", Entry{"exit", 2}, false},
		"none":       {"exit", "", Entry{"exit", 0}, false},
		"not-prefix": {"exit", "xit", Entry{}, true},
		"too-long":   {"ex", "exit", Entry{}, true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := NewEntry(tc.text, tc.completeUpTo)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrNotPrefix)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMustEntry_panics(t *testing.T) {
	assert.Panics(t, func() { MustEntry("cd", "ls") })
}

func TestEntry_Completion(t *testing.T) {
	completion, ok := MustEntry("exit", "ex").Completion()
	assert.True(t, ok)
	assert.Equal(t, "ex", completion)

	_, ok = MustEntry("exit", "").Completion()
	assert.False(t, ok)
}

func TestEntry_Suffix(t *testing.T) {
	e := MustEntry("exit", "exit")

	assert.Equal(t, Entry{"exit", 4}, e.Suffix(0))
	assert.Equal(t, Entry{"it", 2}, e.Suffix(2))
	assert.Equal(t, Entry{"", 0}, e.Suffix(4))
	assert.Equal(t, Entry{"", 0}, e.Suffix(10))
}
