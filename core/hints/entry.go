package hints

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotPrefix is returned when the completable part of an entry isn't a
// prefix of its display text.
var ErrNotPrefix = errors.New("completion is not a prefix of the hint")

// Entry is a single completion candidate.
//
// Display holds the full candidate text and CompleteUpTo the number of bytes
// of it that are inserted when the hint is accepted.
type Entry struct {
	Display      string
	CompleteUpTo int
}

// NewEntry creates an entry for text whose accepted completion is
// completeUpTo.
func NewEntry(text, completeUpTo string) (Entry, error) {
	if !strings.HasPrefix(text, completeUpTo) {
		return Entry{}, fmt.Errorf("%q, %q: %w", text, completeUpTo, ErrNotPrefix)
	}
	return Entry{
		Display:      text,
		CompleteUpTo: len(completeUpTo),
	}, nil
}

// MustEntry is like NewEntry but panics on error.
func MustEntry(text, completeUpTo string) Entry {
	e, err := NewEntry(text, completeUpTo)
	if err != nil {
		panic(err)
	}
	return e
}

// Completion returns the text inserted when the hint is accepted.
func (e Entry) Completion() (string, bool) {
	if e.CompleteUpTo > 0 {
		return e.Display[:e.CompleteUpTo], true
	}
	return "", false
}

// Suffix returns the part of the entry after the first strip bytes.
func (e Entry) Suffix(strip int) Entry {
	if strip > len(e.Display) {
		strip = len(e.Display)
	}
	upTo := e.CompleteUpTo - strip
	if upTo < 0 {
		upTo = 0
	}
	return Entry{
		Display:      e.Display[strip:],
		CompleteUpTo: upTo,
	}
}
