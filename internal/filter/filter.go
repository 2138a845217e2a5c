// Package filter implements the constraint-filtering engine: a pure
// function from (corpus, filter state) to an ordered filtered word list.
package filter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verte-zerg/wordfind/internal/corpus"
)

// State holds the active constraints. It is a value type: every edit
// operation returns a new State and leaves the receiver untouched. All
// letters are canonicalized to lowercase on the way in; non-letter input
// is silently dropped.
type State struct {
	positions  []rune // one slot per word position, 0 = empty
	include    []rune
	exclude    []rune
	commonOnly bool
}

// NewState returns an empty state for words of the given length.
func NewState(wordLen int) State {
	return State{positions: make([]rune, wordLen)}
}

// SetPosition places a required letter at slot i, replacing any letter
// already there. Out-of-range slots and non-letters are ignored.
func (s State) SetPosition(i int, r rune) State {
	if i < 0 || i >= len(s.positions) || !unicode.IsLetter(r) {
		return s
	}
	positions := append([]rune(nil), s.positions...)
	positions[i] = unicode.ToLower(r)
	s.positions = positions
	return s
}

// ClearPosition empties slot i.
func (s State) ClearPosition(i int) State {
	if i < 0 || i >= len(s.positions) {
		return s
	}
	positions := append([]rune(nil), s.positions...)
	positions[i] = 0
	s.positions = positions
	return s
}

// SetInclude replaces the inclusion constraint. Non-letters are dropped
// and the result is truncated to the word length; repeated letters raise
// the required occurrence count.
func (s State) SetInclude(text string) State {
	include := make([]rune, 0, len(s.positions))
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if len(include) == len(s.positions) {
			break
		}
		include = append(include, unicode.ToLower(r))
	}
	s.include = include
	return s
}

// SetExclude replaces the exclusion constraint. Non-letters and duplicate
// letters are dropped; the constraint is a set, not a multiset.
func (s State) SetExclude(text string) State {
	var exclude []rune
	seen := make(map[rune]struct{})
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		r = unicode.ToLower(r)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		exclude = append(exclude, r)
	}
	s.exclude = exclude
	return s
}

// ToggleCommonOnly flips the common-only flag.
func (s State) ToggleCommonOnly() State {
	s.commonOnly = !s.commonOnly
	return s
}

// WordLength returns the number of position slots.
func (s State) WordLength() int {
	return len(s.positions)
}

// Position returns the letter required at slot i, or 0 when the slot is
// empty or out of range.
func (s State) Position(i int) rune {
	if i < 0 || i >= len(s.positions) {
		return 0
	}
	return s.positions[i]
}

// Include returns the inclusion constraint text.
func (s State) Include() string {
	return string(s.include)
}

// Exclude returns the exclusion constraint text.
func (s State) Exclude() string {
	return string(s.exclude)
}

// CommonOnly reports whether filtering is restricted to common words.
func (s State) CommonOnly() bool {
	return s.commonOnly
}

// Apply computes the filtered word list. The base set is the common list
// when common-only is set, the full list otherwise; constraints only ever
// remove entries, so the base set's order is preserved. Conflicting
// constraints compose to an empty result, never an error.
func Apply(c *corpus.Corpus, s State) []string {
	base := c.All()
	if s.commonOnly {
		base = c.Common()
	}
	required := requiredCounts(s.include)
	out := make([]string, 0, len(base))
	for _, word := range base {
		if matches(word, s, required) {
			out = append(out, word)
		}
	}
	return out
}

// ParsePattern applies a position pattern such as "a..l." to the state.
// A '.', '_', or ' ' leaves the slot empty; a letter fills it. The
// pattern must be exactly one rune per slot.
func ParsePattern(s State, pattern string) (State, error) {
	runes := []rune(pattern)
	if len(runes) != len(s.positions) {
		return s, fmt.Errorf("pattern %q must be exactly %d characters", pattern, len(s.positions))
	}
	for i, r := range runes {
		switch {
		case r == '.' || r == '_' || r == ' ':
			s = s.ClearPosition(i)
		case unicode.IsLetter(r):
			s = s.SetPosition(i, r)
		default:
			return s, fmt.Errorf("pattern %q has invalid character %q at position %d", pattern, r, i+1)
		}
	}
	return s, nil
}

func matches(word string, s State, required map[rune]int) bool {
	runes := []rune(word)
	if len(runes) != len(s.positions) {
		// The corpus validates length at load; reaching this means the
		// corpus invariant was broken somewhere.
		panic(fmt.Sprintf("corpus word %q is not %d letters", word, len(s.positions)))
	}
	for i, want := range s.positions {
		if want != 0 && runes[i] != want {
			return false
		}
	}
	for _, r := range s.exclude {
		if strings.ContainsRune(word, r) {
			return false
		}
	}
	for r, need := range required {
		if countRune(runes, r) < need {
			return false
		}
	}
	return true
}

func requiredCounts(include []rune) map[rune]int {
	if len(include) == 0 {
		return nil
	}
	counts := make(map[rune]int, len(include))
	for _, r := range include {
		counts[r]++
	}
	return counts
}

func countRune(runes []rune, r rune) int {
	n := 0
	for _, c := range runes {
		if c == r {
			n++
		}
	}
	return n
}
