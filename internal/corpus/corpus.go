// Package corpus loads and validates the puzzle word lists.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultWordLength is the puzzle word length.
const DefaultWordLength = 5

// MalformedWordError reports a word list entry that is not exactly the
// expected number of letters.
type MalformedWordError struct {
	Path   string
	Line   int
	Word   string
	Length int
}

func (e *MalformedWordError) Error() string {
	return fmt.Sprintf("%s:%d: word %q is not exactly %d letters", e.Path, e.Line, e.Word, e.Length)
}

// Corpus holds the full word list and the common-words subset. It is
// immutable after construction. Words are canonicalized to lowercase;
// callers uppercase for display.
type Corpus struct {
	wordLen  int
	all      []string
	common   []string
	isCommon map[string]struct{}
}

// New builds a corpus from already-validated word slices. Words are
// lowercased; order is preserved.
func New(all, common []string, wordLen int) *Corpus {
	c := &Corpus{
		wordLen:  wordLen,
		all:      make([]string, 0, len(all)),
		common:   make([]string, 0, len(common)),
		isCommon: make(map[string]struct{}, len(common)),
	}
	for _, word := range all {
		c.all = append(c.all, strings.ToLower(word))
	}
	for _, word := range common {
		word = strings.ToLower(word)
		c.common = append(c.common, word)
		c.isCommon[word] = struct{}{}
	}
	return c
}

// Load reads the full and common word lists with the default word length.
func Load(allPath, commonPath string) (*Corpus, error) {
	return LoadWithLength(allPath, commonPath, DefaultWordLength)
}

// LoadWithLength reads both word lists, requiring every entry to be exactly
// wordLen letters. The common list is a subset of the full list by data
// convention only; that relationship is not enforced here.
func LoadWithLength(allPath, commonPath string, wordLen int) (*Corpus, error) {
	all, err := readWords(allPath, wordLen)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("word list is empty: %s", allPath)
	}
	common, err := readWords(commonPath, wordLen)
	if err != nil {
		return nil, err
	}
	return New(all, common, wordLen), nil
}

// All returns the full word list in source-file order.
func (c *Corpus) All() []string {
	return c.all
}

// Common returns the common-words list in source-file order.
func (c *Corpus) Common() []string {
	return c.common
}

// IsCommon reports whether the word is in the common subset. Matching is
// case-insensitive.
func (c *Corpus) IsCommon(word string) bool {
	_, ok := c.isCommon[strings.ToLower(word)]
	return ok
}

// WordLength returns the length every corpus word was validated against.
func (c *Corpus) WordLength() int {
	return c.wordLen
}

func readWords(path string, wordLen int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	line := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if utf8.RuneCountInString(word) != wordLen {
			return nil, &MalformedWordError{Path: path, Line: line, Word: word, Length: wordLen}
		}
		words = append(words, strings.ToLower(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
