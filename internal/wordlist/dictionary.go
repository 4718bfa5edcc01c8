// Package wordlist holds the word dictionary used to spell cell ids, together
// with loaders for the on-disk formats and built-in lists.
//
// A Dictionary is built once at startup and then only read, so it needs no
// locking. Its ordering is part of the address format: reordering, adding or
// removing words changes what every previously issued address means.
package wordlist

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"wordgrid/internal/domain/geoerr"
)

var (
	ErrEmptyDictionary = errors.New("wordlist: dictionary has no words")
)

// Dictionary is an immutable, ordered list of unique lowercase words.
//
// Go Learning Note — Precomputed Reverse Index:
// WordAt is a slice index (O(1)) and IndexOf is a map lookup (O(1)). The map is
// built once in New and never written again; concurrent reads of a map are
// safe in Go as long as no goroutine writes to it.
type Dictionary struct {
	words []string
	index map[string]int
}

// New validates words and builds a Dictionary. Entries are normalized
// (trimmed, lowercased) before the uniqueness check, so "Apple" and "apple "
// collide. Empty entries and entries containing whitespace or dots are
// rejected because they cannot round-trip through a dotted address.
func New(words []string) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}

	d := &Dictionary{
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	for i, raw := range words {
		w := Normalize(raw)
		if w == "" {
			return nil, fmt.Errorf("wordlist: entry %d is empty", i)
		}
		if strings.ContainsFunc(w, func(r rune) bool { return unicode.IsSpace(r) || r == '.' }) {
			return nil, fmt.Errorf("wordlist: entry %d (%q) contains whitespace or '.'", i, w)
		}
		if prev, dup := d.index[w]; dup {
			return nil, fmt.Errorf("wordlist: duplicate word %q at entries %d and %d", w, prev, i)
		}
		d.words[i] = w
		d.index[w] = i
	}
	return d, nil
}

// Normalize lowercases and trims a word the same way for storage and lookup.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Size returns W, the number of words.
func (d *Dictionary) Size() int {
	return len(d.words)
}

// WordAt returns the word at index i. Like slice indexing it panics when i is
// outside [0, Size()); the codec never produces such an index.
func (d *Dictionary) WordAt(i int) string {
	return d.words[i]
}

// IndexOf returns the position of word after normalization.
func (d *Dictionary) IndexOf(word string) (int, error) {
	w := Normalize(word)
	i, ok := d.index[w]
	if !ok {
		return 0, &geoerr.UnknownWordError{Word: w}
	}
	return i, nil
}
