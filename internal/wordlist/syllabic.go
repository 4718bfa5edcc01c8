package wordlist

import (
	"fmt"
	"strings"
)

const (
	consonants = "bdfgklmnprstvz"
	vowels     = "aeiou"

	syllablesPerWord = 3

	// permuteStep is coprime with SyllabicCapacity (2³·5³·7³), so
	// k -> k·permuteStep mod capacity is a bijection that scatters
	// neighbouring indices across the syllable space.
	permuteStep = 104729
)

// SyllabicCapacity is the number of distinct words Syllabic can produce.
var SyllabicCapacity = pow(len(consonants)*len(vowels), syllablesPerWord)

var syllables = func() []string {
	out := make([]string, 0, len(consonants)*len(vowels))
	for _, c := range consonants {
		for _, v := range vowels {
			out = append(out, string(c)+string(v))
		}
	}
	return out
}()

// Syllabic returns n deterministic, pronounceable pseudo-words such as
// "kamiro" or "zetupa". It is the fallback dictionary when no word list file
// is configured. The same n always yields the same words in the same order,
// and the first n words for a larger n are identical.
func Syllabic(n int) ([]string, error) {
	if n <= 0 {
		return nil, ErrEmptyDictionary
	}
	if n > SyllabicCapacity {
		return nil, fmt.Errorf("wordlist: syllabic generator supports at most %d words, asked for %d", SyllabicCapacity, n)
	}

	base := len(syllables)
	words := make([]string, n)
	var b strings.Builder
	for k := 0; k < n; k++ {
		v := (k * permuteStep) % SyllabicCapacity
		b.Reset()
		for s := 0; s < syllablesPerWord; s++ {
			b.WriteString(syllables[v%base])
			v /= base
		}
		words[k] = b.String()
	}
	return words, nil
}

func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
