package wordlist

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordgrid/internal/domain/geoerr"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		wantErr string
	}{
		{name: "valid", words: []string{"apple", "banana", "cherry"}},
		{name: "normalizes before uniqueness", words: []string{"Apple", " apple"}, wantErr: "duplicate word"},
		{name: "empty list", words: nil, wantErr: "no words"},
		{name: "blank entry", words: []string{"apple", "   "}, wantErr: "entry 1 is empty"},
		{name: "inner space", words: []string{"ice cream"}, wantErr: "whitespace"},
		{name: "dot", words: []string{"a.b"}, wantErr: "'.'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.words)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.words), d.Size())
		})
	}
}

func TestDictionaryLookup(t *testing.T) {
	d, err := New([]string{"Apple", "banana", "cherry"})
	require.NoError(t, err)

	assert.Equal(t, "apple", d.WordAt(0))
	assert.Equal(t, "cherry", d.WordAt(2))

	for _, in := range []string{"apple", "APPLE", "  Apple\t"} {
		i, err := d.IndexOf(in)
		require.NoError(t, err, in)
		assert.Equal(t, 0, i, in)
	}

	_, err = d.IndexOf(" NotAWord ")
	var unknown *geoerr.UnknownWordError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "notaword", unknown.Word)
}

func TestFruitsIsValidDictionary(t *testing.T) {
	d, err := New(Fruits())
	require.NoError(t, err)
	assert.Equal(t, 99, d.Size())
}

func TestSyllabic(t *testing.T) {
	words, err := Syllabic(40000)
	require.NoError(t, err)
	require.Len(t, words, 40000)

	d, err := New(words)
	require.NoError(t, err, "generated words must be unique")
	assert.Equal(t, 40000, d.Size())

	for _, w := range words[:100] {
		assert.Len(t, w, 6)
		assert.Equal(t, strings.ToLower(w), w)
	}

	prefix, err := Syllabic(10)
	require.NoError(t, err)
	assert.Equal(t, words[:10], prefix, "smaller lists are prefixes of larger ones")
}

func TestSyllabicLimits(t *testing.T) {
	_, err := Syllabic(0)
	assert.ErrorIs(t, err, ErrEmptyDictionary)

	_, err = Syllabic(SyllabicCapacity + 1)
	assert.Error(t, err)

	all, err := Syllabic(SyllabicCapacity)
	require.NoError(t, err)
	_, err = New(all)
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	for _, path := range []string{"testdata/small.txt", "testdata/small.yaml"} {
		t.Run(path, func(t *testing.T) {
			d, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 3, d.Size())
			assert.Equal(t, "banana", d.WordAt(1))
		})
	}

	_, err := Load("testdata/missing.txt")
	assert.Error(t, err)
}

func TestParseTextSkipsCommentsAndBlanks(t *testing.T) {
	words, err := ParseText(strings.NewReader("# header\n\none\n  two  \n#three\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, words)
}
