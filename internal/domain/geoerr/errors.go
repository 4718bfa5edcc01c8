// Package geoerr defines the typed failures of the word-address codec.
//
// Every caller-correctable failure carries the offending field, word or cell
// id so the HTTP layer can report a precise message. Match them with
// errors.As; none of them wrap another error.
package geoerr

import "fmt"

// ValidationError reports a coordinate component outside its declared range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnknownWordError reports a word that is not part of the dictionary. Word
// holds the normalized (lowercased, trimmed) form.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q", e.Word)
}

// OutOfRangeError reports a cell id outside [0, Limit). It means the word
// triple was built for a different dictionary or grid.
type OutOfRangeError struct {
	CellID int64
	Limit  int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cell id %d out of range [0, %d)", e.CellID, e.Limit)
}

// CapacityExceededError is a configuration failure: a dictionary of
// DictionarySize words cannot address CellCount cells with three positions.
// It is raised while wiring the service, never on a request.
type CapacityExceededError struct {
	DictionarySize int
	CellCount      int64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("dictionary of %d words cannot address %d cells (need W^3 >= N)", e.DictionarySize, e.CellCount)
}
