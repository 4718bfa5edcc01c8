package entities

import "strings"

// WordIndexTriple holds three dictionary indices. Order matters: I1 carries
// weight W², I2 weight W and I3 weight 1, so permuting the triple addresses a
// different cell.
type WordIndexTriple struct {
	I1 int
	I2 int
	I3 int
}

// WordAddress is the human-facing form of a cell: three lowercase dictionary
// words in positional order.
type WordAddress struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
	Word3 string `json:"word3"`
}

// Words returns the address as a slice in positional order.
func (a WordAddress) Words() []string {
	return []string{a.Word1, a.Word2, a.Word3}
}

// String renders the address in the conventional dotted form.
func (a WordAddress) String() string {
	return strings.Join(a.Words(), ".")
}
