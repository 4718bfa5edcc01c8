package services

import (
	"errors"
	"fmt"

	"wordgrid/internal/codec"
	"wordgrid/internal/domain/entities"
	"wordgrid/internal/geo"
	"wordgrid/internal/wordlist"
)

var (
	ErrNilGrid       = errors.New("conversion service: grid is nil")
	ErrNilDictionary = errors.New("conversion service: dictionary is nil")
)

// ConversionService is the façade the HTTP layer calls: coordinates in, three
// words out, and back. It holds only immutable state, so one instance serves
// every request concurrently without locking.
//
// Go Learning Note — Composition of Pure Parts:
// Encode is Grid → Codec → Dictionary and Decode is the same chain reversed.
// Each part validates its own inputs and returns a typed error from
// internal/domain/geoerr; the service passes those through unchanged so the
// handler can tell a bad latitude from an unknown word with errors.As.
type ConversionService struct {
	grid  *geo.Grid
	dict  *wordlist.Dictionary
	codec *codec.Codec
}

// NewConversionService checks that the dictionary can spell every cell of the
// grid (W³ ≥ N). A *geoerr.CapacityExceededError here is a configuration
// error to fail startup with; it can never happen on a request.
func NewConversionService(grid *geo.Grid, dict *wordlist.Dictionary) (*ConversionService, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if dict == nil {
		return nil, ErrNilDictionary
	}

	c, err := codec.New(dict.Size(), grid.CellCount())
	if err != nil {
		return nil, fmt.Errorf("conversion service: %w", err)
	}

	return &ConversionService{
		grid:  grid,
		dict:  dict,
		codec: c,
	}, nil
}

// Grid exposes the underlying grid for read-only queries.
func (s *ConversionService) Grid() *geo.Grid {
	return s.grid
}

// DictionarySize returns W.
func (s *ConversionService) DictionarySize() int {
	return s.dict.Size()
}

// Capacity returns W³, the number of addresses the dictionary can spell.
func (s *ConversionService) Capacity() int64 {
	return s.codec.Capacity()
}

// Encode returns the word address of the cell containing (lat, lng).
func (s *ConversionService) Encode(lat, lng float64) (entities.WordAddress, error) {
	if err := geo.ValidateCoordinate(lat, lng); err != nil {
		return entities.WordAddress{}, err
	}
	cellID, err := s.grid.CellID(lat, lng)
	if err != nil {
		return entities.WordAddress{}, err
	}
	return s.AddressOf(cellID)
}

// AddressOf spells a cell id as three words.
func (s *ConversionService) AddressOf(cellID int64) (entities.WordAddress, error) {
	t, err := s.codec.ToTriple(cellID)
	if err != nil {
		return entities.WordAddress{}, err
	}
	return entities.WordAddress{
		Word1: s.dict.WordAt(t.I1),
		Word2: s.dict.WordAt(t.I2),
		Word3: s.dict.WordAt(t.I3),
	}, nil
}

// Decode returns the center of the cell spelled by the three words. Words are
// matched case-insensitively and with surrounding whitespace ignored. Either
// the full coordinate or a single error is returned.
func (s *ConversionService) Decode(w1, w2, w3 string) (entities.Coordinate, error) {
	cellID, err := s.CellIDOf(w1, w2, w3)
	if err != nil {
		return entities.Coordinate{}, err
	}
	return s.grid.Center(cellID)
}

// CellIDOf resolves three words to a cell id. It fails with
// *geoerr.UnknownWordError for the first word not in the dictionary and with
// *geoerr.OutOfRangeError when the triple spells an id past the grid.
func (s *ConversionService) CellIDOf(w1, w2, w3 string) (int64, error) {
	var t entities.WordIndexTriple
	for _, slot := range []struct {
		word string
		dst  *int
	}{{w1, &t.I1}, {w2, &t.I2}, {w3, &t.I3}} {
		i, err := s.dict.IndexOf(slot.word)
		if err != nil {
			return 0, err
		}
		*slot.dst = i
	}

	cellID, err := s.codec.FromTriple(t)
	if err != nil {
		return 0, err
	}
	if _, err := s.grid.Cell(cellID); err != nil {
		return 0, err
	}
	return cellID, nil
}
