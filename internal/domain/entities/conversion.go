package entities

import "time"

// ConversionDirection records which way a conversion went.
type ConversionDirection string

const (
	DirectionEncode ConversionDirection = "encode"
	DirectionDecode ConversionDirection = "decode"
)

// Conversion is one successful encode or decode kept in the history store.
// Coordinate is the resolved cell center for decodes and the caller's input
// for encodes.
type Conversion struct {
	ID         string              `json:"id"`
	Direction  ConversionDirection `json:"direction"`
	Coordinate Coordinate          `json:"coordinate"`
	Address    WordAddress         `json:"address"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NewConversion stamps a conversion with the current time.
func NewConversion(id string, direction ConversionDirection, coord Coordinate, addr WordAddress) *Conversion {
	return &Conversion{
		ID:         id,
		Direction:  direction,
		Coordinate: coord,
		Address:    addr,
		CreatedAt:  time.Now().UTC(),
	}
}
