// Package repository declares the storage contracts the services depend on.
// Implementations live in subpackages, one per backend.
package repository

import (
	"context"
	"errors"

	"wordgrid/internal/domain/entities"
)

// ErrInvalidLimit is returned by Recent for a non-positive limit.
var ErrInvalidLimit = errors.New("repository: limit must be positive")

// ConversionRepository keeps a log of successful conversions.
//
// Go Learning Note — Interfaces at the Consumer:
// The services package depends on this interface, not on pgx or go-redis.
// main picks a backend from config and hands it over, and tests pass the
// in-memory implementation.
type ConversionRepository interface {
	// Save appends one conversion.
	Save(ctx context.Context, conversion *entities.Conversion) error
	// Recent returns up to limit conversions, newest first.
	Recent(ctx context.Context, limit int) ([]*entities.Conversion, error)
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases connections. Calling it more than once is allowed.
	Close() error
}
