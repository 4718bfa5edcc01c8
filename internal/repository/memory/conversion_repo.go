package memory

import (
	"context"
	"sync"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/repository"
)

// DefaultCapacity is used when NewConversionRepository is given a
// non-positive capacity.
const DefaultCapacity = 1000

// ConversionRepository keeps the most recent conversions in a fixed-size ring.
// Once full, each Save overwrites the oldest entry.
//
// Go Learning Note — sync.RWMutex:
// Save takes the write lock; Recent and Ping take the read lock so many
// /history readers can proceed in parallel. Recent returns a fresh slice;
// the ring itself never leaves the repository.
type ConversionRepository struct {
	mu    sync.RWMutex
	items []*entities.Conversion
	next  int // slot the next Save writes to
	size  int // number of filled slots
}

var _ repository.ConversionRepository = (*ConversionRepository)(nil)

func NewConversionRepository(capacity int) *ConversionRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ConversionRepository{items: make([]*entities.Conversion, capacity)}
}

func (r *ConversionRepository) Save(ctx context.Context, conversion *entities.Conversion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[r.next] = conversion
	r.next = (r.next + 1) % len(r.items)
	if r.size < len(r.items) {
		r.size++
	}
	return nil
}

func (r *ConversionRepository) Recent(ctx context.Context, limit int) ([]*entities.Conversion, error) {
	if limit <= 0 {
		return nil, repository.ErrInvalidLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit > r.size {
		limit = r.size
	}
	out := make([]*entities.Conversion, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + len(r.items)) % len(r.items)
		out = append(out, r.items[idx])
	}
	return out, nil
}

// Len returns the number of stored conversions.
func (r *ConversionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

func (r *ConversionRepository) Ping(ctx context.Context) error { return nil }

func (r *ConversionRepository) Close() error { return nil }
