// Package redisstore stores conversion history as a capped Redis list of JSON
// documents, newest at the head.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/repository"
)

// DefaultKey is the list the repository writes to.
const DefaultKey = "wordgrid:conversions"

// ConversionRepository implements repository.ConversionRepository with LPUSH
// and LTRIM, so the list never grows beyond capacity entries.
type ConversionRepository struct {
	client   *redis.Client
	key      string
	capacity int64
}

var _ repository.ConversionRepository = (*ConversionRepository)(nil)

// New parses redisURL (redis://[:password@]host:port/db), pings the server and
// returns a repository capped at capacity entries.
func New(ctx context.Context, redisURL string, capacity int) (*ConversionRepository, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewWithClient(client, DefaultKey, capacity), nil
}

// NewWithClient wraps an existing client. A non-positive capacity keeps 1000
// entries.
func NewWithClient(client *redis.Client, key string, capacity int) *ConversionRepository {
	if capacity <= 0 {
		capacity = 1000
	}
	return &ConversionRepository{client: client, key: key, capacity: int64(capacity)}
}

// Save pushes and trims in one MULTI/EXEC so readers never see the list over
// capacity.
func (r *ConversionRepository) Save(ctx context.Context, c *entities.Conversion) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode conversion: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, r.key, payload)
		pipe.LTrim(ctx, r.key, 0, r.capacity-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save conversion: %w", err)
	}
	return nil
}

func (r *ConversionRepository) Recent(ctx context.Context, limit int) ([]*entities.Conversion, error) {
	if limit <= 0 {
		return nil, repository.ErrInvalidLimit
	}

	raw, err := r.client.LRange(ctx, r.key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}

	out := make([]*entities.Conversion, 0, len(raw))
	for _, item := range raw {
		var c entities.Conversion
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			return nil, fmt.Errorf("decode conversion: %w", err)
		}
		out = append(out, &c)
	}
	return out, nil
}

func (r *ConversionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *ConversionRepository) Close() error {
	return r.client.Close()
}
