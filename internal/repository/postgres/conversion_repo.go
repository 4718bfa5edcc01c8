// Package postgres stores conversion history in PostgreSQL through a pgx
// connection pool. The schema is embedded and applied with goose on startup.
package postgres

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/repository"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ConversionRepository implements repository.ConversionRepository on a
// conversions table.
type ConversionRepository struct {
	pool *pgxpool.Pool
}

var _ repository.ConversionRepository = (*ConversionRepository)(nil)

// NewPool opens a pool for databaseURL and pings it.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// Migrate brings the schema up to date.
//
// Go Learning Note — embed.FS + goose:
// goose works on database/sql, so the pgx pool is wrapped with
// stdlib.OpenDBFromPool for the duration of the migration. The SQL files are
// compiled into the binary with //go:embed, which keeps the server a single
// deployable file.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// New connects to databaseURL, runs migrations and returns a repository that
// owns the pool.
func New(ctx context.Context, databaseURL string) (*ConversionRepository, error) {
	pool, err := NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &ConversionRepository{pool: pool}, nil
}

func (r *ConversionRepository) Save(ctx context.Context, c *entities.Conversion) error {
	query := `
		INSERT INTO conversions (id, direction, latitude, longitude, word1, word2, word3, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.pool.Exec(ctx, query,
		c.ID, string(c.Direction),
		c.Coordinate.Latitude, c.Coordinate.Longitude,
		c.Address.Word1, c.Address.Word2, c.Address.Word3,
		c.CreatedAt,
	); err != nil {
		return fmt.Errorf("save conversion: %w", err)
	}
	return nil
}

func (r *ConversionRepository) Recent(ctx context.Context, limit int) ([]*entities.Conversion, error) {
	if limit <= 0 {
		return nil, repository.ErrInvalidLimit
	}

	query := `
		SELECT id::text, direction, latitude, longitude, word1, word2, word3, created_at
		FROM conversions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	out := make([]*entities.Conversion, 0, limit)
	for rows.Next() {
		var (
			c         entities.Conversion
			direction string
		)
		if err := rows.Scan(
			&c.ID, &direction,
			&c.Coordinate.Latitude, &c.Coordinate.Longitude,
			&c.Address.Word1, &c.Address.Word2, &c.Address.Word3,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		c.Direction = entities.ConversionDirection(direction)
		c.CreatedAt = c.CreatedAt.UTC()
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return out, nil
}

func (r *ConversionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *ConversionRepository) Close() error {
	r.pool.Close()
	return nil
}
