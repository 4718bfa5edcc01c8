package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"wordgrid/internal/config"
	"wordgrid/internal/geo"
	"wordgrid/internal/platform/logger"
	"wordgrid/internal/repository"
	"wordgrid/internal/repository/memory"
	"wordgrid/internal/repository/postgres"
	"wordgrid/internal/repository/redisstore"
	"wordgrid/internal/wordlist"
)

// buildCodebook loads the dictionary and builds the grid in parallel. At 3 m
// the grid's row table is the slow part of startup.
func buildCodebook(ctx context.Context, cfg *config.Config, log *logger.Logger) (*geo.Grid, *wordlist.Dictionary, error) {
	var (
		grid *geo.Grid
		dict *wordlist.Dictionary
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		var err error
		grid, err = geo.NewGrid(cfg.Grid.ResolutionMeters, cfg.Grid.EarthRadiusMeters)
		if err != nil {
			return fmt.Errorf("build grid: %w", err)
		}
		log.Debug("grid built", "rows", grid.RowCount(), "took", time.Since(start))
		return nil
	})
	g.Go(func() error {
		var err error
		dict, err = loadDictionary(cfg.Dictionary)
		if err != nil {
			return fmt.Errorf("load dictionary: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return grid, dict, nil
}

// loadDictionary reads the configured word list file, or generates Size
// words when no path is set.
func loadDictionary(cfg config.DictionaryConfig) (*wordlist.Dictionary, error) {
	if cfg.Path != "" {
		return wordlist.Load(cfg.Path)
	}
	words, err := wordlist.Syllabic(cfg.Size)
	if err != nil {
		return nil, err
	}
	return wordlist.New(words)
}

// openHistory connects the configured history backend. It returns a nil
// repository for "none".
func openHistory(ctx context.Context, cfg config.HistoryConfig, log *logger.Logger) (repository.ConversionRepository, error) {
	switch cfg.Backend {
	case config.HistoryNone:
		log.Info("conversion history disabled")
		return nil, nil
	case config.HistoryMemory:
		return memory.NewConversionRepository(cfg.Capacity), nil
	case config.HistoryPostgres:
		repo, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres history: %w", err)
		}
		log.Info("postgres history ready")
		return repo, nil
	case config.HistoryRedis:
		repo, err := redisstore.New(ctx, cfg.RedisURL, cfg.Capacity)
		if err != nil {
			return nil, fmt.Errorf("open redis history: %w", err)
		}
		log.Info("redis history ready")
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}
