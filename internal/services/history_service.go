package services

import (
	"context"
	"errors"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/platform/logger"
	"wordgrid/internal/repository"
	"wordgrid/pkg/utils"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

var ErrHistoryDisabled = errors.New("conversion history is disabled")

// HistoryService records conversions in the configured store. A nil
// repository means history is turned off: Record is a no-op and Recent
// returns ErrHistoryDisabled.
type HistoryService struct {
	repo    repository.ConversionRepository
	backend string
	log     *logger.Logger
}

func NewHistoryService(repo repository.ConversionRepository, backend string, log *logger.Logger) *HistoryService {
	if log == nil {
		log = logger.Discard()
	}
	return &HistoryService{repo: repo, backend: backend, log: log}
}

// Enabled reports whether a store is configured.
func (s *HistoryService) Enabled() bool {
	return s.repo != nil
}

// Backend returns the configured backend name.
func (s *HistoryService) Backend() string {
	return s.backend
}

// Record saves a conversion. A store failure is logged and swallowed: the
// caller already has a valid answer and history is not part of it.
func (s *HistoryService) Record(ctx context.Context, direction entities.ConversionDirection, coord entities.Coordinate, addr entities.WordAddress) {
	if s.repo == nil {
		return
	}
	conversion := entities.NewConversion(utils.GenerateID(), direction, coord, addr)
	if err := s.repo.Save(ctx, conversion); err != nil {
		s.log.WithContext(ctx).StoreError("save", s.backend, err)
	}
}

// Recent returns up to limit conversions, newest first. The limit is clamped
// to [1, MaxHistoryLimit]; zero or negative selects DefaultHistoryLimit.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]*entities.Conversion, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.Recent(ctx, limit)
}

// Ping checks the store. It returns nil when history is disabled.
func (s *HistoryService) Ping(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Ping(ctx)
}
