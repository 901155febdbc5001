package services

import (
	"context"
	"fmt"
	"time"

	"offerdirectory/internal/domain"
)

type fetchLogService struct {
	repo           domain.FetchLogRepository
	contextTimeout time.Duration
}

func NewFetchLogService(repo domain.FetchLogRepository, timeout time.Duration) domain.FetchLogService {
	return &fetchLogService{
		repo:           repo,
		contextTimeout: timeout,
	}
}

func (s *fetchLogService) ListRecent(ctx context.Context, params domain.PaginationParams) ([]*domain.FetchAttempt, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attempts, total, err := s.repo.ListRecent(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list fetch attempts: %w", err)
	}
	return attempts, total, nil
}
