package catalog

import (
	"context"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

type CourtRepository interface {
	Create(ctx context.Context, c *domain.Court) error
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	GetAll(ctx context.Context, f repository.CourtFilters) ([]domain.Court, int64, error)
	Update(ctx context.Context, c *domain.Court) error
	SetActive(ctx context.Context, id int64, active bool) error
}
