package catalog

import (
	"context"
	"errors"

	"courtbook/internal/domain"
	"courtbook/internal/pkg/validator"
	"courtbook/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	courts CourtRepository
}

func NewService(courts CourtRepository) *Service {
	return &Service{courts: courts}
}

func (s *Service) ListCourts(ctx context.Context, q ListCourtsQuery) ([]domain.Court, int64, error) {
	if q.Sport != "" {
		if _, ok := domain.ParseSport(q.Sport); !ok {
			return nil, 0, ErrInvalidSport
		}
	}

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := 0
	if q.Page > 1 {
		offset = (q.Page - 1) * limit
	}

	return s.courts.GetAll(ctx, repository.CourtFilters{
		Sport:    q.Sport,
		Indoor:   q.Indoor,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Limit:    limit,
		Offset:   offset,
	})
}

func (s *Service) GetCourt(ctx context.Context, id int64) (*domain.Court, error) {
	c, err := s.courts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) CreateCourt(ctx context.Context, req CreateCourtRequest) (*domain.Court, error) {
	sport, ok := domain.ParseSport(req.Sport)
	if !ok {
		return nil, ErrInvalidSport
	}

	c := &domain.Court{
		Name:         req.Name,
		Sport:        sport,
		Surface:      req.Surface,
		Indoor:       req.Indoor,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Photos:       req.Photos,
		IsActive:     true,
	}

	if fields := validator.Validate(c); fields != nil {
		return nil, ErrInvalidCourt
	}

	if err := s.courts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCourt(ctx context.Context, id int64, req UpdateCourtRequest) (*domain.Court, error) {
	c, err := s.courts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Surface != nil {
		c.Surface = *req.Surface
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.PricePerHour != nil {
		c.PricePerHour = *req.PricePerHour
	}
	if req.Photos != nil {
		c.Photos = req.Photos
	}

	if fields := validator.Validate(c); fields != nil {
		return nil, ErrInvalidCourt
	}

	if err := s.courts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) SetCourtActive(ctx context.Context, id int64, active bool) error {
	if _, err := s.GetCourt(ctx, id); err != nil {
		return err
	}
	return s.courts.SetActive(ctx, id, active)
}
