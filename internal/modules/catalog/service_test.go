package catalog

import (
	"context"
	"testing"

	"courtbook/internal/domain"
	"courtbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCourtRepository struct {
	mock.Mock
}

func (m *MockCourtRepository) Create(ctx context.Context, c *domain.Court) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 11
	}
	return args.Error(0)
}

func (m *MockCourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func (m *MockCourtRepository) GetAll(ctx context.Context, f repository.CourtFilters) ([]domain.Court, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Court), args.Get(1).(int64), args.Error(2)
}

func (m *MockCourtRepository) Update(ctx context.Context, c *domain.Court) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourtRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func TestService_ListCourts_FilterMapping(t *testing.T) {
	mockCourts := new(MockCourtRepository)
	indoor := true
	mockCourts.On("GetAll", mock.Anything, repository.CourtFilters{
		Sport:    "futsal",
		Indoor:   &indoor,
		MaxPrice: 5000,
		Limit:    10,
		Offset:   20,
	}).Return([]domain.Court{{ID: 1, Name: "Arena A"}}, int64(1), nil)

	service := NewService(mockCourts)

	courts, total, err := service.ListCourts(context.Background(), ListCourtsQuery{
		Sport:    "futsal",
		Indoor:   &indoor,
		MaxPrice: 5000,
		Page:     3,
		Limit:    10,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, courts, 1)
	mockCourts.AssertExpectations(t)
}

func TestService_ListCourts_UnknownSport(t *testing.T) {
	service := NewService(new(MockCourtRepository))

	_, _, err := service.ListCourts(context.Background(), ListCourtsQuery{Sport: "cricket"})
	assert.ErrorIs(t, err, ErrInvalidSport)
}

func TestService_CreateCourt(t *testing.T) {
	mockCourts := new(MockCourtRepository)
	mockCourts.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
		return c.Sport == domain.SportBadminton && c.IsActive
	})).Return(nil)

	service := NewService(mockCourts)

	court, err := service.CreateCourt(context.Background(), CreateCourtRequest{
		Name:         "Court 2",
		Sport:        "badminton",
		Indoor:       true,
		PricePerHour: 1500,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), court.ID)

	_, err = service.CreateCourt(context.Background(), CreateCourtRequest{Name: "X", Sport: "chess", PricePerHour: 1})
	assert.ErrorIs(t, err, ErrInvalidSport)

	_, err = service.CreateCourt(context.Background(), CreateCourtRequest{Sport: "tennis", PricePerHour: 1})
	assert.ErrorIs(t, err, ErrInvalidCourt)
}

func TestService_UpdateCourt_PartialPatch(t *testing.T) {
	mockCourts := new(MockCourtRepository)
	mockCourts.On("GetByID", mock.Anything, int64(11)).Return(&domain.Court{
		ID:           11,
		Name:         "Court 2",
		Sport:        domain.SportBadminton,
		PricePerHour: 1500,
	}, nil)
	mockCourts.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
		return c.Name == "Court 2" && c.PricePerHour == 1800
	})).Return(nil)

	service := NewService(mockCourts)

	price := 1800.0
	court, err := service.UpdateCourt(context.Background(), 11, UpdateCourtRequest{PricePerHour: &price})
	assert.NoError(t, err)
	assert.Equal(t, 1800.0, court.PricePerHour)
}

func TestService_GetCourt_NotFound(t *testing.T) {
	mockCourts := new(MockCourtRepository)
	mockCourts.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockCourts)

	_, err := service.GetCourt(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
