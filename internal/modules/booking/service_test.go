package booking

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain"
	"courtbook/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CheckAvailability(ctx context.Context, courtID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, courtID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBusySlotsForCourt(ctx context.Context, courtID int64, start, end time.Time) ([]repository.BusySlot, error) {
	args := m.Called(ctx, courtID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BusySlot), args.Error(1)
}

func (m *MockBookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingDetails, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]repository.UserBookingDetails), args.Error(1)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}

type MockCourtReader struct {
	mock.Mock
}

func (m *MockCourtReader) GetPriceByID(ctx context.Context, id int64) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, bookingID int64, orderID, reason string) error {
	args := m.Called(ctx, bookingID, orderID, reason)
	return args.Error(0)
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCourts := new(MockCourtReader)

	start := time.Date(2027, 6, 15, 14, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mockCourts.On("GetPriceByID", mock.Anything, int64(10)).Return(3000.0, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), start, end).Return(true, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	mockNotifs := new(MockNotificationSender)
	mockNotifs.On("NotifyBookingCreated", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockCourts, mockNotifs)

	booking, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		CourtID:   10,
		UserID:    7,
		StartTime: start,
		EndTime:   end,
		Notes:     "Evening futsal",
	})

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, 6000.0, booking.TotalPrice)
	assert.Equal(t, domain.BookingPending, booking.Status)
	assert.Equal(t, domain.PaymentPending, booking.PaymentStatus)

	// The order id is the payment correlation key and must be UUID-shaped.
	_, err = uuid.Parse(booking.OrderID)
	assert.NoError(t, err)
}

func TestService_CreateBooking_InvalidRange(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockCourtReader), nil)

	start := time.Date(2027, 6, 15, 14, 0, 0, 0, time.UTC)
	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		CourtID:   10,
		UserID:    7,
		StartTime: start,
		EndTime:   start,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateBooking(context.Background(), CreateBookingRequest{
		CourtID:   10,
		UserID:    7,
		StartTime: time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_SlotUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCourts := new(MockCourtReader)

	mockBookings.On("CheckAvailability", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)

	service := NewService(mockBookings, mockCourts, nil)

	start := time.Date(2027, 6, 15, 14, 0, 0, 0, time.UTC)
	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		CourtID:   10,
		UserID:    7,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_CreateBooking_OverbookingConstraint(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCourts := new(MockCourtReader)

	start := time.Date(2027, 6, 15, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mockCourts.On("GetPriceByID", mock.Anything, int64(10)).Return(3000.0, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), start, end).Return(true, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23P01",
		ConstraintName: "idx_bookings_no_overlap",
	})

	service := NewService(mockBookings, mockCourts, nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		CourtID:   10,
		UserID:    7,
		StartTime: start,
		EndTime:   end,
	})
	assert.ErrorIs(t, err, ErrOverbooking)
}

func TestService_CancelBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	existing := &domain.Booking{
		ID:      5,
		OrderID: uuid.NewString(),
		UserID:  7,
		Status:  domain.BookingPending,
	}
	cancelled := &domain.Booking{ID: 5, UserID: 7, Status: domain.BookingCancelled, CancellationReason: "rain"}

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(existing, nil).Once()
	mockBookings.On("CancelWithReason", mock.Anything, int64(5), "rain").Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(cancelled, nil).Once()

	mockNotifs := new(MockNotificationSender)
	mockNotifs.On("NotifyBookingCancelled", mock.Anything, int64(5), existing.OrderID, "rain").Return(nil)

	service := NewService(mockBookings, new(MockCourtReader), mockNotifs)

	b, err := service.CancelBooking(context.Background(), 5, 7, "customer", "rain")
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	mockNotifs.AssertExpectations(t)
}

func TestService_CancelBooking_ForbiddenAndTerminal(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{ID: 5, UserID: 7, Status: domain.BookingPending}, nil)

	service := NewService(mockBookings, new(MockCourtReader), nil)

	_, err := service.CancelBooking(context.Background(), 5, 8, "customer", "nope")
	assert.ErrorIs(t, err, ErrForbidden)

	// Admins may cancel anyone's booking.
	mockBookings2 := new(MockBookingRepository)
	mockBookings2.On("GetByID", mock.Anything, int64(6)).Return(&domain.Booking{ID: 6, UserID: 7, Status: domain.BookingCancelled}, nil)
	service2 := NewService(mockBookings2, new(MockCourtReader), nil)

	_, err = service2.CancelBooking(context.Background(), 6, 1, "admin", "dup")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestSubtractBusy(t *testing.T) {
	day := time.Date(2027, 6, 15, 0, 0, 0, 0, time.UTC)
	open := day.Add(6 * time.Hour)
	close := day.Add(23 * time.Hour)

	busy := []TimeSlot{
		{Start: day.Add(10 * time.Hour), End: day.Add(12 * time.Hour)},
		{Start: day.Add(11 * time.Hour), End: day.Add(13 * time.Hour)}, // overlaps previous
		{Start: day.Add(20 * time.Hour), End: day.Add(21 * time.Hour)},
	}

	slots := subtractBusy(open, close, busy)

	assert.Equal(t, []TimeSlot{
		{Start: open, End: day.Add(10 * time.Hour)},
		{Start: day.Add(13 * time.Hour), End: day.Add(20 * time.Hour)},
		{Start: day.Add(21 * time.Hour), End: close},
	}, slots)
}

func TestSubtractBusy_FreeDay(t *testing.T) {
	open := time.Date(2027, 6, 15, 6, 0, 0, 0, time.UTC)
	close := time.Date(2027, 6, 15, 23, 0, 0, 0, time.UTC)

	slots := subtractBusy(open, close, nil)
	assert.Equal(t, []TimeSlot{{Start: open, End: close}}, slots)
}
