package booking

import (
	"context"
	"time"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

type BookingRepository interface {
	CheckAvailability(ctx context.Context, courtID int64, start, end time.Time) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetBusySlotsForCourt(ctx context.Context, courtID int64, start, end time.Time) ([]repository.BusySlot, error)
	GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]repository.UserBookingDetails, error)
	CancelWithReason(ctx context.Context, bookingID int64, reason string) error
}

type CourtReader interface {
	GetPriceByID(ctx context.Context, id int64) (float64, error)
}

type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, bookingID int64, orderID, reason string) error
}
