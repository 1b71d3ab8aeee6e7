package admin

import (
	"context"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	Delete(ctx context.Context, id int64) error
}

type BookingStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error)
	ListAll(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, int64, error)
	Stats(ctx context.Context) (*repository.BookingStats, error)
}

// PaymentAuditLog reads the raw gateway notification history.
type PaymentAuditLog interface {
	ListByOrderID(ctx context.Context, orderID string) ([]domain.PaymentNotification, error)
}

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, bookingID int64, orderID string) error
	NotifyBookingCancelled(ctx context.Context, bookingID int64, orderID, reason string) error
}
