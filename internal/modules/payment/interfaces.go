package payment

import (
	"context"

	"courtbook/internal/domain"
)

type bookingStore interface {
	UpdateStatusByOrderID(ctx context.Context, orderID string, status domain.BookingStatus, payment domain.PaymentStatus) (int64, error)
}

type notificationLog interface {
	Create(ctx context.Context, n *domain.PaymentNotification) error
}

type paymentEventSender interface {
	NotifyPaymentOutcome(ctx context.Context, bookingID int64, orderID string, payment domain.PaymentStatus) error
}
