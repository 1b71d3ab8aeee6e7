package notification

import (
	"context"
	"time"

	"courtbook/internal/domain"
)

// Service adapts booking lifecycle changes into hub events. Consumers hold
// it behind small interfaces and treat a nil sender as a no-op.
type Service struct {
	hub *Hub
}

func NewService(hub *Hub) *Service {
	return &Service{hub: hub}
}

func (s *Service) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	s.hub.Broadcast(Event{
		Type:      TypeBookingCreated,
		BookingID: b.ID,
		OrderID:   b.OrderID,
		CourtID:   b.CourtID,
		Status:    string(b.Status),
		At:        time.Now().UTC(),
	})
	return nil
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, bookingID int64, orderID string) error {
	s.hub.Broadcast(Event{
		Type:      TypeBookingConfirmed,
		BookingID: bookingID,
		OrderID:   orderID,
		Status:    string(domain.BookingConfirmed),
		At:        time.Now().UTC(),
	})
	return nil
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, bookingID int64, orderID, reason string) error {
	s.hub.Broadcast(Event{
		Type:      TypeBookingCancelled,
		BookingID: bookingID,
		OrderID:   orderID,
		Status:    string(domain.BookingCancelled),
		Reason:    reason,
		At:        time.Now().UTC(),
	})
	return nil
}

func (s *Service) NotifyPaymentOutcome(ctx context.Context, bookingID int64, orderID string, payment domain.PaymentStatus) error {
	evType := TypeBookingPaid
	if payment != domain.PaymentPaid {
		evType = TypePaymentFailed
	}
	s.hub.Broadcast(Event{
		Type:      evType,
		BookingID: bookingID,
		OrderID:   orderID,
		Status:    string(payment),
		At:        time.Now().UTC(),
	})
	return nil
}
