package admin

import (
	"context"

	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

type Service struct {
	users    UserStore
	bookings BookingStore
	audit    PaymentAuditLog
	notifs   BookingNotifier
}

func NewService(users UserStore, bookings BookingStore, audit PaymentAuditLog, notifs BookingNotifier) *Service {
	return &Service{
		users:    users,
		bookings: bookings,
		audit:    audit,
		notifs:   notifs,
	}
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, total, nil
}

func (s *Service) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if role != domain.RoleCustomer && role != domain.RoleAdmin {
			return nil, ErrInvalidRole
		}
		user.Role = role
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

func (s *Service) ListBookings(ctx context.Context, q ListBookingsQuery) ([]domain.Booking, int64, error) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := 0
	if q.Page > 1 {
		offset = (q.Page - 1) * limit
	}

	return s.bookings.ListAll(ctx, repository.BookingFilters{
		Status: q.Status,
		Date:   q.Date,
		Limit:  limit,
		Offset: offset,
	})
}

// UpdateBookingStatus moves a booking between lifecycle states. Only pending
// bookings can be confirmed or cancelled by hand; paid confirmations arrive
// through the payment gateway callback instead.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID int64, req UpdateBookingStatusRequest) (*domain.Booking, error) {
	target := domain.BookingStatus(req.Status)
	switch target {
	case domain.BookingConfirmed, domain.BookingCancelled, domain.BookingCompleted:
	default:
		return nil, ErrUnknownStatus
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	allowed := map[domain.BookingStatus][]domain.BookingStatus{
		domain.BookingPending:   {domain.BookingConfirmed, domain.BookingCancelled},
		domain.BookingConfirmed: {domain.BookingCancelled, domain.BookingCompleted},
	}

	ok := false
	for _, next := range allowed[b.Status] {
		if next == target {
			ok = true
			break
		}
	}
	if !ok {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, string(target)); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		switch target {
		case domain.BookingConfirmed:
			_ = s.notifs.NotifyBookingConfirmed(ctx, b.ID, b.OrderID)
		case domain.BookingCancelled:
			_ = s.notifs.NotifyBookingCancelled(ctx, b.ID, b.OrderID, req.Reason)
		}
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) Stats(ctx context.Context) (*repository.BookingStats, error) {
	return s.bookings.Stats(ctx)
}

// PaymentTrail resolves a gateway order id to its booking and the full
// notification history recorded for it, for reconciling gateway reports.
func (s *Service) PaymentTrail(ctx context.Context, orderID string) (*domain.Booking, []domain.PaymentNotification, error) {
	b, err := s.bookings.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	trail, err := s.audit.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return b, trail, nil
}

// MarkRefunded records an out-of-band refund. Only paid bookings can be
// refunded; the money movement itself happens in the gateway dashboard.
func (s *Service) MarkRefunded(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus != domain.PaymentPaid {
		return nil, ErrNotRefundable
	}

	return s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentRefunded)
}
