package booking

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"courtbook/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// The venue is open the same hours every day; per-court schedules are not a
// thing the business has asked for yet.
const (
	openHour  = 6
	closeHour = 23
)

type Service struct {
	bookings BookingRepository
	courts   CourtReader
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, courts CourtReader, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		courts:   courts,
		notifs:   notifs,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.EndTime.Before(req.StartTime) || req.EndTime.Equal(req.StartTime) {
		return nil, ErrValidation
	}
	if req.StartTime.Before(time.Now()) {
		return nil, ErrValidation
	}

	ok, err := s.bookings.CheckAvailability(ctx, req.CourtID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	pricePerHour, err := s.courts.GetPriceByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	durationHours := req.EndTime.Sub(req.StartTime).Hours()
	total := durationHours * pricePerHour
	total = math.Round(total*100) / 100

	b := &domain.Booking{
		OrderID:       uuid.NewString(),
		CourtID:       req.CourtID,
		UserID:        req.UserID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TotalPrice:    total,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		Notes:         req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_bookings_no_overlap" {
			return nil, ErrOverbooking
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]BookingDetails, error) {
	rows, err := s.bookings.GetUserBookingsWithDetails(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingDetails{
			ID:            r.ID,
			OrderID:       r.OrderID,
			Status:        r.Status,
			PaymentStatus: r.PaymentStatus,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			TotalPrice:    r.TotalPrice,
			CourtID:       r.CourtID,
			CourtName:     r.CourtName,
			Sport:         r.Sport,
		})
	}
	return out, nil
}

// GetCourtAvailability returns the free slots of a court on a given day:
// venue open hours minus confirmed/pending bookings.
func (s *Service) GetCourtAvailability(ctx context.Context, courtID int64, dateStr string) (*AvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	open := time.Date(day.Year(), day.Month(), day.Day(), openHour, 0, 0, 0, time.UTC)
	close := time.Date(day.Year(), day.Month(), day.Day(), closeHour, 0, 0, 0, time.UTC)

	busyRepo, err := s.bookings.GetBusySlotsForCourt(ctx, courtID, open, close)
	if err != nil {
		return nil, err
	}

	busy := make([]TimeSlot, 0, len(busyRepo))
	for _, b := range busyRepo {
		busy = append(busy, TimeSlot{Start: b.Start, End: b.End})
	}

	return &AvailabilityResponse{
		CourtID:   courtID,
		Date:      dateStr,
		OpenSlots: subtractBusy(open, close, busy),
	}, nil
}

// CancelBooking cancels with a mandatory reason. Customers may only cancel
// their own bookings; admins may cancel any. Terminal states stay terminal.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorUserID int64, actorRole, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if actorRole != string(domain.RoleAdmin) && b.UserID != actorUserID {
		return nil, ErrForbidden
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, b.ID, b.OrderID, reason)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

func subtractBusy(open, close time.Time, busy []TimeSlot) []TimeSlot {
	if len(busy) == 0 {
		return []TimeSlot{{Start: open, End: close}}
	}

	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })

	merged := make([]TimeSlot, 0, len(busy))
	for _, s := range busy {
		if s.End.Before(open) || !s.Start.Before(close) {
			continue
		}
		if s.Start.Before(open) {
			s.Start = open
		}
		if s.End.After(close) {
			s.End = close
		}
		if !s.End.After(s.Start) {
			continue
		}

		if len(merged) == 0 {
			merged = append(merged, s)
			continue
		}
		last := merged[len(merged)-1]
		if !s.Start.After(last.End) {
			if s.End.After(last.End) {
				last.End = s.End
				merged[len(merged)-1] = last
			}
		} else {
			merged = append(merged, s)
		}
	}

	cur := open
	out := make([]TimeSlot, 0)
	for _, b := range merged {
		if b.Start.After(cur) {
			out = append(out, TimeSlot{Start: cur, End: b.Start})
		}
		if b.End.After(cur) {
			cur = b.End
		}
		if !cur.Before(close) {
			break
		}
	}
	if cur.Before(close) {
		out = append(out, TimeSlot{Start: cur, End: close})
	}
	return out
}
