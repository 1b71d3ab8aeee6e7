package repository

import (
	"context"
	"time"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	OrderID            string     `gorm:"column:order_id;uniqueIndex"`
	CourtID            int64      `gorm:"column:court_id;index"`
	UserID             int64      `gorm:"column:user_id;index"`
	StartTime          time.Time  `gorm:"column:start_time"`
	EndTime            time.Time  `gorm:"column:end_time"`
	TotalPrice         float64    `gorm:"column:total_price"`
	Status             string     `gorm:"column:status"`
	PaymentStatus      string     `gorm:"column:payment_status"`
	Notes              *string    `gorm:"column:notes"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		OrderID:            m.OrderID,
		CourtID:            m.CourtID,
		UserID:             m.UserID,
		StartTime:          m.StartTime,
		EndTime:            m.EndTime,
		TotalPrice:         m.TotalPrice,
		Status:             domain.BookingStatus(m.Status),
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, reason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		OrderID:            b.OrderID,
		CourtID:            b.CourtID,
		UserID:             b.UserID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CancelledAt:        b.CancelledAt,
	}
}

type BusySlot struct {
	Start time.Time `gorm:"column:start_time"`
	End   time.Time `gorm:"column:end_time"`
}

type UserBookingDetails struct {
	ID            int64     `gorm:"column:id"`
	OrderID       string    `gorm:"column:order_id"`
	Status        string    `gorm:"column:status"`
	PaymentStatus string    `gorm:"column:payment_status"`
	StartTime     time.Time `gorm:"column:start_time"`
	EndTime       time.Time `gorm:"column:end_time"`
	TotalPrice    float64   `gorm:"column:total_price"`
	CourtID       int64     `gorm:"column:court_id"`
	CourtName     string    `gorm:"column:court_name"`
	Sport         string    `gorm:"column:sport"`
}

type BookingFilters struct {
	Status string
	Date   string // YYYY-MM-DD
	Limit  int
	Offset int
}

type BookingStats struct {
	TotalBookings     int64   `gorm:"column:total_bookings"`
	ConfirmedBookings int64   `gorm:"column:confirmed_bookings"`
	CancelledBookings int64   `gorm:"column:cancelled_bookings"`
	PaidRevenue       float64 `gorm:"column:paid_revenue"`
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) CheckAvailability(ctx context.Context, courtID int64, start, end time.Time) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE court_id = ?
  AND status NOT IN ('cancelled')
  AND start_time < ?
  AND end_time > ?
`
	tx := r.db.WithContext(ctx).Raw(q, courtID, end, start).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

func (r *BookingRepository) GetBusySlotsForCourt(ctx context.Context, courtID int64, start, end time.Time) ([]BusySlot, error) {
	var rows []BusySlot
	q := `
SELECT start_time, end_time
FROM bookings
WHERE court_id = ?
  AND status NOT IN ('cancelled')
  AND start_time < ?
  AND end_time > ?
ORDER BY start_time
`
	tx := r.db.WithContext(ctx).Raw(q, courtID, end, start).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID int64, limit, offset int) ([]UserBookingDetails, error) {
	var rows []UserBookingDetails
	q := `
SELECT b.id, b.order_id, b.status, b.payment_status, b.start_time, b.end_time, b.total_price,
       c.id AS court_id, c.name AS court_name, c.sport
FROM bookings b
JOIN courts c ON c.id = b.court_id
WHERE b.user_id = ?
ORDER BY b.start_time DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, userID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now().UTC()}).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{"payment_status": string(status), "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.GetByID(ctx, bookingID)
}

// UpdateStatusByOrderID performs the single conditional write driven by a
// verified gateway notification: update the row whose order_id matches, then
// read the id back to confirm the write landed. Returns 0 when no row matched.
func (r *BookingRepository) UpdateStatusByOrderID(ctx context.Context, orderID string, status domain.BookingStatus, payment domain.PaymentStatus) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":         string(status),
			"payment_status": string(payment),
			"updated_at":     time.Now().UTC(),
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, nil
	}

	var id int64
	if err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("id").
		Where("order_id = ?", orderID).
		Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"status":              string(domain.BookingCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        now,
			"updated_at":          now,
		}).Error
}

func (r *BookingRepository) ListAll(ctx context.Context, f BookingFilters) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Date != "" {
		day, err := time.Parse("2006-01-02", f.Date)
		if err == nil {
			q = q.Where("start_time >= ? AND start_time < ?", day, day.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []bookingModel
	if err := q.Order("start_time DESC").Limit(f.Limit).Offset(f.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

func (r *BookingRepository) Stats(ctx context.Context) (*BookingStats, error) {
	var s BookingStats
	q := `
SELECT COUNT(1) AS total_bookings,
       COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0) AS confirmed_bookings,
       COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled_bookings,
       COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN total_price ELSE 0 END), 0) AS paid_revenue
FROM bookings
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}
