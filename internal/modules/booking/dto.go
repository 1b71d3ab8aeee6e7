package booking

import "time"

type CreateBookingRequest struct {
	CourtID   int64     `json:"court_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes"`

	// Set from the authenticated session, never from the body.
	UserID int64 `json:"-"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type BookingDetails struct {
	ID            int64     `json:"id"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalPrice    float64   `json:"total_price"`
	CourtID       int64     `json:"court_id"`
	CourtName     string    `json:"court_name"`
	Sport         string    `json:"sport"`
}

type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	CourtID   int64      `json:"court_id"`
	Date      string     `json:"date"`
	OpenSlots []TimeSlot `json:"open_slots"`
}
