package notification

import "time"

// Event type constants
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingPaid      = "booking.paid"
	TypePaymentFailed    = "booking.payment_failed"
)

// Event is pushed to connected admin dashboards over websocket.
type Event struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	CourtID   int64     `json:"court_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}
