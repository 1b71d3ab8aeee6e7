package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID int64 `json:"id"`
	// OrderID correlates the booking with payment gateway requests and
	// notifications. Generated once at creation, never reused.
	OrderID       string        `json:"order_id"`
	CourtID       int64         `json:"court_id" validate:"required"`
	UserID        int64         `json:"user_id" validate:"required"`
	StartTime     time.Time     `json:"start_time" validate:"required"`
	EndTime       time.Time     `json:"end_time" validate:"required"`
	TotalPrice    float64       `json:"total_price" validate:"required,gte=0"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes,omitempty"`

	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Court *Court `json:"court,omitempty" gorm:"foreignKey:CourtID"`
}
