package admin

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type ListBookingsQuery struct {
	Status string
	Date   string
	Page   int
	Limit  int
}

type StatsResponse struct {
	TotalBookings     int64   `json:"total_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	PaidRevenue       float64 `json:"paid_revenue"`
	ConnectedAdmins   int     `json:"connected_admins"`
}
