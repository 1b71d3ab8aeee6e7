package domain

import "time"

// PaymentNotification is an append-only audit record of every gateway
// callback received, verified or not.
type PaymentNotification struct {
	ID         int64     `json:"id"`
	OrderID    string    `json:"order_id"`
	MerchantID string    `json:"merchant_id"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	StatusCode string    `json:"status_code"`
	Verified   bool      `json:"verified"`
	Updated    bool      `json:"updated"`
	RawBody    string    `json:"raw_body,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
