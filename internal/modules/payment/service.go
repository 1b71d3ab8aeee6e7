package payment

import (
	"context"
	"errors"
	"strings"

	"courtbook/internal/config"
	"courtbook/internal/domain"
	"courtbook/internal/pkg/payhere"

	"github.com/google/uuid"
)

var (
	ErrNotConfigured  = errors.New("payhere credentials are not configured")
	ErrMissingOrderID = errors.New("order id is required")
)

type Service struct {
	bookings bookingStore
	audit    notificationLog
	notifs   paymentEventSender
	loggerf  func(format string, args ...interface{})

	merchantID     string
	merchantSecret string
	currency       string
}

func NewService(bookings bookingStore, audit notificationLog, notifs paymentEventSender, gateway config.PayHereConfig, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings:       bookings,
		audit:          audit,
		notifs:         notifs,
		loggerf:        loggerf,
		merchantID:     gateway.MerchantID,
		merchantSecret: gateway.MerchantSecret,
		currency:       gateway.Currency,
	}
}

// GenerateHash issues the request-signing hash for a pending payment. Pure
// computation over configuration; no writes, identical inputs always yield
// the identical hash.
func (s *Service) GenerateHash(req HashRequest) (*HashResponse, error) {
	if s.merchantID == "" || s.merchantSecret == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(req.OrderID) == "" {
		return nil, ErrMissingOrderID
	}

	amount, err := payhere.FormatAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = s.currency
	}

	hash := payhere.GenerateHash(s.merchantID, req.OrderID, amount, currency, s.merchantSecret)
	return &HashResponse{
		Hash:       hash,
		MerchantID: s.merchantID,
		Amount:     amount,
		Currency:   currency,
	}, nil
}

// HandleNotification authenticates a gateway callback and applies its
// outcome to the booking. It never fails: every condition is reported
// in-band so the endpoint can answer HTTP 200 unconditionally. The amount
// is verified exactly as the gateway sent it, never reformatted.
func (s *Service) HandleNotification(ctx context.Context, n GatewayNotification, rawBody string) NotifyResponse {
	verified := payhere.VerifySignature(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, s.merchantSecret, n.MD5Sig)
	s.loggerf("level=info msg=payhere notification order_id=%s status_code=%s signature_valid=%t", n.OrderID, n.StatusCode, verified)

	updated := false
	if verified && isOrderID(n.OrderID) {
		status, payState := MapStatusCode(n.StatusCode)
		bookingID, err := s.bookings.UpdateStatusByOrderID(ctx, n.OrderID, status, payState)
		switch {
		case err != nil:
			s.loggerf("level=error msg=failed to update booking from notification order_id=%s err=%v", n.OrderID, err)
		case bookingID == 0:
			s.loggerf("level=error msg=no booking matched notification order_id=%s", n.OrderID)
		default:
			updated = true
			if s.notifs != nil && (payState == domain.PaymentPaid || payState == domain.PaymentFailed) {
				_ = s.notifs.NotifyPaymentOutcome(ctx, bookingID, n.OrderID, payState)
			}
		}
	}

	if s.audit != nil {
		rec := &domain.PaymentNotification{
			OrderID:    n.OrderID,
			MerchantID: n.MerchantID,
			Amount:     n.Amount,
			Currency:   n.Currency,
			StatusCode: n.StatusCode,
			Verified:   verified,
			Updated:    updated,
			RawBody:    rawBody,
		}
		if err := s.audit.Create(ctx, rec); err != nil {
			s.loggerf("level=error msg=failed to record payment notification order_id=%s err=%v", n.OrderID, err)
		}
	}

	return NotifyResponse{
		Verified:   verified,
		OrderID:    n.OrderID,
		StatusCode: n.StatusCode,
		Updated:    updated,
	}
}

// MapStatusCode translates a gateway status code into booking state.
// Unknown codes are treated as still-pending, not as failures.
func MapStatusCode(code string) (domain.BookingStatus, domain.PaymentStatus) {
	switch code {
	case "2":
		return domain.BookingConfirmed, domain.PaymentPaid
	case "0":
		return domain.BookingPending, domain.PaymentPending
	case "-1", "-2", "-3":
		return domain.BookingCancelled, domain.PaymentFailed
	default:
		return domain.BookingPending, domain.PaymentPending
	}
}

// Order ids are UUIDs minted at booking creation; anything else in a
// notification is not ours and must not reach the store.
func isOrderID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
