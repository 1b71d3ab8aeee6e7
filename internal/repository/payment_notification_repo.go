package repository

import (
	"context"
	"time"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type PaymentNotificationRepository struct {
	db *gorm.DB
}

func NewPaymentNotificationRepository(db *gorm.DB) *PaymentNotificationRepository {
	return &PaymentNotificationRepository{db: db}
}

type paymentNotificationModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	OrderID    string    `gorm:"column:order_id;index"`
	MerchantID string    `gorm:"column:merchant_id"`
	Amount     string    `gorm:"column:amount"`
	Currency   string    `gorm:"column:currency"`
	StatusCode string    `gorm:"column:status_code"`
	Verified   bool      `gorm:"column:verified"`
	Updated    bool      `gorm:"column:updated"`
	RawBody    string    `gorm:"column:raw_body;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (paymentNotificationModel) TableName() string { return "payment_notifications" }

func (r *PaymentNotificationRepository) Create(ctx context.Context, n *domain.PaymentNotification) error {
	m := paymentNotificationModel{
		OrderID:    n.OrderID,
		MerchantID: n.MerchantID,
		Amount:     n.Amount,
		Currency:   n.Currency,
		StatusCode: n.StatusCode,
		Verified:   n.Verified,
		Updated:    n.Updated,
		RawBody:    n.RawBody,
		CreatedAt:  time.Now().UTC(),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

func (r *PaymentNotificationRepository) ListByOrderID(ctx context.Context, orderID string) ([]domain.PaymentNotification, error) {
	var models []paymentNotificationModel
	tx := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.PaymentNotification, 0, len(models))
	for _, m := range models {
		out = append(out, domain.PaymentNotification{
			ID:         m.ID,
			OrderID:    m.OrderID,
			MerchantID: m.MerchantID,
			Amount:     m.Amount,
			Currency:   m.Currency,
			StatusCode: m.StatusCode,
			Verified:   m.Verified,
			Updated:    m.Updated,
			RawBody:    m.RawBody,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out, nil
}
