package repository

import (
	"context"
	"encoding/json"
	"time"

	"courtbook/internal/domain"

	"gorm.io/gorm"
)

type CourtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) *CourtRepository {
	return &CourtRepository{db: db}
}

type courtModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Sport        string    `gorm:"column:sport;index"`
	Surface      string    `gorm:"column:surface"`
	Indoor       bool      `gorm:"column:indoor"`
	Description  string    `gorm:"column:description;type:text"`
	PricePerHour float64   `gorm:"column:price_per_hour"`
	Photos       string    `gorm:"column:photos;type:text"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (courtModel) TableName() string { return "courts" }

func toDomainCourt(m courtModel) *domain.Court {
	var photos []string
	if m.Photos != "" {
		_ = json.Unmarshal([]byte(m.Photos), &photos)
	}
	return &domain.Court{
		ID:           m.ID,
		Name:         m.Name,
		Sport:        domain.Sport(m.Sport),
		Surface:      m.Surface,
		Indoor:       m.Indoor,
		Description:  m.Description,
		PricePerHour: m.PricePerHour,
		Photos:       photos,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toCourtModel(c *domain.Court) courtModel {
	var photos string
	if len(c.Photos) > 0 {
		raw, _ := json.Marshal(c.Photos)
		photos = string(raw)
	}
	return courtModel{
		ID:           c.ID,
		Name:         c.Name,
		Sport:        string(c.Sport),
		Surface:      c.Surface,
		Indoor:       c.Indoor,
		Description:  c.Description,
		PricePerHour: c.PricePerHour,
		Photos:       photos,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

type CourtFilters struct {
	Sport    string
	Indoor   *bool
	MinPrice float64
	MaxPrice float64
	Limit    int
	Offset   int
}

func (r *CourtRepository) Create(ctx context.Context, c *domain.Court) error {
	m := toCourtModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCourt(m)
	return nil
}

func (r *CourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	var m courtModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCourt(m), nil
}

func (r *CourtRepository) GetPriceByID(ctx context.Context, id int64) (float64, error) {
	var price float64
	tx := r.db.WithContext(ctx).
		Model(&courtModel{}).
		Select("price_per_hour").
		Where("id = ? AND is_active = ?", id, true).
		Scan(&price)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return price, nil
}

func (r *CourtRepository) GetAll(ctx context.Context, f CourtFilters) ([]domain.Court, int64, error) {
	q := r.db.WithContext(ctx).Model(&courtModel{}).Where("is_active = ?", true)

	if f.Sport != "" {
		q = q.Where("sport = ?", f.Sport)
	}
	if f.Indoor != nil {
		q = q.Where("indoor = ?", *f.Indoor)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_hour >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_hour <= ?", f.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []courtModel
	if err := q.Order("name ASC").Limit(f.Limit).Offset(f.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Court, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCourt(m))
	}
	return out, total, nil
}

func (r *CourtRepository) Update(ctx context.Context, c *domain.Court) error {
	m := toCourtModel(c)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *CourtRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&courtModel{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
