package domain

import "time"

type Sport string

const (
	SportFutsal     Sport = "futsal"
	SportBadminton  Sport = "badminton"
	SportTennis     Sport = "tennis"
	SportBasketball Sport = "basketball"
)

func ParseSport(s string) (Sport, bool) {
	switch Sport(s) {
	case SportFutsal, SportBadminton, SportTennis, SportBasketball:
		return Sport(s), true
	}
	return "", false
}

type Court struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Sport        Sport     `json:"sport" validate:"required"`
	Surface      string    `json:"surface,omitempty"`
	Indoor       bool      `json:"indoor"`
	Description  string    `json:"description,omitempty"`
	PricePerHour float64   `json:"price_per_hour" validate:"required,gte=0"`
	Photos       []string  `json:"photos,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
