package catalog

type CreateCourtRequest struct {
	Name         string   `json:"name" binding:"required"`
	Sport        string   `json:"sport" binding:"required"`
	Surface      string   `json:"surface"`
	Indoor       bool     `json:"indoor"`
	Description  string   `json:"description"`
	PricePerHour float64  `json:"price_per_hour" binding:"required,gte=0"`
	Photos       []string `json:"photos"`
}

type UpdateCourtRequest struct {
	Name         *string  `json:"name"`
	Surface      *string  `json:"surface"`
	Description  *string  `json:"description"`
	PricePerHour *float64 `json:"price_per_hour"`
	Photos       []string `json:"photos"`
}

type ListCourtsQuery struct {
	Sport    string
	Indoor   *bool
	MinPrice float64
	MaxPrice float64
	Page     int
	Limit    int
}
