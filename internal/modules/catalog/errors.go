package catalog

import "errors"

var (
	ErrInvalidSport = errors.New("unknown sport")
	ErrInvalidCourt = errors.New("invalid court")
	ErrNotFound     = errors.New("court not found")
)
