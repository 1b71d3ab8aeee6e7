package admin

import "errors"

var (
	ErrInvalidRole             = errors.New("unknown role")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrUnknownStatus           = errors.New("unknown booking status")
	ErrNotRefundable           = errors.New("booking is not paid")
)
