package auth

import (
	"context"

	"courtbook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

// AdminDirectory answers whether an email belongs to the operator allowlist.
type AdminDirectory interface {
	IsAdminEmail(email string) bool
}
