package repository

import (
	"context"

	"github.com/agendaescolar/backend/domain"
)

// UserRepository persists registered accounts. Email uniqueness is a store
// constraint: Create returns domain.ErrEmailTaken on a duplicate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
