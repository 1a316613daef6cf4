package ports

import (
	"context"

	"github.com/Gunvolt24/oppify/internal/domain"
)

// UserRepository — хранилище пользователей.
type UserRepository interface {
	// Create — вставка; занятый email → domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// GetByEmail — (nil, nil), если пользователя нет.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
