package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что UserRepository удовлетворяет интерфейсу UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository { return &UserRepository{pool: pool} }

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	out := *user
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Interests == nil {
		out.Interests = []string{}
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, hashed_password, twelfth_percentage, skills, interests)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, out.Name, out.Email, out.HashedPassword, out.TwelfthPercentage, out.Skills, out.Interests).Scan(&out.ID)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmailTaken, user.Email)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &out, nil
}

// GetByEmail — (nil, nil), если пользователя нет.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, hashed_password, twelfth_percentage, skills, interests
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.TwelfthPercentage, &u.Skills, &u.Interests)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}
