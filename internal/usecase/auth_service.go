package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports"
)

var _ ports.AuthService = (*AuthService)(nil)

// AuthService — регистрация пользователей и выдача access-токенов.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    ports.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	log ports.Logger,
) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register — email приводится к нижнему регистру; пароль хранится только как хэш.
func (s *AuthService) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Errorf(ctx, "hash password failed: %v", err)
		return nil, err
	}

	rec := *user
	rec.Email = normalizeEmail(user.Email)
	rec.HashedPassword = hash

	created, err := s.users.Create(ctx, &rec)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			s.log.Warnf(ctx, "register rejected: %v", err)
		} else {
			s.log.Errorf(ctx, "repo.CreateUser failed: %v", err)
		}
		return nil, err
	}

	s.log.Infof(ctx, "user registered id=%d", created.ID)
	return created, nil
}

// Login — неизвестный email и неверный пароль неразличимы: domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByEmail failed: %v", err)
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			s.log.Errorf(ctx, "compare password failed user=%d: %v", user.ID, err)
		}
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Errorf(ctx, "issue token failed user=%d: %v", user.ID, err)
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
