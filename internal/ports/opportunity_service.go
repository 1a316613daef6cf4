package ports

import (
	"context"

	"github.com/Gunvolt24/oppify/internal/domain"
)

// OpportunityService — прикладные операции над возможностями (для транспорта).
type OpportunityService interface {
	List(ctx context.Context, filter domain.OpportunityFilter) ([]*domain.Opportunity, error)
	Create(ctx context.Context, opp *domain.Opportunity) (*domain.Opportunity, error)
	Apply(ctx context.Context, userID, opportunityID int64) (*domain.Application, error)
	MyApplications(ctx context.Context, userID int64) ([]*domain.Opportunity, error)
}

// AuthService — регистрация и вход.
type AuthService interface {
	Register(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenVerifier — проверка access-токена; возвращает id пользователя.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
