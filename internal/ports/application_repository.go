package ports

import (
	"context"

	"github.com/Gunvolt24/oppify/internal/domain"
)

// ApplicationRepository — хранилище откликов.
type ApplicationRepository interface {
	// Create — вставка отклика; applied_at проставляет БД.
	// Нарушение внешнего ключа → domain.ErrNotFound.
	Create(ctx context.Context, userID, opportunityID int64) (*domain.Application, error)
	// OpportunitiesByUser — возможности, на которые откликнулся пользователь.
	OpportunitiesByUser(ctx context.Context, userID int64) ([]*domain.Opportunity, error)
}
