package ports

import (
	"context"

	"github.com/Gunvolt24/oppify/internal/domain"
)

// OpportunityRepository — хранилище возможностей.
type OpportunityRepository interface {
	// Create — вставка; возвращает запись с присвоенным id.
	Create(ctx context.Context, opp *domain.Opportunity) (*domain.Opportunity, error)
	// List — выборка по фильтрам (AND); пустой результат не ошибка.
	List(ctx context.Context, filter domain.OpportunityFilter) ([]*domain.Opportunity, error)
}
