package ports

import (
	"context"

	"github.com/Gunvolt24/oppify/internal/domain"
)

// SourcePolicy — политика доверенных источников.
type SourcePolicy interface {
	// Validate — проверка пары (type, source) до записи; отказ → *domain.InvalidSourceError.
	Validate(ctx context.Context, opp *domain.Opportunity) error
	// Listed — показывать ли запись с таким источником в списках.
	Listed(source string) bool
}
