package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports"
)

// Проверка, что OpportunityValidator удовлетворяет интерфейсу SourcePolicy.
var _ ports.SourcePolicy = (*OpportunityValidator)(nil)

// OpportunityValidator — валидация возможности перед записью:
// обязательные поля, закрытый набор типов, политика доверенных источников.
// Ничего не изменяет во входной записи.
type OpportunityValidator struct {
	policy Policy
}

// NewOpportunityValidator — конструктор; политика передаётся явно.
func NewOpportunityValidator(policy Policy) *OpportunityValidator {
	return &OpportunityValidator{policy: policy}
}

// Policy — текущая политика.
func (v *OpportunityValidator) Policy() Policy { return v.policy }

// Validate — возвращает ErrInvalidOpportunity / ErrUnknownType / *InvalidSourceError.
func (v *OpportunityValidator) Validate(_ context.Context, opp *domain.Opportunity) error {
	if err := v.validateFields(opp); err != nil {
		return err
	}
	typ, err := domain.ParseOpportunityType(string(opp.Type))
	if err != nil {
		return err
	}
	return v.policy.Check(typ, opp.Source)
}

// Listed — делегирует политике.
func (v *OpportunityValidator) Listed(source string) bool {
	return v.policy.Listed(source)
}

// validateFields — обязательные поля.
func (v *OpportunityValidator) validateFields(opp *domain.Opportunity) error {
	if opp == nil {
		return fmt.Errorf("%w: opportunity is nil", domain.ErrInvalidOpportunity)
	}
	if strings.TrimSpace(opp.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidOpportunity)
	}
	if opp.Deadline.IsZero() {
		return fmt.Errorf("%w: deadline is required", domain.ErrInvalidOpportunity)
	}
	return nil
}
