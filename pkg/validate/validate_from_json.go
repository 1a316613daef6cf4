package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports"
)

// DecodeOpportunity — строгий разбор JSON в OpportunityPayload: неизвестные поля
// (в том числе id) и хвостовые данные запрещены.
func DecodeOpportunity(raw []byte) (*domain.Opportunity, error) {
	var payload OpportunityPayload
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	return payload.ToDomain(), nil
}

// ValidateOpportunityFromJSON — разбор + валидация; тип в результате канонический.
func ValidateOpportunityFromJSON(ctx context.Context, validator ports.SourcePolicy, raw []byte) (*domain.Opportunity, error) {
	opp, err := DecodeOpportunity(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, opp); err != nil {
		return nil, err
	}
	typ, err := domain.ParseOpportunityType(string(opp.Type))
	if err != nil {
		return nil, err
	}
	opp.Type = typ
	return opp, nil
}
