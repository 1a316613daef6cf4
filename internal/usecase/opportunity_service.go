package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/Gunvolt24/oppify/pkg/metrics"
	"github.com/Gunvolt24/oppify/pkg/validate"
)

// Проверка, что OpportunityService удовлетворяет интерфейсу верхнего уровня.
var _ ports.OpportunityService = (*OpportunityService)(nil)

// OpportunityService — выборка возможностей, создание через политику доверенных источников,
// отклики пользователей (без знаний о транспорте).
type OpportunityService struct {
	opportunities ports.OpportunityRepository
	applications  ports.ApplicationRepository
	policy        ports.SourcePolicy
	log           ports.Logger
}

// NewOpportunityService — DI-конструктор.
func NewOpportunityService(
	opportunities ports.OpportunityRepository,
	applications ports.ApplicationRepository,
	policy ports.SourcePolicy,
	log ports.Logger,
) *OpportunityService {
	return &OpportunityService{
		opportunities: opportunities,
		applications:  applications,
		policy:        policy,
		log:           log,
	}
}

// List — выборка по фильтрам; тип сравнивается в канонической форме.
// Записи из источников, которых политика не признаёт, в выдачу не попадают.
func (s *OpportunityService) List(ctx context.Context, filter domain.OpportunityFilter) ([]*domain.Opportunity, error) {
	filter.Type = domain.NormalizeType(filter.Type)

	list, err := s.opportunities.List(ctx, filter)
	if err != nil {
		s.log.Errorf(ctx, "repo.List failed filter=%+v err=%v", filter, err)
		return nil, err
	}

	out := make([]*domain.Opportunity, 0, len(list))
	for _, o := range list {
		if s.policy.Listed(o.Source) {
			out = append(out, o)
		}
	}
	if dropped := len(list) - len(out); dropped > 0 {
		s.log.Infof(ctx, "list: dropped %d opportunities from unlisted sources", dropped)
	}
	return out, nil
}

// Create — валидация (поля, тип, источник) и запись. При отказе в хранилище ничего не пишется.
func (s *OpportunityService) Create(ctx context.Context, opp *domain.Opportunity) (*domain.Opportunity, error) {
	if opp == nil {
		return nil, fmt.Errorf("%w: opportunity is nil", domain.ErrInvalidOpportunity)
	}

	if err := s.policy.Validate(ctx, opp); err != nil {
		s.rejected(ctx, opp, err)
		return nil, err
	}

	rec := *opp
	typ, err := domain.ParseOpportunityType(string(opp.Type))
	if err != nil {
		s.rejected(ctx, opp, err)
		return nil, err
	}
	rec.Type = typ

	created, err := s.opportunities.Create(ctx, &rec)
	if err != nil {
		s.log.Errorf(ctx, "repo.Create failed title=%q err=%v", rec.Title, err)
		return nil, err
	}

	metrics.OpportunitiesCreated.WithLabelValues(string(created.Type)).Inc()
	s.log.Infof(ctx, "opportunity created id=%d type=%s source=%s", created.ID, created.Type, created.Source)
	return created, nil
}

// CreateFromMessage — создание из сырого JSON (ingest через Kafka).
// Невалидный JSON → domain.ErrInvalidOpportunity.
func (s *OpportunityService) CreateFromMessage(ctx context.Context, raw []byte) error {
	opp, err := validate.DecodeOpportunity(raw)
	if err != nil {
		s.log.Warnf(ctx, "ingest: %v", err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidOpportunity, err)
	}
	if _, err := s.Create(ctx, opp); err != nil {
		return fmt.Errorf("create from message: %w", err)
	}
	return nil
}

// Apply — отклик пользователя; несуществующая возможность/пользователь → domain.ErrNotFound.
func (s *OpportunityService) Apply(ctx context.Context, userID, opportunityID int64) (*domain.Application, error) {
	app, err := s.applications.Create(ctx, userID, opportunityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warnf(ctx, "apply rejected user=%d opportunity=%d: %v", userID, opportunityID, err)
		} else {
			s.log.Errorf(ctx, "repo.Apply failed user=%d opportunity=%d err=%v", userID, opportunityID, err)
		}
		return nil, err
	}

	metrics.ApplicationsCreated.Inc()
	s.log.Infof(ctx, "application created id=%d opportunity=%d", app.ID, opportunityID)
	return app, nil
}

// MyApplications — возможности, на которые откликнулся пользователь.
func (s *OpportunityService) MyApplications(ctx context.Context, userID int64) ([]*domain.Opportunity, error) {
	list, err := s.applications.OpportunitiesByUser(ctx, userID)
	if err != nil {
		s.log.Errorf(ctx, "repo.OpportunitiesByUser failed user=%d err=%v", userID, err)
		return nil, err
	}
	return list, nil
}

// rejected — лог + метрика отказа валидации.
func (s *OpportunityService) rejected(ctx context.Context, opp *domain.Opportunity, err error) {
	reason := "invalid"
	switch {
	case errors.Is(err, domain.ErrInvalidSource):
		reason = "invalid_source"
	case errors.Is(err, domain.ErrUnknownType):
		reason = "unknown_type"
	}
	metrics.OpportunitiesRejected.WithLabelValues(domain.NormalizeType(string(opp.Type)), reason).Inc()
	s.log.Warnf(ctx, "opportunity rejected title=%q source=%q: %v", opp.Title, opp.Source, err)
}
