package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OpportunityRepository удовлетворяет интерфейсу OpportunityRepository.
var _ ports.OpportunityRepository = (*OpportunityRepository)(nil)

// OpportunityRepository — реализация репозитория возможностей на Postgres (pgxpool).
type OpportunityRepository struct {
	pool *pgxpool.Pool
}

func NewOpportunityRepository(pool *pgxpool.Pool) *OpportunityRepository {
	return &OpportunityRepository{pool: pool}
}

const opportunityColumns = `id, title, type, deadline, source, apply_link, eligibility`

// Create — вставка одной записи; id присваивает БД.
func (r *OpportunityRepository) Create(ctx context.Context, opp *domain.Opportunity) (*domain.Opportunity, error) {
	out := *opp
	if err := r.pool.QueryRow(ctx, `
		INSERT INTO opportunities (title, type, deadline, source, apply_link, eligibility)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		opp.Title, string(opp.Type), opp.Deadline.Time, opp.Source, opp.ApplyLink, opp.Eligibility,
	).Scan(&out.ID); err != nil {
		return nil, fmt.Errorf("insert opportunity: %w", err)
	}
	return &out, nil
}

// List — выборка с фильтрами по типу, ключевому слову в eligibility и месяцу дедлайна.
func (r *OpportunityRepository) List(ctx context.Context, filter domain.OpportunityFilter) ([]*domain.Opportunity, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select opportunities: %w", err)
	}
	defer rows.Close()

	out, err := scanOpportunities(rows)
	if err != nil {
		return nil, fmt.Errorf("select opportunities: %w", err)
	}
	return out, nil
}

// listAllQuery — выборка без фильтров.
const listAllQuery = "SELECT " + opportunityColumns + " FROM opportunities ORDER BY id"

// buildListQuery — собирает WHERE из заданных фильтров (AND).
func buildListQuery(filter domain.OpportunityFilter) (string, []any) {
	if filter.IsEmpty() {
		return listAllQuery, nil
	}

	var (
		where []string
		args  []any
	)
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Interest != "" {
		args = append(args, escapeLike(filter.Interest))
		where = append(where, fmt.Sprintf(`eligibility ILIKE '%%' || $%d || '%%' ESCAPE '\'`, len(args)))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		where = append(where, fmt.Sprintf("EXTRACT(MONTH FROM deadline)::int = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT " + opportunityColumns + " FROM opportunities WHERE ")
	b.WriteString(strings.Join(where, " AND "))
	b.WriteString(" ORDER BY id")
	return b.String(), args
}

// escapeLike — экранирует метасимволы LIKE, чтобы ключевое слово искалось буквально.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanOpportunities(rows pgx.Rows) ([]*domain.Opportunity, error) {
	out := make([]*domain.Opportunity, 0)
	for rows.Next() {
		var (
			o        domain.Opportunity
			typ      string
			deadline time.Time
		)
		if err := rows.Scan(&o.ID, &o.Title, &typ, &deadline, &o.Source, &o.ApplyLink, &o.Eligibility); err != nil {
			return nil, err
		}
		o.Type = domain.OpportunityType(typ)
		// DATE приходит полуночью в зоне соединения; в домене — календарная дата в UTC
		o.Deadline = domain.DateFromTime(deadline)
		out = append(out, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
