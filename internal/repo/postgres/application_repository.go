package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/oppify/internal/domain"
	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ApplicationRepository удовлетворяет интерфейсу ApplicationRepository.
var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository — отклики пользователей (Postgres).
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

// Create — вставка отклика; несуществующий пользователь/возможность → domain.ErrNotFound.
func (r *ApplicationRepository) Create(ctx context.Context, userID, opportunityID int64) (*domain.Application, error) {
	app := domain.Application{UserID: userID, OpportunityID: opportunityID}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO applications (user_id, opportunity_id)
		VALUES ($1, $2)
		RETURNING id, applied_at
	`, userID, opportunityID).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("%w: user %d or opportunity %d", domain.ErrNotFound, userID, opportunityID)
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return &app, nil
}

// OpportunitiesByUser — возможности по откликам пользователя, новые отклики первыми.
// Повторные отклики дают повторы в выдаче.
func (r *ApplicationRepository) OpportunitiesByUser(ctx context.Context, userID int64) ([]*domain.Opportunity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.title, o.type, o.deadline, o.source, o.apply_link, o.eligibility
		FROM applications a
		JOIN opportunities o ON o.id = a.opportunity_id
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC, a.id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select applications: %w", err)
	}
	defer rows.Close()

	out, err := scanOpportunities(rows)
	if err != nil {
		return nil, fmt.Errorf("select applications: %w", err)
	}
	return out, nil
}
