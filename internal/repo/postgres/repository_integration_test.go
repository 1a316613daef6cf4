//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/oppify/internal/domain"
	pgrepo "github.com/Gunvolt24/oppify/internal/repo/postgres"
	"github.com/Gunvolt24/oppify/internal/testutil"
)

// setupDB — контейнер Postgres + миграции + пул на время теста.
func setupDB(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgrepo.NewPool(ctx, pg.DSN, 5)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return ctx, pool
}

func ids(opps []*domain.Opportunity) []int64 {
	out := make([]int64, 0, len(opps))
	for _, o := range opps {
		out = append(out, o.ID)
	}
	return out
}

// 1) Создание и выборка по фильтрам
func TestOpportunityRepo_CreateAndList_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := setupDB(t)
	repo := pgrepo.NewOpportunityRepository(pool)

	in := testutil.MakeOpportunity(testutil.WithEligibility("Open to AI/ML enthusiasts"))
	march, err := repo.Create(ctx, &in)
	require.NoError(t, err)
	require.NotZero(t, march.ID)
	require.Zero(t, in.ID, "input must not be mutated")

	grant := testutil.MakeOpportunity(
		testutil.WithType(domain.TypeGrant, "Govt Portal"),
		testutil.WithDeadline(domain.NewDate(2024, time.April, 2)),
		testutil.WithEligibility("Women in STEM"),
	)
	april, err := repo.Create(ctx, &grant)
	require.NoError(t, err)

	all, err := repo.List(ctx, domain.OpportunityFilter{})
	require.NoError(t, err)
	require.Equal(t, []int64{march.ID, april.ID}, ids(all))
	require.Equal(t, "2024-03-15", all[0].Deadline.String())
	require.Equal(t, domain.TypeInternship, all[0].Type)

	byType, err := repo.List(ctx, domain.OpportunityFilter{Type: "grant"})
	require.NoError(t, err)
	require.Equal(t, []int64{april.ID}, ids(byType))

	byInterest, err := repo.List(ctx, domain.OpportunityFilter{Interest: "ai/ml"})
	require.NoError(t, err)
	require.Equal(t, []int64{march.ID}, ids(byInterest))

	m3, m4, m13 := 3, 4, 13
	byMonth, err := repo.List(ctx, domain.OpportunityFilter{Type: "internship", Month: &m3})
	require.NoError(t, err)
	require.Equal(t, []int64{march.ID}, ids(byMonth))

	byApril, err := repo.List(ctx, domain.OpportunityFilter{Type: "internship", Month: &m4})
	require.NoError(t, err)
	require.Empty(t, byApril)

	outOfRange, err := repo.List(ctx, domain.OpportunityFilter{Month: &m13})
	require.NoError(t, err)
	require.NotNil(t, outOfRange)
	require.Empty(t, outOfRange)
}

// 2) Метасимволы LIKE в ключевом слове ищутся буквально
func TestOpportunityRepo_InterestEscapesWildcards_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := setupDB(t)
	repo := pgrepo.NewOpportunityRepository(pool)

	pct := testutil.MakeOpportunity(testutil.WithEligibility("Top 10% of class"))
	_, err := repo.Create(ctx, &pct)
	require.NoError(t, err)
	plain := testutil.MakeOpportunity(testutil.WithEligibility("Top 100 of class"))
	_, err = repo.Create(ctx, &plain)
	require.NoError(t, err)

	got, err := repo.List(ctx, domain.OpportunityFilter{Interest: "10%"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Top 10% of class", got[0].Eligibility)

	none, err := repo.List(ctx, domain.OpportunityFilter{Interest: "_"})
	require.NoError(t, err)
	require.Empty(t, none)
}

// 3) Отклики: FK, повторы, выдача по пользователю
func TestApplicationRepo_ApplyAndList_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := setupDB(t)
	opps := pgrepo.NewOpportunityRepository(pool)
	users := pgrepo.NewUserRepository(pool)
	apps := pgrepo.NewApplicationRepository(pool)

	u := testutil.MakeUser()
	user, err := users.Create(ctx, &u)
	require.NoError(t, err)

	o := testutil.MakeOpportunity()
	opp, err := opps.Create(ctx, &o)
	require.NoError(t, err)

	app, err := apps.Create(ctx, user.ID, opp.ID)
	require.NoError(t, err)
	require.NotZero(t, app.ID)
	require.Equal(t, user.ID, app.UserID)
	require.Equal(t, opp.ID, app.OpportunityID)
	require.False(t, app.AppliedAt.IsZero())

	// повторный отклик разрешён
	_, err = apps.Create(ctx, user.ID, opp.ID)
	require.NoError(t, err)

	mine, err := apps.OpportunitiesByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{opp.ID, opp.ID}, ids(mine))

	// несуществующая возможность / пользователь → ErrNotFound
	_, err = apps.Create(ctx, user.ID, opp.ID+1000)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = apps.Create(ctx, user.ID+1000, opp.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// чужой пользователь — пустой список
	empty, err := apps.OpportunitiesByUser(ctx, user.ID+1000)
	require.NoError(t, err)
	require.Empty(t, empty)
}

// 4) Пользователи: уникальный email, поиск по email
func TestUserRepo_CreateAndGet_TC(t *testing.T) {
	t.Parallel()
	ctx, pool := setupDB(t)
	users := pgrepo.NewUserRepository(pool)

	u := testutil.MakeUser()
	pct := 91.5
	u.TwelfthPercentage = &pct
	created, err := users.Create(ctx, &u)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = users.Create(ctx, &u)
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	got, err := users.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, u.HashedPassword, got.HashedPassword)
	require.Equal(t, []string{"go", "sql"}, got.Skills)
	require.NotNil(t, got.TwelfthPercentage)
	require.InDelta(t, 91.5, *got.TwelfthPercentage, 1e-9)

	missing, err := users.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}
