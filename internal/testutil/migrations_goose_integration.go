//go:build integration

package testutil

import (
	"context"
	"fmt"
	"time"

	pgrepo "github.com/Gunvolt24/oppify/internal/repo/postgres"
)

// ApplyMigrationsGoose — применяет встроенные миграции (тот же путь, что и при старте сервиса).
func ApplyMigrationsGoose(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := pgrepo.Migrate(ctx, dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
