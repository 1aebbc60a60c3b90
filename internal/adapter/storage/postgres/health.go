package postgres

import (
	"context"
	"errors"
	"fmt"
)

var errSchemaMissing = errors.New("registry schema not migrated (run `pstregistry migrate`)")

// HealthCheck reports the registry database as healthy only when it is
// reachable and the schema has been applied.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var migrated bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('tokens') IS NOT NULL`).Scan(&migrated); err != nil {
		return fmt.Errorf("query registry schema: %w", err)
	}
	if !migrated {
		return errSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "registry_db"
}
