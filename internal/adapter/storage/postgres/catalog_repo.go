package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pst-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// Tags are stored as their ASCII form; the zero tag is the empty string.
func scanTag(s string) (domain.Tag, error) {
	var t domain.Tag
	if err := t.UnmarshalText([]byte(s)); err != nil {
		return domain.Tag{}, err
	}
	return t, nil
}

// CategoryRepo implements ports.CategoryRepository.
type CategoryRepo struct {
	pool Pool
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(pool Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

func (r *CategoryRepo) Upsert(ctx context.Context, tx pgx.Tx, c *domain.Category) error {
	query := `INSERT INTO categories (token, tag, description, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token, tag) DO UPDATE SET description = EXCLUDED.description, updated_at = EXCLUDED.updated_at`

	if _, err := tx.Exec(ctx, query, c.Token, c.Tag.String(), c.Description, c.UpdatedAt); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Get(ctx context.Context, token domain.Address, tag domain.Tag) (*domain.Category, error) {
	query := `SELECT token, tag, description, updated_at FROM categories WHERE token = $1 AND tag = $2`
	return scanCategory(r.pool.QueryRow(ctx, query, token, tag.String()), "get category")
}

func (r *CategoryRepo) GetForShare(ctx context.Context, tx pgx.Tx, token domain.Address, tag domain.Tag) (*domain.Category, error) {
	query := `SELECT token, tag, description, updated_at FROM categories WHERE token = $1 AND tag = $2 FOR SHARE`
	return scanCategory(tx.QueryRow(ctx, query, token, tag.String()), "get category for share")
}

func (r *CategoryRepo) List(ctx context.Context, token domain.Address) ([]domain.Category, error) {
	query := `SELECT token, tag, description, updated_at FROM categories WHERE token = $1 ORDER BY tag`

	rows, err := r.pool.Query(ctx, query, token)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows, "scan category row")
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return out, nil
}

func scanCategory(row pgx.Row, op string) (*domain.Category, error) {
	var (
		c   domain.Category
		tag string
	)
	if err := row.Scan(&c.Token, &tag, &c.Description, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var err error
	if c.Tag, err = scanTag(tag); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

const serviceColumns = `token, service_id, category, active, updated_at, removed_at`

// ServiceAssignmentRepo implements ports.ServiceAssignmentRepository.
type ServiceAssignmentRepo struct {
	pool Pool
}

// NewServiceAssignmentRepo creates a new ServiceAssignmentRepo.
func NewServiceAssignmentRepo(pool Pool) *ServiceAssignmentRepo {
	return &ServiceAssignmentRepo{pool: pool}
}

// Upsert (re)activates an assignment, clearing any earlier removal.
func (r *ServiceAssignmentRepo) Upsert(ctx context.Context, tx pgx.Tx, s *domain.ServiceAssignment) error {
	query := `INSERT INTO service_assignments (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (token, service_id) DO UPDATE SET
			category = EXCLUDED.category, active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at, removed_at = EXCLUDED.removed_at`

	_, err := tx.Exec(ctx, query,
		s.Token, s.ServiceID, s.Category.String(), s.Active, s.UpdatedAt, s.RemovedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert service assignment: %w", err)
	}
	return nil
}

func (r *ServiceAssignmentRepo) Get(ctx context.Context, token domain.Address, id domain.ServiceID) (*domain.ServiceAssignment, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_assignments WHERE token = $1 AND service_id = $2`
	return scanAssignment(r.pool.QueryRow(ctx, query, token, id), "get service assignment")
}

func (r *ServiceAssignmentRepo) GetForShare(ctx context.Context, tx pgx.Tx, token domain.Address, id domain.ServiceID) (*domain.ServiceAssignment, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_assignments WHERE token = $1 AND service_id = $2 FOR SHARE`
	return scanAssignment(tx.QueryRow(ctx, query, token, id), "get service assignment for share")
}

func (r *ServiceAssignmentRepo) MarkRemoved(ctx context.Context, tx pgx.Tx, token domain.Address, id domain.ServiceID, at time.Time) (bool, error) {
	query := `UPDATE service_assignments
		SET category = '', active = FALSE, updated_at = $3, removed_at = $3
		WHERE token = $1 AND service_id = $2`

	tag, err := tx.Exec(ctx, query, token, id, at)
	if err != nil {
		return false, fmt.Errorf("remove service assignment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ServiceAssignmentRepo) List(ctx context.Context, token domain.Address) ([]domain.ServiceAssignment, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_assignments WHERE token = $1 ORDER BY service_id`

	rows, err := r.pool.Query(ctx, query, token)
	if err != nil {
		return nil, fmt.Errorf("list service assignments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ServiceAssignment, 0)
	for rows.Next() {
		s, err := scanAssignment(rows, "scan service assignment row")
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service assignment rows: %w", err)
	}
	return out, nil
}

func scanAssignment(row pgx.Row, op string) (*domain.ServiceAssignment, error) {
	var (
		s        domain.ServiceAssignment
		category string
	)
	err := row.Scan(&s.Token, &s.ServiceID, &category, &s.Active, &s.UpdatedAt, &s.RemovedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if s.Category, err = scanTag(category); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
