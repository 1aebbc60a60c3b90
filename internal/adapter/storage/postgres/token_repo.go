package postgres

import (
	"context"
	"errors"
	"fmt"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const tokenColumns = `address, symbol, name, description, decimals, owner_ein, created_at`

// TokenRepo implements ports.TokenRepository.
type TokenRepo struct {
	pool Pool
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(pool Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// Create inserts a token record. Records are never updated afterwards.
func (r *TokenRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.TokenRecord) error {
	query := `INSERT INTO tokens (` + tokenColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		t.Address, t.Symbol, t.Name, t.Description, t.Decimals, t.OwnerEIN, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateKey
		}
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// GetByAddress fetches a token record (non-locking read).
func (r *TokenRepo) GetByAddress(ctx context.Context, addr domain.Address) (*domain.TokenRecord, error) {
	query := `SELECT ` + tokenColumns + ` FROM tokens WHERE address = $1`
	return scanToken(r.pool.QueryRow(ctx, query, addr), "get token")
}

// GetForShare fetches a token record holding a shared row lock, so the
// owner cannot change under a concurrent write in the same transaction.
func (r *TokenRepo) GetForShare(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.TokenRecord, error) {
	query := `SELECT ` + tokenColumns + ` FROM tokens WHERE address = $1 FOR SHARE`
	return scanToken(tx.QueryRow(ctx, query, addr), "get token for share")
}

func scanToken(row pgx.Row, op string) (*domain.TokenRecord, error) {
	t := &domain.TokenRecord{}
	err := row.Scan(&t.Address, &t.Symbol, &t.Name, &t.Description, &t.Decimals, &t.OwnerEIN, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}
