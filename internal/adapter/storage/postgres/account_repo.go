package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository. EINs come from the
// accounts.ein sequence.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) Register(ctx context.Context, address domain.Address, passphraseHash string, at time.Time) (*domain.Account, error) {
	query := `INSERT INTO accounts (address, passphrase_hash, created_at) VALUES ($1, $2, $3) RETURNING ein`

	acct := &domain.Account{Address: address, PassphraseHash: passphraseHash, CreatedAt: at}
	if err := r.pool.QueryRow(ctx, query, address, passphraseHash, at).Scan(&acct.EIN); err != nil {
		if isUniqueViolation(err) {
			return nil, ports.ErrDuplicateKey
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return acct, nil
}

func (r *AccountRepo) GetByAddress(ctx context.Context, address domain.Address) (*domain.Account, error) {
	query := `SELECT address, ein, passphrase_hash, created_at FROM accounts WHERE address = $1`

	acct := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, address).Scan(&acct.Address, &acct.EIN, &acct.PassphraseHash, &acct.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return acct, nil
}
