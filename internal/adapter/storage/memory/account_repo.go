package memory

import (
	"context"
	"sync"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
)

// AccountRepo implements ports.AccountRepository. EINs are allocated
// sequentially starting at 1.
type AccountRepo struct {
	mu       sync.RWMutex
	accounts map[domain.Address]domain.Account
	lastEIN  domain.EIN
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo() *AccountRepo {
	return &AccountRepo{accounts: make(map[domain.Address]domain.Account)}
}

func (r *AccountRepo) Register(ctx context.Context, address domain.Address, passphraseHash string, at time.Time) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[address]; ok {
		return nil, ports.ErrDuplicateKey
	}
	r.lastEIN++
	acct := domain.Account{
		Address:        address,
		EIN:            r.lastEIN,
		PassphraseHash: passphraseHash,
		CreatedAt:      at,
	}
	r.accounts[address] = acct
	return &acct, nil
}

func (r *AccountRepo) GetByAddress(ctx context.Context, address domain.Address) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.accounts[address]
	if !ok {
		return nil, nil
	}
	return &acct, nil
}
