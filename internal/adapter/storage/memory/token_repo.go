package memory

import (
	"context"
	"sync"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// TokenRepo implements ports.TokenRepository.
type TokenRepo struct {
	mu     sync.RWMutex
	tokens map[domain.Address]domain.TokenRecord
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo() *TokenRepo {
	return &TokenRepo{tokens: make(map[domain.Address]domain.TokenRecord)}
}

func (r *TokenRepo) Create(ctx context.Context, tx pgx.Tx, token *domain.TokenRecord) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	r.mu.RLock()
	_, exists := r.tokens[token.Address]
	r.mu.RUnlock()
	if exists {
		return ports.ErrDuplicateKey
	}

	rec := *token
	mtx.enqueue(func() {
		r.mu.Lock()
		r.tokens[rec.Address] = rec
		r.mu.Unlock()
	})
	return nil
}

func (r *TokenRepo) GetByAddress(ctx context.Context, addr domain.Address) (*domain.TokenRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.tokens[addr]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// GetForShare needs no extra locking: writers are serialised by the Transactor.
func (r *TokenRepo) GetForShare(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.TokenRecord, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.GetByAddress(ctx, addr)
}
