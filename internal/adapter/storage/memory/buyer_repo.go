package memory

import (
	"context"
	"sync"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// BuyerRepo implements ports.BuyerRepository.
type BuyerRepo struct {
	mu     sync.RWMutex
	buyers map[domain.EIN]domain.Buyer
}

// NewBuyerRepo creates a new BuyerRepo.
func NewBuyerRepo() *BuyerRepo {
	return &BuyerRepo{buyers: make(map[domain.EIN]domain.Buyer)}
}

func (r *BuyerRepo) Create(ctx context.Context, tx pgx.Tx, buyer *domain.Buyer) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	r.mu.RLock()
	_, exists := r.buyers[buyer.EIN]
	r.mu.RUnlock()
	if exists {
		return ports.ErrDuplicateKey
	}

	rec := *buyer
	mtx.enqueue(func() {
		r.mu.Lock()
		r.buyers[rec.EIN] = rec
		r.mu.Unlock()
	})
	return nil
}

func (r *BuyerRepo) GetByEIN(ctx context.Context, ein domain.EIN) (*domain.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.buyers[ein]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *BuyerRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, ein domain.EIN) (*domain.Buyer, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.GetByEIN(ctx, ein)
}

func (r *BuyerRepo) Update(ctx context.Context, tx pgx.Tx, buyer *domain.Buyer) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	rec := *buyer
	mtx.enqueue(func() {
		r.mu.Lock()
		if _, ok := r.buyers[rec.EIN]; ok {
			r.buyers[rec.EIN] = rec
		}
		r.mu.Unlock()
	})
	return nil
}
