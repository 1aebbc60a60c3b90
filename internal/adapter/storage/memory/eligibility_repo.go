package memory

import (
	"context"
	"sync"

	"pst-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SuitabilityRuleRepo implements ports.SuitabilityRuleRepository.
type SuitabilityRuleRepo struct {
	mu    sync.RWMutex
	rules map[domain.Address]domain.SuitabilityRule
}

// NewSuitabilityRuleRepo creates a new SuitabilityRuleRepo.
func NewSuitabilityRuleRepo() *SuitabilityRuleRepo {
	return &SuitabilityRuleRepo{rules: make(map[domain.Address]domain.SuitabilityRule)}
}

func (r *SuitabilityRuleRepo) Upsert(ctx context.Context, tx pgx.Tx, rule *domain.SuitabilityRule) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	rec := *rule
	mtx.enqueue(func() {
		r.mu.Lock()
		r.rules[rec.Token] = rec
		r.mu.Unlock()
	})
	return nil
}

func (r *SuitabilityRuleRepo) GetByToken(ctx context.Context, token domain.Address) (*domain.SuitabilityRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.rules[token]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type banKey struct {
	token   domain.Address
	country domain.Tag
}

// CountryBanRepo implements ports.CountryBanRepository.
type CountryBanRepo struct {
	mu   sync.RWMutex
	bans map[banKey]domain.CountryBan
}

// NewCountryBanRepo creates a new CountryBanRepo.
func NewCountryBanRepo() *CountryBanRepo {
	return &CountryBanRepo{bans: make(map[banKey]domain.CountryBan)}
}

func (r *CountryBanRepo) Upsert(ctx context.Context, tx pgx.Tx, ban *domain.CountryBan) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	rec := *ban
	mtx.enqueue(func() {
		r.mu.Lock()
		r.bans[banKey{rec.Token, rec.Country}] = rec
		r.mu.Unlock()
	})
	return nil
}

func (r *CountryBanRepo) Get(ctx context.Context, token domain.Address, country domain.Tag) (*domain.CountryBan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.bans[banKey{token, country}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
