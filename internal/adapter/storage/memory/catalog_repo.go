package memory

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"pst-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

type categoryKey struct {
	token domain.Address
	tag   domain.Tag
}

// CategoryRepo implements ports.CategoryRepository.
type CategoryRepo struct {
	mu         sync.RWMutex
	categories map[categoryKey]domain.Category
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{categories: make(map[categoryKey]domain.Category)}
}

func (r *CategoryRepo) Upsert(ctx context.Context, tx pgx.Tx, category *domain.Category) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	rec := *category
	mtx.enqueue(func() {
		r.mu.Lock()
		r.categories[categoryKey{rec.Token, rec.Tag}] = rec
		r.mu.Unlock()
	})
	return nil
}

func (r *CategoryRepo) Get(ctx context.Context, token domain.Address, tag domain.Tag) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.categories[categoryKey{token, tag}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *CategoryRepo) GetForShare(ctx context.Context, tx pgx.Tx, token domain.Address, tag domain.Tag) (*domain.Category, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.Get(ctx, token, tag)
}

// List returns the token's categories ordered by tag.
func (r *CategoryRepo) List(ctx context.Context, token domain.Address) ([]domain.Category, error) {
	r.mu.RLock()
	out := make([]domain.Category, 0)
	for k, c := range r.categories {
		if k.token == token {
			out = append(out, c)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Category) int {
		return bytes.Compare(a.Tag[:], b.Tag[:])
	})
	return out, nil
}

type serviceKey struct {
	token domain.Address
	id    domain.ServiceID
}

// ServiceAssignmentRepo implements ports.ServiceAssignmentRepository.
type ServiceAssignmentRepo struct {
	mu       sync.RWMutex
	services map[serviceKey]domain.ServiceAssignment
}

// NewServiceAssignmentRepo creates a new ServiceAssignmentRepo.
func NewServiceAssignmentRepo() *ServiceAssignmentRepo {
	return &ServiceAssignmentRepo{services: make(map[serviceKey]domain.ServiceAssignment)}
}

func (r *ServiceAssignmentRepo) Upsert(ctx context.Context, tx pgx.Tx, svc *domain.ServiceAssignment) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	rec := copyAssignment(*svc)
	mtx.enqueue(func() {
		r.mu.Lock()
		r.services[serviceKey{rec.Token, rec.ServiceID}] = rec
		r.mu.Unlock()
	})
	return nil
}

func (r *ServiceAssignmentRepo) Get(ctx context.Context, token domain.Address, id domain.ServiceID) (*domain.ServiceAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.services[serviceKey{token, id}]
	if !ok {
		return nil, nil
	}
	out := copyAssignment(rec)
	return &out, nil
}

func (r *ServiceAssignmentRepo) GetForShare(ctx context.Context, tx pgx.Tx, token domain.Address, id domain.ServiceID) (*domain.ServiceAssignment, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.Get(ctx, token, id)
}

func (r *ServiceAssignmentRepo) MarkRemoved(ctx context.Context, tx pgx.Tx, token domain.Address, id domain.ServiceID, at time.Time) (bool, error) {
	mtx, err := asTx(tx)
	if err != nil {
		return false, err
	}
	key := serviceKey{token, id}

	r.mu.RLock()
	_, ok := r.services[key]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}

	mtx.enqueue(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		rec, ok := r.services[key]
		if !ok {
			return
		}
		rec.Remove(at)
		r.services[key] = rec
	})
	return true, nil
}

// List returns every assignment ever made for the token, removed ones
// included, ordered by service id.
func (r *ServiceAssignmentRepo) List(ctx context.Context, token domain.Address) ([]domain.ServiceAssignment, error) {
	r.mu.RLock()
	out := make([]domain.ServiceAssignment, 0)
	for k, s := range r.services {
		if k.token == token {
			out = append(out, copyAssignment(s))
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.ServiceAssignment) int {
		return cmp.Compare(a.ServiceID, b.ServiceID)
	})
	return out, nil
}

func copyAssignment(s domain.ServiceAssignment) domain.ServiceAssignment {
	if s.RemovedAt != nil {
		at := *s.RemovedAt
		s.RemovedAt = &at
	}
	return s
}
