package memory

import (
	"context"
	"sync"

	"pst-registry/internal/core/domain"
)

const defaultAuditCapacity = 1024

// AuditRepo keeps the most recent audit entries in memory.
type AuditRepo struct {
	mu       sync.Mutex
	entries  []domain.AuditLog
	capacity int
}

// NewAuditRepo creates an AuditRepo holding at most capacity entries.
// A non-positive capacity falls back to 1024.
func NewAuditRepo(capacity int) *AuditRepo {
	if capacity <= 0 {
		capacity = defaultAuditCapacity
	}
	return &AuditRepo{capacity: capacity}
}

func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == r.capacity {
		r.entries = r.entries[1:]
	}
	r.entries = append(r.entries, *entry)
	return nil
}

// Entries returns a snapshot, oldest first.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditLog, len(r.entries))
	copy(out, r.entries)
	return out
}
