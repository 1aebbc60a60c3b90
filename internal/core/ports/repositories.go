package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"pst-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ErrDuplicateKey is returned by Create methods when the primary key is taken.
var ErrDuplicateKey = errors.New("duplicate key")

// TokenRepository defines persistence operations for token records.
// Records are append-only.
type TokenRepository interface {
	Create(ctx context.Context, tx pgx.Tx, token *domain.TokenRecord) error
	GetByAddress(ctx context.Context, addr domain.Address) (*domain.TokenRecord, error)
	// GetForShare reads the record inside tx, holding a shared lock until commit.
	GetForShare(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.TokenRecord, error)
}

// CategoryRepository defines persistence operations for per-token categories.
type CategoryRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, category *domain.Category) error
	Get(ctx context.Context, token domain.Address, tag domain.Tag) (*domain.Category, error)
	GetForShare(ctx context.Context, tx pgx.Tx, token domain.Address, tag domain.Tag) (*domain.Category, error)
	List(ctx context.Context, token domain.Address) ([]domain.Category, error)
}

// ServiceAssignmentRepository defines persistence operations for service assignments.
// Get returns nil for an id that was never set and a record with Active=false
// for one that was removed.
type ServiceAssignmentRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, svc *domain.ServiceAssignment) error
	Get(ctx context.Context, token domain.Address, id domain.ServiceID) (*domain.ServiceAssignment, error)
	GetForShare(ctx context.Context, tx pgx.Tx, token domain.Address, id domain.ServiceID) (*domain.ServiceAssignment, error)
	// MarkRemoved soft-deletes the assignment. Reports false when no row exists.
	MarkRemoved(ctx context.Context, tx pgx.Tx, token domain.Address, id domain.ServiceID, at time.Time) (bool, error)
	List(ctx context.Context, token domain.Address) ([]domain.ServiceAssignment, error)
}

// SuitabilityRuleRepository defines persistence operations for suitability rules.
type SuitabilityRuleRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, rule *domain.SuitabilityRule) error
	GetByToken(ctx context.Context, token domain.Address) (*domain.SuitabilityRule, error)
}

// CountryBanRepository defines persistence operations for country bans.
type CountryBanRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, ban *domain.CountryBan) error
	Get(ctx context.Context, token domain.Address, country domain.Tag) (*domain.CountryBan, error)
}

// BuyerRepository defines persistence operations for buyers.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type BuyerRepository interface {
	Create(ctx context.Context, tx pgx.Tx, buyer *domain.Buyer) error
	GetByEIN(ctx context.Context, ein domain.EIN) (*domain.Buyer, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, ein domain.EIN) (*domain.Buyer, error)
	Update(ctx context.Context, tx pgx.Tx, buyer *domain.Buyer) error
}

// AccountRepository stores the account -> EIN mapping of the identity directory.
type AccountRepository interface {
	// Register allocates the next EIN for address. ErrDuplicateKey if address is known.
	Register(ctx context.Context, address domain.Address, passphraseHash string, at time.Time) (*domain.Account, error)
	GetByAddress(ctx context.Context, address domain.Address) (*domain.Account, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
