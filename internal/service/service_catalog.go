package service

import (
	"context"
	"fmt"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ServiceCatalogImpl implements ports.ServiceCatalog.
type ServiceCatalogImpl struct {
	tokens     ports.TokenRepository
	categories ports.CategoryRepository
	services   ports.ServiceAssignmentRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewServiceCatalog creates a new ServiceCatalogImpl.
func NewServiceCatalog(
	tokens ports.TokenRepository,
	categories ports.CategoryRepository,
	services ports.ServiceAssignmentRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *ServiceCatalogImpl {
	return &ServiceCatalogImpl{
		tokens:     tokens,
		categories: categories,
		services:   services,
		transactor: transactor,
		log:        log,
		now:        utcNow,
	}
}

// AddCategory upserts a category description. Owner only.
func (s *ServiceCatalogImpl) AddCategory(ctx context.Context, token domain.Address, tag domain.Tag, description string, caller domain.EIN) error {
	if tag.IsZero() {
		return apperror.Validation("category tag is required")
	}

	err := inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if _, err := requireOwner(ctx, s.tokens, tx, token, caller); err != nil {
			return err
		}
		category := &domain.Category{
			Token:       token,
			Tag:         tag,
			Description: description,
			UpdatedAt:   s.now(),
		}
		if err := s.categories.Upsert(ctx, tx, category); err != nil {
			return apperror.InternalError(fmt.Errorf("upsert category: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("token", token.Hex()).Str("category", tag.String()).Msg("category added")
	return nil
}

// GetCategory returns the description, or "" when the tag was never added.
func (s *ServiceCatalogImpl) GetCategory(ctx context.Context, token domain.Address, tag domain.Tag) (string, error) {
	category, err := s.categories.Get(ctx, token, tag)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get category: %w", err))
	}
	if category == nil {
		return "", nil
	}
	return category.Description, nil
}

// ListCategories returns every category of the token ordered by tag.
func (s *ServiceCatalogImpl) ListCategories(ctx context.Context, token domain.Address) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx, token)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list categories: %w", err))
	}
	return categories, nil
}

// AddService creates or overwrites an assignment as an active provider.
// The category must have been added first.
func (s *ServiceCatalogImpl) AddService(ctx context.Context, token domain.Address, id domain.ServiceID, category domain.Tag, caller domain.EIN) error {
	if category.IsZero() {
		return apperror.Validation("category tag is required")
	}

	err := inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if _, err := requireOwner(ctx, s.tokens, tx, token, caller); err != nil {
			return err
		}

		existing, err := s.categories.GetForShare(ctx, tx, token, category)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("check category: %w", err))
		}
		if existing == nil {
			return apperror.ErrUnknownCategory(category.String())
		}

		assignment := &domain.ServiceAssignment{
			Token:     token,
			ServiceID: id,
			Category:  category,
			Active:    true,
			UpdatedAt: s.now(),
		}
		if err := s.services.Upsert(ctx, tx, assignment); err != nil {
			return apperror.InternalError(fmt.Errorf("upsert service: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("token", token.Hex()).
		Uint64("service_id", uint64(id)).
		Str("category", category.String()).
		Msg("service added")
	return nil
}

// GetService returns the category tag, or "" when the assignment is absent or removed.
func (s *ServiceCatalogImpl) GetService(ctx context.Context, token domain.Address, id domain.ServiceID) (string, error) {
	assignment, err := s.LookupService(ctx, token, id)
	if err != nil {
		return "", err
	}
	if assignment == nil || !assignment.Active {
		return "", nil
	}
	return assignment.Category.String(), nil
}

// IsProvider reports the active flag; false when the assignment is absent.
func (s *ServiceCatalogImpl) IsProvider(ctx context.Context, token domain.Address, id domain.ServiceID) (bool, error) {
	assignment, err := s.LookupService(ctx, token, id)
	if err != nil {
		return false, err
	}
	return assignment != nil && assignment.Active, nil
}

// LookupService returns the raw assignment: nil when never set,
// Active=false with RemovedAt stamped when removed.
func (s *ServiceCatalogImpl) LookupService(ctx context.Context, token domain.Address, id domain.ServiceID) (*domain.ServiceAssignment, error) {
	assignment, err := s.services.Get(ctx, token, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get service: %w", err))
	}
	return assignment, nil
}

// ListServices returns every assignment of the token ordered by id, removed ones included.
func (s *ServiceCatalogImpl) ListServices(ctx context.Context, token domain.Address) ([]domain.ServiceAssignment, error) {
	services, err := s.services.List(ctx, token)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list services: %w", err))
	}
	return services, nil
}

// RemoveService soft-deletes an assignment. Removing an absent or already
// removed id succeeds without change.
func (s *ServiceCatalogImpl) RemoveService(ctx context.Context, token domain.Address, id domain.ServiceID, caller domain.EIN) error {
	var found bool
	err := inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if _, err := requireOwner(ctx, s.tokens, tx, token, caller); err != nil {
			return err
		}
		var err error
		found, err = s.services.MarkRemoved(ctx, tx, token, id, s.now())
		if err != nil {
			return apperror.InternalError(fmt.Errorf("remove service: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("token", token.Hex()).
		Uint64("service_id", uint64(id)).
		Bool("found", found).
		Msg("service removed")
	return nil
}
