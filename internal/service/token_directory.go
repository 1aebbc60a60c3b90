package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TokenDirectoryImpl implements ports.TokenDirectory.
type TokenDirectoryImpl struct {
	tokens     ports.TokenRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewTokenDirectory creates a new TokenDirectoryImpl.
func NewTokenDirectory(tokens ports.TokenRepository, transactor ports.DBTransactor, log zerolog.Logger) *TokenDirectoryImpl {
	return &TokenDirectoryImpl{
		tokens:     tokens,
		transactor: transactor,
		log:        log,
		now:        utcNow,
	}
}

// AppointToken registers a token with the caller as its owner.
func (s *TokenDirectoryImpl) AppointToken(ctx context.Context, req ports.AppointTokenRequest) (*domain.TokenRecord, error) {
	if err := validateAppointToken(req); err != nil {
		return nil, err
	}

	record := &domain.TokenRecord{
		Address:     req.Address,
		Symbol:      req.Symbol,
		Name:        req.Name,
		Description: req.Description,
		Decimals:    uint8(req.Decimals),
		OwnerEIN:    req.CallerEIN,
		CreatedAt:   s.now(),
	}

	err := inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if err := s.tokens.Create(ctx, tx, record); err != nil {
			if errors.Is(err, ports.ErrDuplicateKey) {
				return apperror.ErrAlreadyRegistered("token")
			}
			return apperror.InternalError(fmt.Errorf("create token: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("token", record.Address.Hex()).
		Str("symbol", record.Symbol).
		Uint64("owner_ein", uint64(record.OwnerEIN)).
		Msg("token appointed")

	return record, nil
}

func validateAppointToken(req ports.AppointTokenRequest) error {
	if req.Address == (domain.Address{}) {
		return apperror.Validation("token address must not be zero")
	}
	if req.CallerEIN == 0 {
		return apperror.Validation("caller identity is required")
	}
	if req.Decimals < 0 || req.Decimals > domain.MaxDecimals {
		return apperror.Validation(fmt.Sprintf("decimals must be between 0 and %d", domain.MaxDecimals))
	}
	if len(req.Symbol) > domain.MaxSymbolLen {
		return apperror.Validation(fmt.Sprintf("symbol must be at most %d bytes", domain.MaxSymbolLen))
	}
	if len(req.Name) > domain.MaxNameLen {
		return apperror.Validation(fmt.Sprintf("name must be at most %d bytes", domain.MaxNameLen))
	}
	return nil
}

// GetToken returns the full record. NotFound if the address is unregistered.
func (s *TokenDirectoryImpl) GetToken(ctx context.Context, addr domain.Address) (*domain.TokenRecord, error) {
	record, err := s.tokens.GetByAddress(ctx, addr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get token: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotFound("token")
	}
	return record, nil
}

func (s *TokenDirectoryImpl) GetOwnerIdentity(ctx context.Context, addr domain.Address) (domain.EIN, error) {
	record, err := s.GetToken(ctx, addr)
	if err != nil {
		return 0, err
	}
	return record.OwnerEIN, nil
}

func (s *TokenDirectoryImpl) GetSymbol(ctx context.Context, addr domain.Address) (string, error) {
	record, err := s.GetToken(ctx, addr)
	if err != nil {
		return "", err
	}
	return record.Symbol, nil
}

func (s *TokenDirectoryImpl) GetName(ctx context.Context, addr domain.Address) (string, error) {
	record, err := s.GetToken(ctx, addr)
	if err != nil {
		return "", err
	}
	return record.Name, nil
}

func (s *TokenDirectoryImpl) GetDescription(ctx context.Context, addr domain.Address) (string, error) {
	record, err := s.GetToken(ctx, addr)
	if err != nil {
		return "", err
	}
	return record.Description, nil
}

func (s *TokenDirectoryImpl) GetDecimals(ctx context.Context, addr domain.Address) (uint8, error) {
	record, err := s.GetToken(ctx, addr)
	if err != nil {
		return 0, err
	}
	return record.Decimals, nil
}
