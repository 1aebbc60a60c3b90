package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

const minPassphraseLen = 8

// IdentityDirectoryImpl implements ports.IdentityDirectory.
type IdentityDirectoryImpl struct {
	accounts ports.AccountRepository
	hashSvc  ports.HashService
	tokenSvc ports.AccessTokenService
	log      zerolog.Logger
	now      func() time.Time
}

// NewIdentityDirectory creates a new IdentityDirectoryImpl.
func NewIdentityDirectory(
	accounts ports.AccountRepository,
	hashSvc ports.HashService,
	tokenSvc ports.AccessTokenService,
	log zerolog.Logger,
) *IdentityDirectoryImpl {
	return &IdentityDirectoryImpl{
		accounts: accounts,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      log,
		now:      utcNow,
	}
}

// RegisterAccount allocates the next EIN for an external account.
func (s *IdentityDirectoryImpl) RegisterAccount(ctx context.Context, account domain.Address, passphrase string) (domain.EIN, error) {
	if account == (domain.Address{}) {
		return 0, apperror.Validation("account address must not be zero")
	}
	if len(passphrase) < minPassphraseLen {
		return 0, apperror.Validation(fmt.Sprintf("passphrase must be at least %d characters", minPassphraseLen))
	}

	hash, err := s.hashSvc.Hash(passphrase)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("hash passphrase: %w", err))
	}

	acct, err := s.accounts.Register(ctx, account, hash, s.now())
	if err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			return 0, apperror.ErrAlreadyRegistered("account")
		}
		return 0, apperror.InternalError(fmt.Errorf("register account: %w", err))
	}

	s.log.Info().Str("account", account.Hex()).Uint64("ein", uint64(acct.EIN)).Msg("account registered")
	return acct.EIN, nil
}

// GetIdentity resolves an account to its EIN.
func (s *IdentityDirectoryImpl) GetIdentity(ctx context.Context, account domain.Address) (domain.EIN, error) {
	acct, err := s.accounts.GetByAddress(ctx, account)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("find account: %w", err))
	}
	if acct == nil {
		return 0, apperror.ErrNotFound("account")
	}
	return acct.EIN, nil
}

// Login validates the passphrase and returns a bearer token whose subject is the EIN.
func (s *IdentityDirectoryImpl) Login(ctx context.Context, account domain.Address, passphrase string) (string, time.Time, error) {
	acct, err := s.accounts.GetByAddress(ctx, account)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find account: %w", err))
	}
	if acct == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(passphrase, acct.PassphraseHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify passphrase: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(acct.EIN, acct.Address)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}
