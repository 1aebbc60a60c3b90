package service

import (
	"context"
	"fmt"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

// requireOwner loads the token inside tx and checks that caller registered it.
// The owner check and the caller's write must share tx.
func requireOwner(ctx context.Context, tokens ports.TokenRepository, tx pgx.Tx, addr domain.Address, caller domain.EIN) (*domain.TokenRecord, error) {
	token, err := tokens.GetForShare(ctx, tx, addr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load token for owner check: %w", err))
	}
	if token == nil {
		return nil, apperror.ErrNotFound("token")
	}
	if !token.IsOwnedBy(caller) {
		return nil, apperror.ErrUnauthorized()
	}
	return token, nil
}

// inTx runs fn inside a transaction and commits when fn succeeds.
func inTx(ctx context.Context, transactor ports.DBTransactor, fn func(tx pgx.Tx) error) error {
	dbTx, err := transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := fn(dbTx); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}
