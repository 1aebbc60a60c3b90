// Package memory holds the in-process registry stores used when no
// PostgreSQL database is configured.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	errUnsupported = errors.New("memory: operation not supported by in-memory transaction")
	errForeignTx   = errors.New("memory: transaction was not started by the memory transactor")
)

// Transactor implements ports.DBTransactor. Transactions are serialised:
// Begin blocks until the previous transaction commits or rolls back.
type Transactor struct {
	sem chan struct{}
}

// NewTransactor creates a new Transactor.
func NewTransactor() *Transactor {
	return &Transactor{sem: make(chan struct{}, 1)}
}

// Begin acquires the write lock and starts a transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	select {
	case t.sem <- struct{}{}:
		return &Tx{owner: t}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (t *Transactor) release() {
	<-t.sem
}

// Tx buffers writes and applies them on Commit. Commit and Rollback
// release the write lock exactly once; later calls return pgx.ErrTxClosed.
type Tx struct {
	owner   *Transactor
	once    sync.Once
	pending []func()
}

func (tx *Tx) enqueue(apply func()) {
	tx.pending = append(tx.pending, apply)
}

func asTx(tx pgx.Tx) (*Tx, error) {
	mtx, ok := tx.(*Tx)
	if !ok || mtx == nil {
		return nil, errForeignTx
	}
	return mtx, nil
}

func (tx *Tx) Commit(ctx context.Context) error {
	closed := false
	tx.once.Do(func() {
		for _, apply := range tx.pending {
			apply()
		}
		tx.pending = nil
		tx.owner.release()
		closed = true
	})
	if !closed {
		return pgx.ErrTxClosed
	}
	return nil
}

func (tx *Tx) Rollback(ctx context.Context) error {
	closed := false
	tx.once.Do(func() {
		tx.pending = nil
		tx.owner.release()
		closed = true
	})
	if !closed {
		return pgx.ErrTxClosed
	}
	return nil
}

func (tx *Tx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, errUnsupported }
func (tx *Tx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errUnsupported
}
func (tx *Tx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (tx *Tx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (tx *Tx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errUnsupported
}
func (tx *Tx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), errUnsupported
}
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errUnsupported
}
func (tx *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return errRow{}
}
func (tx *Tx) Conn() *pgx.Conn { return nil }

type errRow struct{}

func (errRow) Scan(dest ...any) error { return errUnsupported }
