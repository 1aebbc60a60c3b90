package postgres

import (
	"context"
	"errors"
	"fmt"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const buyerColumns = `ein, first_name, last_name, country, birth_date, net_worth, salary,
	investor_status, kyc_status, aml_status, cft_status, registrar_ein, created_at, updated_at`

// BuyerRepo implements ports.BuyerRepository. First and last names are
// stored as AES-GCM ciphertext.
type BuyerRepo struct {
	pool   Pool
	cipher ports.EncryptionService
}

// NewBuyerRepo creates a new BuyerRepo.
func NewBuyerRepo(pool Pool, cipher ports.EncryptionService) *BuyerRepo {
	return &BuyerRepo{pool: pool, cipher: cipher}
}

func (r *BuyerRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.Buyer) error {
	first, last, err := r.sealNames(b)
	if err != nil {
		return err
	}

	query := `INSERT INTO buyers (` + buyerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = tx.Exec(ctx, query,
		b.EIN, first, last, b.Country.String(), b.BirthDate, b.NetWorth, b.Salary,
		b.InvestorStatus, b.KYCStatus, b.AMLStatus, b.CFTStatus, b.RegistrarEIN, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateKey
		}
		return fmt.Errorf("insert buyer: %w", err)
	}
	return nil
}

// GetByEIN fetches a buyer (non-locking read).
func (r *BuyerRepo) GetByEIN(ctx context.Context, ein domain.EIN) (*domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE ein = $1`
	return r.scanBuyer(r.pool.QueryRow(ctx, query, ein), "get buyer")
}

// GetForUpdate fetches a buyer with pessimistic locking.
// This MUST be called within a transaction.
func (r *BuyerRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, ein domain.EIN) (*domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE ein = $1 FOR UPDATE`
	return r.scanBuyer(tx.QueryRow(ctx, query, ein), "get buyer for update")
}

// Update writes the mutable buyer flags. Profile fields are immutable.
func (r *BuyerRepo) Update(ctx context.Context, tx pgx.Tx, b *domain.Buyer) error {
	query := `UPDATE buyers SET investor_status = $1, kyc_status = $2, aml_status = $3, cft_status = $4, updated_at = $5
		WHERE ein = $6`

	_, err := tx.Exec(ctx, query,
		b.InvestorStatus, b.KYCStatus, b.AMLStatus, b.CFTStatus, b.UpdatedAt, b.EIN,
	)
	if err != nil {
		return fmt.Errorf("update buyer: %w", err)
	}
	return nil
}

func (r *BuyerRepo) sealNames(b *domain.Buyer) (string, string, error) {
	first, err := r.cipher.Encrypt(b.FirstName)
	if err != nil {
		return "", "", fmt.Errorf("encrypt first name: %w", err)
	}
	last, err := r.cipher.Encrypt(b.LastName)
	if err != nil {
		return "", "", fmt.Errorf("encrypt last name: %w", err)
	}
	return first, last, nil
}

func (r *BuyerRepo) scanBuyer(row pgx.Row, op string) (*domain.Buyer, error) {
	var (
		b           domain.Buyer
		first, last string
		country     string
	)
	err := row.Scan(
		&b.EIN, &first, &last, &country, &b.BirthDate, &b.NetWorth, &b.Salary,
		&b.InvestorStatus, &b.KYCStatus, &b.AMLStatus, &b.CFTStatus, &b.RegistrarEIN, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if b.Country, err = scanTag(country); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if b.FirstName, err = r.cipher.Decrypt(first); err != nil {
		return nil, fmt.Errorf("%s: decrypt first name: %w", op, err)
	}
	if b.LastName, err = r.cipher.Decrypt(last); err != nil {
		return nil, fmt.Errorf("%s: decrypt last name: %w", op, err)
	}
	b.BirthDate = b.BirthDate.UTC()
	return &b, nil
}
