package postgres

import (
	"context"
	"errors"
	"fmt"

	"pst-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SuitabilityRuleRepo implements ports.SuitabilityRuleRepository.
type SuitabilityRuleRepo struct {
	pool Pool
}

// NewSuitabilityRuleRepo creates a new SuitabilityRuleRepo.
func NewSuitabilityRuleRepo(pool Pool) *SuitabilityRuleRepo {
	return &SuitabilityRuleRepo{pool: pool}
}

// Upsert replaces all six fields of the token's rule at once.
func (r *SuitabilityRuleRepo) Upsert(ctx context.Context, tx pgx.Tx, rule *domain.SuitabilityRule) error {
	query := `INSERT INTO suitability_rules (token, minimum_age, minimum_net_worth, minimum_salary,
			accredited_required, aml_required, cft_required, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (token) DO UPDATE SET
			minimum_age = EXCLUDED.minimum_age, minimum_net_worth = EXCLUDED.minimum_net_worth,
			minimum_salary = EXCLUDED.minimum_salary, accredited_required = EXCLUDED.accredited_required,
			aml_required = EXCLUDED.aml_required, cft_required = EXCLUDED.cft_required,
			updated_at = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query,
		rule.Token, rule.MinimumAge, rule.MinimumNetWorth, rule.MinimumSalary,
		rule.AccreditedRequired, rule.AMLRequired, rule.CFTRequired, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert suitability rule: %w", err)
	}
	return nil
}

func (r *SuitabilityRuleRepo) GetByToken(ctx context.Context, token domain.Address) (*domain.SuitabilityRule, error) {
	query := `SELECT token, minimum_age, minimum_net_worth, minimum_salary,
			accredited_required, aml_required, cft_required, updated_at
		FROM suitability_rules WHERE token = $1`

	rule := &domain.SuitabilityRule{}
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&rule.Token, &rule.MinimumAge, &rule.MinimumNetWorth, &rule.MinimumSalary,
		&rule.AccreditedRequired, &rule.AMLRequired, &rule.CFTRequired, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get suitability rule: %w", err)
	}
	return rule, nil
}

// CountryBanRepo implements ports.CountryBanRepository.
type CountryBanRepo struct {
	pool Pool
}

// NewCountryBanRepo creates a new CountryBanRepo.
func NewCountryBanRepo(pool Pool) *CountryBanRepo {
	return &CountryBanRepo{pool: pool}
}

func (r *CountryBanRepo) Upsert(ctx context.Context, tx pgx.Tx, ban *domain.CountryBan) error {
	query := `INSERT INTO country_bans (token, country, banned, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token, country) DO UPDATE SET banned = EXCLUDED.banned, updated_at = EXCLUDED.updated_at`

	if _, err := tx.Exec(ctx, query, ban.Token, ban.Country.String(), ban.Banned, ban.UpdatedAt); err != nil {
		return fmt.Errorf("upsert country ban: %w", err)
	}
	return nil
}

func (r *CountryBanRepo) Get(ctx context.Context, token domain.Address, country domain.Tag) (*domain.CountryBan, error) {
	query := `SELECT banned, updated_at FROM country_bans WHERE token = $1 AND country = $2`

	ban := &domain.CountryBan{Token: token, Country: country}
	err := r.pool.QueryRow(ctx, query, token, country.String()).Scan(&ban.Banned, &ban.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get country ban: %w", err)
	}
	return ban, nil
}
