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

// EligibilityEngineImpl implements ports.EligibilityEngine.
type EligibilityEngineImpl struct {
	tokens     ports.TokenRepository
	rules      ports.SuitabilityRuleRepository
	bans       ports.CountryBanRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewEligibilityEngine creates a new EligibilityEngineImpl.
func NewEligibilityEngine(
	tokens ports.TokenRepository,
	rules ports.SuitabilityRuleRepository,
	bans ports.CountryBanRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *EligibilityEngineImpl {
	return &EligibilityEngineImpl{
		tokens:     tokens,
		rules:      rules,
		bans:       bans,
		transactor: transactor,
		log:        log,
		now:        utcNow,
	}
}

// AssignTokenValues replaces the token's suitability rule wholesale. Owner only.
func (s *EligibilityEngineImpl) AssignTokenValues(ctx context.Context, rule domain.SuitabilityRule, caller domain.EIN) error {
	if err := rule.Validate(); err != nil {
		return apperror.InvalidArgument(err)
	}

	err := inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if _, err := requireOwner(ctx, s.tokens, tx, rule.Token, caller); err != nil {
			return err
		}
		rule.UpdatedAt = s.now()
		if err := s.rules.Upsert(ctx, tx, &rule); err != nil {
			return apperror.InternalError(fmt.Errorf("upsert suitability rule: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("token", rule.Token.Hex()).
		Int("min_age", rule.MinimumAge).
		Int64("min_net_worth", rule.MinimumNetWorth).
		Int64("min_salary", rule.MinimumSalary).
		Msg("suitability rule assigned")
	return nil
}

// GetRule returns the token's rule. NotFound if never assigned.
func (s *EligibilityEngineImpl) GetRule(ctx context.Context, token domain.Address) (*domain.SuitabilityRule, error) {
	rule, err := s.rules.GetByToken(ctx, token)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get suitability rule: %w", err))
	}
	if rule == nil {
		return nil, apperror.ErrNotFound("suitability rule")
	}
	return rule, nil
}

func (s *EligibilityEngineImpl) GetTokenMinimumAge(ctx context.Context, token domain.Address) (int, error) {
	rule, err := s.GetRule(ctx, token)
	if err != nil {
		return 0, err
	}
	return rule.MinimumAge, nil
}

func (s *EligibilityEngineImpl) GetTokenMinimumNetWorth(ctx context.Context, token domain.Address) (int64, error) {
	rule, err := s.GetRule(ctx, token)
	if err != nil {
		return 0, err
	}
	return rule.MinimumNetWorth, nil
}

func (s *EligibilityEngineImpl) GetTokenMinimumSalary(ctx context.Context, token domain.Address) (int64, error) {
	rule, err := s.GetRule(ctx, token)
	if err != nil {
		return 0, err
	}
	return rule.MinimumSalary, nil
}

func (s *EligibilityEngineImpl) GetTokenInvestorStatusRequired(ctx context.Context, token domain.Address) (bool, error) {
	rule, err := s.GetRule(ctx, token)
	if err != nil {
		return false, err
	}
	return rule.AccreditedRequired, nil
}

func (s *EligibilityEngineImpl) GetTokenAmlRequired(ctx context.Context, token domain.Address) (bool, error) {
	rule, err := s.GetRule(ctx, token)
	if err != nil {
		return false, err
	}
	return rule.AMLRequired, nil
}

func (s *EligibilityEngineImpl) GetTokenCftRequired(ctx context.Context, token domain.Address) (bool, error) {
	rule, err := s.GetRule(ctx, token)
	if err != nil {
		return false, err
	}
	return rule.CFTRequired, nil
}

// AddCountryBan bans a jurisdiction for the token. Owner only.
func (s *EligibilityEngineImpl) AddCountryBan(ctx context.Context, token domain.Address, country domain.Tag, caller domain.EIN) error {
	return s.setCountryBan(ctx, token, country, true, caller)
}

// LiftCountryBan clears a ban. The record is kept with Banned=false.
func (s *EligibilityEngineImpl) LiftCountryBan(ctx context.Context, token domain.Address, country domain.Tag, caller domain.EIN) error {
	return s.setCountryBan(ctx, token, country, false, caller)
}

func (s *EligibilityEngineImpl) setCountryBan(ctx context.Context, token domain.Address, country domain.Tag, banned bool, caller domain.EIN) error {
	if country.IsZero() {
		return apperror.Validation("country code is required")
	}

	err := inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if _, err := requireOwner(ctx, s.tokens, tx, token, caller); err != nil {
			return err
		}
		ban := &domain.CountryBan{
			Token:     token,
			Country:   country,
			Banned:    banned,
			UpdatedAt: s.now(),
		}
		if err := s.bans.Upsert(ctx, tx, ban); err != nil {
			return apperror.InternalError(fmt.Errorf("upsert country ban: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("token", token.Hex()).
		Str("country", country.String()).
		Bool("banned", banned).
		Msg("country ban updated")
	return nil
}

// GetCountryBan returns the ban flag; false when never set.
func (s *EligibilityEngineImpl) GetCountryBan(ctx context.Context, token domain.Address, country domain.Tag) (bool, error) {
	ban, err := s.bans.Get(ctx, token, country)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get country ban: %w", err))
	}
	return ban != nil && ban.Banned, nil
}
