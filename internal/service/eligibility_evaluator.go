package service

import (
	"context"
	"fmt"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const evaluationTimeout = 5 * time.Second

// EligibilityEvaluatorImpl implements ports.EligibilityEvaluator.
type EligibilityEvaluatorImpl struct {
	rules    ports.SuitabilityRuleRepository
	bans     ports.CountryBanRepository
	buyers   ports.BuyerRepository
	recorder ports.EvaluationRecorder // nil = metrics disabled
	log      zerolog.Logger
	now      func() time.Time
}

// NewEligibilityEvaluator creates a new EligibilityEvaluatorImpl.
func NewEligibilityEvaluator(
	rules ports.SuitabilityRuleRepository,
	bans ports.CountryBanRepository,
	buyers ports.BuyerRepository,
	recorder ports.EvaluationRecorder,
	log zerolog.Logger,
) *EligibilityEvaluatorImpl {
	return &EligibilityEvaluatorImpl{
		rules:    rules,
		bans:     bans,
		buyers:   buyers,
		recorder: recorder,
		log:      log,
		now:      utcNow,
	}
}

// WithClock overrides the clock ages are computed against.
func (s *EligibilityEvaluatorImpl) WithClock(now func() time.Time) *EligibilityEvaluatorImpl {
	s.now = now
	return s
}

type evaluationInputs struct {
	rule   *domain.SuitabilityRule
	buyer  *domain.Buyer
	banned bool
}

// Evaluate loads the token's rule and the buyer's record and reports every
// condition the buyer fails.
func (s *EligibilityEvaluatorImpl) Evaluate(ctx context.Context, token domain.Address, ein domain.EIN) (*domain.Verdict, error) {
	start := time.Now()

	in, err := s.gather(ctx, token, ein)
	if err != nil {
		return nil, err
	}
	if in.rule == nil {
		return nil, apperror.ErrNotFound("suitability rule")
	}
	if in.buyer == nil {
		return nil, apperror.ErrNotFound("buyer")
	}

	verdict := domain.Evaluate(in.rule, in.buyer, in.banned, s.now())

	if s.recorder != nil {
		s.recorder.RecordEvaluation(verdict)
		s.recorder.ObserveEvaluateLatency(time.Since(start))
	}

	s.log.Debug().
		Str("token", token.Hex()).
		Uint64("ein", uint64(ein)).
		Bool("eligible", verdict.Eligible).
		Interface("reasons", verdict.Reasons).
		Msg("eligibility evaluated")

	return verdict, nil
}

// gather loads the rule and the buyer in parallel. The ban lookup needs the
// buyer's country, so it follows the buyer fetch on the same goroutine.
func (s *EligibilityEvaluatorImpl) gather(ctx context.Context, token domain.Address, ein domain.EIN) (*evaluationInputs, error) {
	ctx, cancel := context.WithTimeout(ctx, evaluationTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	in := &evaluationInputs{}

	g.Go(func() error {
		rule, err := s.rules.GetByToken(ctx, token)
		if err != nil {
			return fmt.Errorf("get suitability rule: %w", err)
		}
		in.rule = rule
		return nil
	})

	g.Go(func() error {
		buyer, err := s.buyers.GetByEIN(ctx, ein)
		if err != nil {
			return fmt.Errorf("get buyer: %w", err)
		}
		if buyer == nil {
			return nil
		}
		in.buyer = buyer

		ban, err := s.bans.Get(ctx, token, buyer.Country)
		if err != nil {
			return fmt.Errorf("get country ban: %w", err)
		}
		in.banned = ban != nil && ban.Banned
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.InternalError(err)
	}
	return in, nil
}
