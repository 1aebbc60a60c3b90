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

// BuyerLedgerImpl implements ports.BuyerLedger.
type BuyerLedgerImpl struct {
	buyers     ports.BuyerRepository
	tokens     ports.TokenRepository
	services   ports.ServiceAssignmentRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewBuyerLedger creates a new BuyerLedgerImpl.
func NewBuyerLedger(
	buyers ports.BuyerRepository,
	tokens ports.TokenRepository,
	services ports.ServiceAssignmentRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *BuyerLedgerImpl {
	return &BuyerLedgerImpl{
		buyers:     buyers,
		tokens:     tokens,
		services:   services,
		transactor: transactor,
		log:        log,
		now:        utcNow,
	}
}

// AddBuyer registers a buyer with every compliance flag false.
// The caller is recorded as the buyer's registrar.
func (s *BuyerLedgerImpl) AddBuyer(ctx context.Context, in ports.BuyerInput, caller domain.EIN) (*domain.Buyer, error) {
	if in.EIN == 0 {
		return nil, apperror.Validation("buyer identity is required")
	}
	if in.Country.IsZero() {
		return nil, apperror.Validation("country code is required")
	}
	if in.NetWorth < 0 || in.Salary < 0 {
		return nil, apperror.InvalidArgument(domain.ErrNegativeAmount)
	}
	birth, err := domain.BirthDate(in.BirthYear, in.BirthMonth, in.BirthDay)
	if err != nil {
		return nil, apperror.InvalidArgument(err)
	}

	now := s.now()
	buyer := &domain.Buyer{
		EIN:          in.EIN,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Country:      in.Country,
		BirthDate:    birth,
		NetWorth:     in.NetWorth,
		Salary:       in.Salary,
		RegistrarEIN: caller,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if err := s.buyers.Create(ctx, tx, buyer); err != nil {
			if errors.Is(err, ports.ErrDuplicateKey) {
				return apperror.ErrAlreadyRegistered("buyer")
			}
			return apperror.InternalError(fmt.Errorf("create buyer: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("ein", uint64(buyer.EIN)).
		Str("country", buyer.Country.String()).
		Uint64("registrar_ein", uint64(caller)).
		Msg("buyer added")
	return buyer, nil
}

// GetBuyer returns the full record. NotFound if absent.
func (s *BuyerLedgerImpl) GetBuyer(ctx context.Context, ein domain.EIN) (*domain.Buyer, error) {
	buyer, err := s.buyers.GetByEIN(ctx, ein)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get buyer: %w", err))
	}
	if buyer == nil {
		return nil, apperror.ErrNotFound("buyer")
	}
	return buyer, nil
}

func (s *BuyerLedgerImpl) GetBuyerFirstName(ctx context.Context, ein domain.EIN) (string, error) {
	buyer, err := s.GetBuyer(ctx, ein)
	if err != nil {
		return "", err
	}
	return buyer.FirstName, nil
}

func (s *BuyerLedgerImpl) GetBuyerLastName(ctx context.Context, ein domain.EIN) (string, error) {
	buyer, err := s.GetBuyer(ctx, ein)
	if err != nil {
		return "", err
	}
	return buyer.LastName, nil
}

func (s *BuyerLedgerImpl) GetBuyerIsoCountryCode(ctx context.Context, ein domain.EIN) (string, error) {
	buyer, err := s.GetBuyer(ctx, ein)
	if err != nil {
		return "", err
	}
	return buyer.Country.String(), nil
}

func (s *BuyerLedgerImpl) GetBuyerBirthTimestamp(ctx context.Context, ein domain.EIN) (int64, error) {
	buyer, err := s.GetBuyer(ctx, ein)
	if err != nil {
		return 0, err
	}
	return buyer.BirthTimestamp(), nil
}

func (s *BuyerLedgerImpl) GetBuyerNetWorth(ctx context.Context, ein domain.EIN) (int64, error) {
	buyer, err := s.GetBuyer(ctx, ein)
	if err != nil {
		return 0, err
	}
	return buyer.NetWorth, nil
}

func (s *BuyerLedgerImpl) GetBuyerSalary(ctx context.Context, ein domain.EIN) (int64, error) {
	buyer, err := s.GetBuyer(ctx, ein)
	if err != nil {
		return 0, err
	}
	return buyer.Salary, nil
}

func (s *BuyerLedgerImpl) GetBuyerInvestorStatus(ctx context.Context, ein domain.EIN) (bool, error) {
	buyer, err := s.GetBuyer(ctx, ein)
	if err != nil {
		return false, err
	}
	return buyer.InvestorStatus, nil
}

func (s *BuyerLedgerImpl) GetBuyerKycStatus(ctx context.Context, ein domain.EIN) (bool, error) {
	return s.complianceStatus(ctx, ein, domain.ComplianceKYC)
}

func (s *BuyerLedgerImpl) GetBuyerAmlStatus(ctx context.Context, ein domain.EIN) (bool, error) {
	return s.complianceStatus(ctx, ein, domain.ComplianceAML)
}

func (s *BuyerLedgerImpl) GetBuyerCftStatus(ctx context.Context, ein domain.EIN) (bool, error) {
	return s.complianceStatus(ctx, ein, domain.ComplianceCFT)
}

func (s *BuyerLedgerImpl) complianceStatus(ctx context.Context, ein domain.EIN, kind domain.ComplianceKind) (bool, error) {
	buyer, err := s.GetBuyer(ctx, ein)
	if err != nil {
		return false, err
	}
	return buyer.ComplianceStatus(kind), nil
}

// SetBuyerInvestorStatus records buyer-declared accreditation.
// Only the buyer or the buyer's registrar may change it.
func (s *BuyerLedgerImpl) SetBuyerInvestorStatus(ctx context.Context, ein domain.EIN, status bool, caller domain.EIN) error {
	err := inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		buyer, err := s.buyers.GetForUpdate(ctx, tx, ein)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock buyer: %w", err))
		}
		if buyer == nil {
			return apperror.ErrNotFound("buyer")
		}
		if caller != buyer.EIN && caller != buyer.RegistrarEIN {
			return apperror.ErrUnauthorized()
		}

		buyer.InvestorStatus = status
		buyer.UpdatedAt = s.now()
		if err := s.buyers.Update(ctx, tx, buyer); err != nil {
			return apperror.InternalError(fmt.Errorf("update buyer: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Uint64("ein", uint64(ein)).Bool("investor_status", status).Msg("investor status updated")
	return nil
}

func (s *BuyerLedgerImpl) AddKycServiceToBuyer(ctx context.Context, ein domain.EIN, token domain.Address, id domain.ServiceID, caller domain.EIN) error {
	return s.AttachCompliance(ctx, domain.ComplianceKYC, ein, token, id, caller)
}

func (s *BuyerLedgerImpl) AddAmlServiceToBuyer(ctx context.Context, ein domain.EIN, token domain.Address, id domain.ServiceID, caller domain.EIN) error {
	return s.AttachCompliance(ctx, domain.ComplianceAML, ein, token, id, caller)
}

func (s *BuyerLedgerImpl) AddCftServiceToBuyer(ctx context.Context, ein domain.EIN, token domain.Address, id domain.ServiceID, caller domain.EIN) error {
	return s.AttachCompliance(ctx, domain.ComplianceCFT, ein, token, id, caller)
}

// AttachCompliance sets the buyer's flag for kind after checking that the
// referenced service exists, is an active provider and carries the kind's
// category. On any failure the flag is left untouched.
//
// The caller must own the token that declared the service.
func (s *BuyerLedgerImpl) AttachCompliance(ctx context.Context, kind domain.ComplianceKind, ein domain.EIN, token domain.Address, id domain.ServiceID, caller domain.EIN) error {
	want := kind.Category()
	if want.IsZero() {
		return apperror.Validation(fmt.Sprintf("unknown compliance kind %q", kind))
	}

	err := inTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if _, err := requireOwner(ctx, s.tokens, tx, token, caller); err != nil {
			return err
		}

		buyer, err := s.buyers.GetForUpdate(ctx, tx, ein)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock buyer: %w", err))
		}
		if buyer == nil {
			return apperror.ErrNotFound("buyer")
		}

		assignment, err := s.services.GetForShare(ctx, tx, token, id)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("load service: %w", err))
		}
		if assignment == nil {
			return apperror.ErrServiceNotFound()
		}
		if !assignment.Active {
			return apperror.ErrServiceInactive()
		}
		if assignment.Category != want {
			return apperror.ErrWrongCategory(want.String(), assignment.Category.String())
		}

		buyer.MarkCompliant(kind, s.now())
		if err := s.buyers.Update(ctx, tx, buyer); err != nil {
			return apperror.InternalError(fmt.Errorf("update buyer: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Uint64("ein", uint64(ein)).
		Str("kind", string(kind)).
		Str("token", token.Hex()).
		Uint64("service_id", uint64(id)).
		Msg("compliance attached")
	return nil
}
