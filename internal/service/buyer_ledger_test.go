package service

import (
	"context"
	"testing"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/internal/core/ports/mocks"
	"pst-registry/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	buyerEIN     domain.EIN = 21
	registrarEIN domain.EIN = 5
)

type ledgerTestDeps struct {
	svc        *BuyerLedgerImpl
	buyers     *mocks.MockBuyerRepository
	tokens     *mocks.MockTokenRepository
	services   *mocks.MockServiceAssignmentRepository
	transactor *mocks.MockDBTransactor
}

func setupBuyerLedger(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		buyers:     mocks.NewMockBuyerRepository(ctrl),
		tokens:     mocks.NewMockTokenRepository(ctrl),
		services:   mocks.NewMockServiceAssignmentRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
	}
	d.svc = NewBuyerLedger(d.buyers, d.tokens, d.services, d.transactor, newTestLogger())
	d.svc.now = fixedClock
	return d
}

func buyerInput() ports.BuyerInput {
	return ports.BuyerInput{
		EIN:        buyerEIN,
		FirstName:  "Test first name 1",
		LastName:   "Test last name 1",
		Country:    domain.MustTag("GMB"),
		BirthYear:  1984,
		BirthMonth: 12,
		BirthDay:   12,
		NetWorth:   100000,
		Salary:     50000,
	}
}

func storedBuyer() *domain.Buyer {
	birth, _ := domain.BirthDate(1984, 12, 12)
	return &domain.Buyer{
		EIN:          buyerEIN,
		FirstName:    "Test first name 1",
		LastName:     "Test last name 1",
		Country:      domain.MustTag("GMB"),
		BirthDate:    birth,
		NetWorth:     100000,
		Salary:       50000,
		RegistrarEIN: registrarEIN,
	}
}

func TestBuyerLedger_AddBuyer_Success(t *testing.T) {
	d := setupBuyerLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.buyers.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	buyer, err := d.svc.AddBuyer(ctx, buyerInput(), registrarEIN)
	require.NoError(t, err)
	assert.Equal(t, buyerEIN, buyer.EIN)
	assert.Equal(t, registrarEIN, buyer.RegistrarEIN)
	assert.Equal(t, "GMB", buyer.Country.String())
	assert.False(t, buyer.InvestorStatus)
	assert.False(t, buyer.KYCStatus)
	assert.False(t, buyer.AMLStatus)
	assert.False(t, buyer.CFTStatus)
	assert.Equal(t, testNow, buyer.CreatedAt)
	assert.True(t, tx.committed)
}

func TestBuyerLedger_AddBuyer_Duplicate(t *testing.T) {
	d := setupBuyerLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.buyers.EXPECT().Create(ctx, tx, gomock.Any()).Return(ports.ErrDuplicateKey)

	_, err := d.svc.AddBuyer(ctx, buyerInput(), registrarEIN)
	assert.True(t, apperror.Is(err, apperror.CodeAlreadyRegistered))
}

func TestBuyerLedger_AddBuyer_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *ports.BuyerInput)
	}{
		{"zero identity", func(in *ports.BuyerInput) { in.EIN = 0 }},
		{"no country", func(in *ports.BuyerInput) { in.Country = domain.Tag{} }},
		{"negative net worth", func(in *ports.BuyerInput) { in.NetWorth = -1 }},
		{"negative salary", func(in *ports.BuyerInput) { in.Salary = -1 }},
		{"impossible date", func(in *ports.BuyerInput) { in.BirthMonth, in.BirthDay = 2, 30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupBuyerLedger(t)
			in := buyerInput()
			tt.mutate(&in)

			_, err := d.svc.AddBuyer(context.Background(), in, registrarEIN)
			assert.True(t, apperror.Is(err, apperror.CodeInvalidArgument))
		})
	}
}

func TestBuyerLedger_Accessors(t *testing.T) {
	d := setupBuyerLedger(t)
	ctx := context.Background()

	b := storedBuyer()
	b.AMLStatus = true
	d.buyers.EXPECT().GetByEIN(ctx, buyerEIN).Return(b, nil).AnyTimes()

	first, err := d.svc.GetBuyerFirstName(ctx, buyerEIN)
	require.NoError(t, err)
	assert.Equal(t, "Test first name 1", first)

	last, err := d.svc.GetBuyerLastName(ctx, buyerEIN)
	require.NoError(t, err)
	assert.Equal(t, "Test last name 1", last)

	country, err := d.svc.GetBuyerIsoCountryCode(ctx, buyerEIN)
	require.NoError(t, err)
	assert.Equal(t, "GMB", country)

	birth, err := d.svc.GetBuyerBirthTimestamp(ctx, buyerEIN)
	require.NoError(t, err)
	assert.Equal(t, int64(471657600), birth) // 1984-12-12T00:00:00Z

	netWorth, err := d.svc.GetBuyerNetWorth(ctx, buyerEIN)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), netWorth)

	salary, err := d.svc.GetBuyerSalary(ctx, buyerEIN)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), salary)

	investor, err := d.svc.GetBuyerInvestorStatus(ctx, buyerEIN)
	require.NoError(t, err)
	assert.False(t, investor)

	kyc, err := d.svc.GetBuyerKycStatus(ctx, buyerEIN)
	require.NoError(t, err)
	assert.False(t, kyc)

	aml, err := d.svc.GetBuyerAmlStatus(ctx, buyerEIN)
	require.NoError(t, err)
	assert.True(t, aml)

	cft, err := d.svc.GetBuyerCftStatus(ctx, buyerEIN)
	require.NoError(t, err)
	assert.False(t, cft)
}

func TestBuyerLedger_Accessors_NotFound(t *testing.T) {
	d := setupBuyerLedger(t)
	ctx := context.Background()

	d.buyers.EXPECT().GetByEIN(ctx, buyerEIN).Return(nil, nil)

	_, err := d.svc.GetBuyerKycStatus(ctx, buyerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

func TestBuyerLedger_SetBuyerInvestorStatus(t *testing.T) {
	tests := []struct {
		name     string
		caller   domain.EIN
		wantCode string
	}{
		{"buyer itself", buyerEIN, ""},
		{"registrar", registrarEIN, ""},
		{"stranger", strangerEIN, apperror.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupBuyerLedger(t)
			ctx := context.Background()
			tx := &mockTx{}

			d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
			d.buyers.EXPECT().GetForUpdate(ctx, tx, buyerEIN).Return(storedBuyer(), nil)
			if tt.wantCode == "" {
				d.buyers.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, b *domain.Buyer) error {
						assert.True(t, b.InvestorStatus)
						return nil
					})
			}

			err := d.svc.SetBuyerInvestorStatus(ctx, buyerEIN, true, tt.caller)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.True(t, tx.committed)
				return
			}
			assert.True(t, apperror.Is(err, tt.wantCode))
			assert.False(t, tx.committed)
		})
	}
}

func TestBuyerLedger_AttachCompliance_Success(t *testing.T) {
	d := setupBuyerLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)
	d.buyers.EXPECT().GetForUpdate(ctx, tx, buyerEIN).Return(storedBuyer(), nil)
	d.services.EXPECT().GetForShare(ctx, tx, testToken, domain.ServiceID(3)).
		Return(&domain.ServiceAssignment{ServiceID: 3, Category: domain.TagKYC, Active: true}, nil)
	d.buyers.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, b *domain.Buyer) error {
			assert.True(t, b.KYCStatus)
			assert.False(t, b.AMLStatus)
			assert.Equal(t, testNow, b.UpdatedAt)
			return nil
		})

	require.NoError(t, d.svc.AddKycServiceToBuyer(ctx, buyerEIN, testToken, 3, ownerEIN))
	assert.True(t, tx.committed)
}

func TestBuyerLedger_AttachCompliance_Rejections(t *testing.T) {
	removedAt := testNow
	tests := []struct {
		name     string
		attach   func(s *BuyerLedgerImpl) error
		service  *domain.ServiceAssignment
		wantCode string
	}{
		{
			name: "kyc with aml service",
			attach: func(s *BuyerLedgerImpl) error {
				return s.AddKycServiceToBuyer(context.Background(), buyerEIN, testToken, 3, ownerEIN)
			},
			service:  &domain.ServiceAssignment{ServiceID: 3, Category: domain.TagAML, Active: true},
			wantCode: apperror.CodeWrongCategory,
		},
		{
			name: "removed service",
			attach: func(s *BuyerLedgerImpl) error {
				return s.AddCftServiceToBuyer(context.Background(), buyerEIN, testToken, 3, ownerEIN)
			},
			service:  &domain.ServiceAssignment{ServiceID: 3, RemovedAt: &removedAt},
			wantCode: apperror.CodeServiceInactive,
		},
		{
			name: "never declared",
			attach: func(s *BuyerLedgerImpl) error {
				return s.AddAmlServiceToBuyer(context.Background(), buyerEIN, testToken, 3, ownerEIN)
			},
			service:  nil,
			wantCode: apperror.CodeServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupBuyerLedger(t)
			ctx := context.Background()
			tx := &mockTx{}

			d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
			d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)
			d.buyers.EXPECT().GetForUpdate(ctx, tx, buyerEIN).Return(storedBuyer(), nil)
			d.services.EXPECT().GetForShare(ctx, tx, testToken, domain.ServiceID(3)).Return(tt.service, nil)
			// no Update expected: the flag must stay untouched

			err := tt.attach(d.svc)
			assert.True(t, apperror.Is(err, tt.wantCode), "got %v", err)
			assert.False(t, tx.committed)
		})
	}
}

func TestBuyerLedger_AttachCompliance_NotOwner(t *testing.T) {
	d := setupBuyerLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)

	err := d.svc.AddKycServiceToBuyer(ctx, buyerEIN, testToken, 3, strangerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeUnauthorized))
}

func TestBuyerLedger_AttachCompliance_BuyerNotFound(t *testing.T) {
	d := setupBuyerLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)
	d.buyers.EXPECT().GetForUpdate(ctx, tx, buyerEIN).Return(nil, nil)

	err := d.svc.AddKycServiceToBuyer(ctx, buyerEIN, testToken, 3, ownerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

func TestBuyerLedger_AttachCompliance_UnknownKind(t *testing.T) {
	d := setupBuyerLedger(t)

	err := d.svc.AttachCompliance(context.Background(), domain.ComplianceKind("MLA"), buyerEIN, testToken, 3, ownerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeInvalidArgument))
}
