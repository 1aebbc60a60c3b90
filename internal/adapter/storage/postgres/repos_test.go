package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testToken = domain.Address{0xAA, 0x01}
	testNow   = time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestTokenRepo_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTokenRepo(mock)
	ctx := context.Background()
	rec := &domain.TokenRecord{
		Address: testToken, Symbol: "PST", Name: "Permissioned", Decimals: 18, OwnerEIN: 1, CreatedAt: testNow,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tokens").
		WithArgs(rec.Address, rec.Symbol, rec.Name, rec.Description, rec.Decimals, rec.OwnerEIN, rec.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tx, rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTokenRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	a := pgxmock.AnyArg()
	mock.ExpectExec("INSERT INTO tokens").
		WithArgs(a, a, a, a, a, a, a).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	tx, _ := mock.Begin(ctx)
	err := repo.Create(ctx, tx, &domain.TokenRecord{Address: testToken})
	assert.ErrorIs(t, err, ports.ErrDuplicateKey)
}

func TestTokenRepo_GetForShare(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTokenRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM tokens WHERE address = \\$1 FOR SHARE").
		WithArgs(testToken).
		WillReturnRows(pgxmock.NewRows([]string{"address", "symbol", "name", "description", "decimals", "owner_ein", "created_at"}).
			AddRow(testToken, "PST", "Permissioned", "", uint8(0), domain.EIN(1), testNow))

	tx, _ := mock.Begin(ctx)
	got, err := repo.GetForShare(ctx, tx, testToken)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "PST", got.Symbol)
	assert.Equal(t, domain.EIN(1), got.OwnerEIN)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_GetByAddress_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTokenRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM tokens WHERE address").
		WithArgs(testToken).
		WillReturnRows(pgxmock.NewRows([]string{"address", "symbol", "name", "description", "decimals", "owner_ein", "created_at"}))

	got, err := repo.GetByAddress(context.Background(), testToken)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategoryRepo_UpsertAndList(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCategoryRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO categories .+ ON CONFLICT").
		WithArgs(testToken, "KYC", "Know your customer", testNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, _ := mock.Begin(ctx)
	require.NoError(t, repo.Upsert(ctx, tx, &domain.Category{
		Token: testToken, Tag: domain.TagKYC, Description: "Know your customer", UpdatedAt: testNow,
	}))

	mock.ExpectQuery("SELECT .+ FROM categories WHERE token = \\$1 ORDER BY tag").
		WithArgs(testToken).
		WillReturnRows(pgxmock.NewRows([]string{"token", "tag", "description", "updated_at"}).
			AddRow(testToken, "AML", "Anti money laundering", testNow).
			AddRow(testToken, "KYC", "Know your customer", testNow))

	list, err := repo.List(ctx, testToken)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.TagAML, list[0].Tag)
	assert.Equal(t, domain.TagKYC, list[1].Tag)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepo_GetForShare_Absent(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCategoryRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM categories WHERE .+ FOR SHARE").
		WithArgs(testToken, "CFT").
		WillReturnRows(pgxmock.NewRows([]string{"token", "tag", "description", "updated_at"}))

	tx, _ := mock.Begin(ctx)
	got, err := repo.GetForShare(ctx, tx, testToken, domain.TagCFT)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func serviceRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"token", "service_id", "category", "active", "updated_at", "removed_at"})
}

func TestServiceAssignmentRepo_Get(t *testing.T) {
	mock := newMockPool(t)
	repo := NewServiceAssignmentRepo(mock)
	removedAt := testNow.Add(time.Hour)

	mock.ExpectQuery("SELECT .+ FROM service_assignments WHERE token = \\$1 AND service_id = \\$2").
		WithArgs(testToken, domain.ServiceID(3)).
		WillReturnRows(serviceRows().AddRow(testToken, domain.ServiceID(3), "", false, removedAt, &removedAt))

	got, err := repo.Get(context.Background(), testToken, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)
	assert.True(t, got.Category.IsZero())
	assert.True(t, got.IsRemoved())
}

func TestServiceAssignmentRepo_Upsert(t *testing.T) {
	mock := newMockPool(t)
	repo := NewServiceAssignmentRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO service_assignments .+ ON CONFLICT").
		WithArgs(testToken, domain.ServiceID(3), "KYC", true, testNow, (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, _ := mock.Begin(ctx)
	require.NoError(t, repo.Upsert(ctx, tx, &domain.ServiceAssignment{
		Token: testToken, ServiceID: 3, Category: domain.TagKYC, Active: true, UpdatedAt: testNow,
	}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceAssignmentRepo_MarkRemoved(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"existing", 1, true},
		{"absent", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewServiceAssignmentRepo(mock)
			ctx := context.Background()

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE service_assignments").
				WithArgs(testToken, domain.ServiceID(3), testNow).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			tx, _ := mock.Begin(ctx)
			found, err := repo.MarkRemoved(ctx, tx, testToken, 3, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, found)
		})
	}
}

func TestServiceAssignmentRepo_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewServiceAssignmentRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM service_assignments WHERE token = \\$1 ORDER BY service_id").
		WithArgs(testToken).
		WillReturnRows(serviceRows().
			AddRow(testToken, domain.ServiceID(1), "AML", true, testNow, nil).
			AddRow(testToken, domain.ServiceID(3), "KYC", true, testNow, nil))

	list, err := repo.List(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.TagAML, list[0].Category)
	assert.Nil(t, list[0].RemovedAt)
}

func TestSuitabilityRuleRepo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSuitabilityRuleRepo(mock)
	ctx := context.Background()
	rule := &domain.SuitabilityRule{
		Token: testToken, MinimumAge: 21, MinimumNetWorth: 50000, MinimumSalary: 36000,
		AccreditedRequired: true, UpdatedAt: testNow,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO suitability_rules .+ ON CONFLICT \\(token\\)").
		WithArgs(testToken, 21, int64(50000), int64(36000), true, false, false, testNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT .+ FROM suitability_rules WHERE token").
		WithArgs(testToken).
		WillReturnRows(pgxmock.NewRows([]string{"token", "minimum_age", "minimum_net_worth", "minimum_salary",
			"accredited_required", "aml_required", "cft_required", "updated_at"}).
			AddRow(testToken, 21, int64(50000), int64(36000), true, false, false, testNow))

	tx, _ := mock.Begin(ctx)
	require.NoError(t, repo.Upsert(ctx, tx, rule))

	got, err := repo.GetByToken(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, rule, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountryBanRepo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCountryBanRepo(mock)
	ctx := context.Background()
	ken := domain.MustTag("KEN")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO country_bans").
		WithArgs(testToken, "KEN", true, testNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT banned, updated_at FROM country_bans").
		WithArgs(testToken, "KEN").
		WillReturnRows(pgxmock.NewRows([]string{"banned", "updated_at"}).AddRow(true, testNow))
	mock.ExpectQuery("SELECT banned, updated_at FROM country_bans").
		WithArgs(testToken, "GMB").
		WillReturnRows(pgxmock.NewRows([]string{"banned", "updated_at"}))

	tx, _ := mock.Begin(ctx)
	require.NoError(t, repo.Upsert(ctx, tx, &domain.CountryBan{Token: testToken, Country: ken, Banned: true, UpdatedAt: testNow}))

	ban, err := repo.Get(ctx, testToken, ken)
	require.NoError(t, err)
	assert.True(t, ban.Banned)
	assert.Equal(t, ken, ban.Country)

	none, err := repo.Get(ctx, testToken, domain.MustTag("GMB"))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func buyerRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"ein", "first_name", "last_name", "country", "birth_date", "net_worth", "salary",
		"investor_status", "kyc_status", "aml_status", "cft_status", "registrar_ein", "created_at", "updated_at"})
}

func TestBuyerRepo_CreateEncryptsNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mocks.NewMockEncryptionService(ctrl)
	mock := newMockPool(t)
	repo := NewBuyerRepo(mock, cipher)
	ctx := context.Background()

	birth, _ := domain.BirthDate(1984, 12, 12)
	b := &domain.Buyer{
		EIN: 21, FirstName: "Ada", LastName: "Lovelace", Country: domain.MustTag("GMB"),
		BirthDate: birth, NetWorth: 100000, Salary: 50000, RegistrarEIN: 5, CreatedAt: testNow, UpdatedAt: testNow,
	}

	cipher.EXPECT().Encrypt("Ada").Return("v1:first", nil)
	cipher.EXPECT().Encrypt("Lovelace").Return("v1:last", nil)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO buyers").
		WithArgs(domain.EIN(21), "v1:first", "v1:last", "GMB", birth, int64(100000), int64(50000),
			false, false, false, false, domain.EIN(5), testNow, testNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, _ := mock.Begin(ctx)
	require.NoError(t, repo.Create(ctx, tx, b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuyerRepo_Create_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mocks.NewMockEncryptionService(ctrl)
	mock := newMockPool(t)
	repo := NewBuyerRepo(mock, cipher)
	ctx := context.Background()

	cipher.EXPECT().Encrypt(gomock.Any()).Return("v1:x", nil).Times(2)
	mock.ExpectBegin()
	a := pgxmock.AnyArg()
	mock.ExpectExec("INSERT INTO buyers").
		WithArgs(a, a, a, a, a, a, a, a, a, a, a, a, a, a).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	tx, _ := mock.Begin(ctx)
	err := repo.Create(ctx, tx, &domain.Buyer{EIN: 21})
	assert.ErrorIs(t, err, ports.ErrDuplicateKey)
}

func TestBuyerRepo_GetForUpdateDecryptsNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mocks.NewMockEncryptionService(ctrl)
	mock := newMockPool(t)
	repo := NewBuyerRepo(mock, cipher)
	ctx := context.Background()
	birth, _ := domain.BirthDate(1984, 12, 12)

	cipher.EXPECT().Decrypt("v1:first").Return("Ada", nil)
	cipher.EXPECT().Decrypt("v1:last").Return("Lovelace", nil)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM buyers WHERE ein = \\$1 FOR UPDATE").
		WithArgs(domain.EIN(21)).
		WillReturnRows(buyerRows().AddRow(domain.EIN(21), "v1:first", "v1:last", "GMB", birth, int64(100000), int64(50000),
			true, true, false, false, domain.EIN(5), testNow, testNow))

	tx, _ := mock.Begin(ctx)
	got, err := repo.GetForUpdate(ctx, tx, 21)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, domain.MustTag("GMB"), got.Country)
	assert.True(t, got.KYCStatus)
	assert.Equal(t, int64(471657600), got.BirthTimestamp())
}

func TestBuyerRepo_GetByEIN_DecryptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mocks.NewMockEncryptionService(ctrl)
	mock := newMockPool(t)
	repo := NewBuyerRepo(mock, cipher)

	cipher.EXPECT().Decrypt("tampered").Return("", errors.New("message authentication failed"))
	mock.ExpectQuery("SELECT .+ FROM buyers WHERE ein").
		WithArgs(domain.EIN(21)).
		WillReturnRows(buyerRows().AddRow(domain.EIN(21), "tampered", "v1:last", "GMB", testNow, int64(0), int64(0),
			false, false, false, false, domain.EIN(5), testNow, testNow))

	_, err := repo.GetByEIN(context.Background(), 21)
	assert.Error(t, err)
}

func TestBuyerRepo_Update(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBuyerRepo(mock, nil)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE buyers SET").
		WithArgs(true, true, false, true, testNow, domain.EIN(21)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, _ := mock.Begin(ctx)
	require.NoError(t, repo.Update(ctx, tx, &domain.Buyer{
		EIN: 21, InvestorStatus: true, KYCStatus: true, CFTStatus: true, UpdatedAt: testNow,
	}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_Register(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccountRepo(mock)
	addr := domain.Address{0x01}

	mock.ExpectQuery("INSERT INTO accounts .+ RETURNING ein").
		WithArgs(addr, "$argon2id$hash", testNow).
		WillReturnRows(pgxmock.NewRows([]string{"ein"}).AddRow(domain.EIN(4)))
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(addr, "$argon2id$hash", testNow).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	acct, err := repo.Register(context.Background(), addr, "$argon2id$hash", testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.EIN(4), acct.EIN)

	_, err = repo.Register(context.Background(), addr, "$argon2id$hash", testNow)
	assert.ErrorIs(t, err, ports.ErrDuplicateKey)
}

func TestAccountRepo_GetByAddress(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccountRepo(mock)
	addr := domain.Address{0x01}

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE address").
		WithArgs(addr).
		WillReturnRows(pgxmock.NewRows([]string{"address", "ein", "passphrase_hash", "created_at"}).
			AddRow(addr, domain.EIN(4), "stored", testNow))

	acct, err := repo.GetByAddress(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, domain.EIN(4), acct.EIN)
	assert.Equal(t, "stored", acct.PassphraseHash)
}

func TestAuditRepo_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAuditRepo(mock)
	caller := domain.EIN(1)
	entry := &domain.AuditLog{
		ID: uuid.New(), CallerEIN: &caller, Action: domain.AuditActionAppointToken,
		ResourceType: "token", ResourceID: testToken.Hex(), IPAddress: "127.0.0.1", CreatedAt: testNow,
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, entry.CallerEIN, "APPOINT_TOKEN", "token", entry.ResourceID, "", "127.0.0.1", testNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}
