package service

import (
	"context"
	"testing"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports/mocks"
	"pst-registry/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogTestDeps struct {
	svc        *ServiceCatalogImpl
	tokens     *mocks.MockTokenRepository
	categories *mocks.MockCategoryRepository
	services   *mocks.MockServiceAssignmentRepository
	transactor *mocks.MockDBTransactor
}

func setupServiceCatalog(t *testing.T) *catalogTestDeps {
	ctrl := gomock.NewController(t)
	d := &catalogTestDeps{
		tokens:     mocks.NewMockTokenRepository(ctrl),
		categories: mocks.NewMockCategoryRepository(ctrl),
		services:   mocks.NewMockServiceAssignmentRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
	}
	d.svc = NewServiceCatalog(d.tokens, d.categories, d.services, d.transactor, newTestLogger())
	d.svc.now = fixedClock
	return d
}

func TestServiceCatalog_AddCategory_Success(t *testing.T) {
	d := setupServiceCatalog(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)
	d.categories.EXPECT().Upsert(ctx, tx, &domain.Category{
		Token:       testToken,
		Tag:         domain.TagKYC,
		Description: "Know your customer",
		UpdatedAt:   testNow,
	}).Return(nil)

	err := d.svc.AddCategory(ctx, testToken, domain.TagKYC, "Know your customer", ownerEIN)
	require.NoError(t, err)
	assert.True(t, tx.committed)
}

func TestServiceCatalog_AddCategory_Unauthorized(t *testing.T) {
	d := setupServiceCatalog(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)

	err := d.svc.AddCategory(ctx, testToken, domain.TagKYC, "Know your customer", strangerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeUnauthorized))
	assert.False(t, tx.committed)
}

func TestServiceCatalog_AddCategory_TokenNotFound(t *testing.T) {
	d := setupServiceCatalog(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(nil, nil)

	err := d.svc.AddCategory(ctx, testToken, domain.TagKYC, "Know your customer", ownerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

func TestServiceCatalog_GetCategory_BlankWhenAbsent(t *testing.T) {
	d := setupServiceCatalog(t)
	ctx := context.Background()

	for _, tag := range []domain.Tag{domain.TagMLA, domain.TagKYC, domain.TagAML, domain.TagCFT} {
		d.categories.EXPECT().Get(ctx, testToken, tag).Return(nil, nil)

		desc, err := d.svc.GetCategory(ctx, testToken, tag)
		require.NoError(t, err)
		assert.Equal(t, "", desc)
	}
}

func TestServiceCatalog_AddService_Success(t *testing.T) {
	d := setupServiceCatalog(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)
	d.categories.EXPECT().GetForShare(ctx, tx, testToken, domain.TagKYC).
		Return(&domain.Category{Token: testToken, Tag: domain.TagKYC}, nil)
	d.services.EXPECT().Upsert(ctx, tx, &domain.ServiceAssignment{
		Token:     testToken,
		ServiceID: 3,
		Category:  domain.TagKYC,
		Active:    true,
		UpdatedAt: testNow,
	}).Return(nil)

	require.NoError(t, d.svc.AddService(ctx, testToken, 3, domain.TagKYC, ownerEIN))
	assert.True(t, tx.committed)
}

func TestServiceCatalog_AddService_UnknownCategory(t *testing.T) {
	d := setupServiceCatalog(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)
	d.categories.EXPECT().GetForShare(ctx, tx, testToken, domain.TagAML).Return(nil, nil)

	err := d.svc.AddService(ctx, testToken, 3, domain.TagAML, ownerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeUnknownCategory))
	assert.False(t, tx.committed)
}

func TestServiceCatalog_AddService_Unauthorized(t *testing.T) {
	d := setupServiceCatalog(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)

	err := d.svc.AddService(ctx, testToken, 3, domain.TagKYC, strangerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeUnauthorized))
}

func TestServiceCatalog_GetServiceAndIsProvider(t *testing.T) {
	removedAt := testNow
	tests := []struct {
		name         string
		stored       *domain.ServiceAssignment
		wantCategory string
		wantProvider bool
	}{
		{"never set", nil, "", false},
		{"active", &domain.ServiceAssignment{ServiceID: 3, Category: domain.TagKYC, Active: true}, "KYC", true},
		{"removed", &domain.ServiceAssignment{ServiceID: 3, RemovedAt: &removedAt}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupServiceCatalog(t)
			ctx := context.Background()
			d.services.EXPECT().Get(ctx, testToken, domain.ServiceID(3)).Return(tt.stored, nil).Times(2)

			category, err := d.svc.GetService(ctx, testToken, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, category)

			provider, err := d.svc.IsProvider(ctx, testToken, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, provider)
		})
	}
}

func TestServiceCatalog_RemoveService(t *testing.T) {
	for _, found := range []bool{true, false} {
		d := setupServiceCatalog(t)
		ctx := context.Background()
		tx := &mockTx{}

		d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
		d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)
		d.services.EXPECT().MarkRemoved(ctx, tx, testToken, domain.ServiceID(3), testNow).Return(found, nil)

		require.NoError(t, d.svc.RemoveService(ctx, testToken, 3, ownerEIN))
		assert.True(t, tx.committed)
	}
}

func TestServiceCatalog_RemoveService_Unauthorized(t *testing.T) {
	d := setupServiceCatalog(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.tokens.EXPECT().GetForShare(ctx, tx, testToken).Return(ownedToken(), nil)

	err := d.svc.RemoveService(ctx, testToken, 3, strangerEIN)
	assert.True(t, apperror.Is(err, apperror.CodeUnauthorized))
}
