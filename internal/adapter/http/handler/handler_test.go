package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pst-registry/internal/adapter/metrics"
	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"
	"pst-registry/internal/core/ports/mocks"
	"pst-registry/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	tokenHex   = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	accountHex = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	bearer     = "Bearer owner-token"
	ownerEIN   = domain.EIN(1)
)

var (
	testToken   = mustAddress(tokenHex)
	testAccount = mustAddress(accountHex)
	testNow     = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
)

func mustAddress(s string) domain.Address {
	a, err := domain.ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

type routerMocks struct {
	identities *mocks.MockIdentityDirectory
	tokens     *mocks.MockTokenDirectory
	catalog    *mocks.MockServiceCatalog
	engine     *mocks.MockEligibilityEngine
	evaluator  *mocks.MockEligibilityEvaluator
	ledger     *mocks.MockBuyerLedger
	access     *mocks.MockAccessTokenService
	health     *mocks.MockHealthChecker
	metrics    *metrics.Metrics
	router     *gin.Engine
}

func setupRouter(t *testing.T) *routerMocks {
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		identities: mocks.NewMockIdentityDirectory(ctrl),
		tokens:     mocks.NewMockTokenDirectory(ctrl),
		catalog:    mocks.NewMockServiceCatalog(ctrl),
		engine:     mocks.NewMockEligibilityEngine(ctrl),
		evaluator:  mocks.NewMockEligibilityEvaluator(ctrl),
		ledger:     mocks.NewMockBuyerLedger(ctrl),
		access:     mocks.NewMockAccessTokenService(ctrl),
		health:     mocks.NewMockHealthChecker(ctrl),
		metrics:    metrics.New(prometheus.NewRegistry()),
	}
	m.access.EXPECT().Validate("owner-token").
		Return(&ports.AccessClaims{EIN: ownerEIN, Account: testAccount}, nil).AnyTimes()
	m.health.EXPECT().Name().Return("store").AnyTimes()

	m.router = SetupRouter(RouterDeps{
		Identities:     m.identities,
		Tokens:         m.tokens,
		Catalog:        m.catalog,
		Engine:         m.engine,
		Evaluator:      m.evaluator,
		Ledger:         m.ledger,
		AccessTokens:   m.access,
		Metrics:        m.metrics,
		HealthCheckers: []ports.HealthChecker{m.health},
		Logger:         zerolog.Nop(),
	})
	return m
}

func (m *routerMocks) do(method, path string, body interface{}, auth bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, _ := json.Marshal(body)
			raw = string(b)
		}
		reader = bytes.NewReader([]byte(raw))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "body: %s", w.Body.String())
	return data
}

func errorCodeOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Identity ---

func TestRegisterAccount_Success(t *testing.T) {
	m := setupRouter(t)
	m.identities.EXPECT().RegisterAccount(gomock.Any(), testAccount, "passphrase-1").Return(domain.EIN(3), nil)

	w := m.do(http.MethodPost, "/api/v1/identities", gin.H{"account": accountHex, "passphrase": "passphrase-1"}, false)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, float64(3), data["ein"])
	assert.Equal(t, accountHex, data["account"])
}

func TestRegisterAccount_ValidationError(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodPost, "/api/v1/identities", "{}", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = m.do(http.MethodPost, "/api/v1/identities", gin.H{"account": "0x123", "passphrase": "passphrase-1"}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", errorCodeOf(t, w))
}

func TestRegisterAccount_Duplicate(t *testing.T) {
	m := setupRouter(t)
	m.identities.EXPECT().RegisterAccount(gomock.Any(), testAccount, gomock.Any()).
		Return(domain.EIN(0), apperror.ErrAlreadyRegistered("account"))

	w := m.do(http.MethodPost, "/api/v1/identities", gin.H{"account": accountHex, "passphrase": "passphrase-1"}, false)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetIdentity(t *testing.T) {
	m := setupRouter(t)
	m.identities.EXPECT().GetIdentity(gomock.Any(), testAccount).Return(domain.EIN(9), nil)

	w := m.do(http.MethodGet, "/api/v1/identities/"+accountHex, nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(9), dataOf(t, w)["ein"])

	w = m.do(http.MethodGet, "/api/v1/identities/nope", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	m := setupRouter(t)
	expiry := testNow.Add(time.Hour)
	m.identities.EXPECT().Login(gomock.Any(), testAccount, "passphrase-1").Return("jwt-token-123", expiry, nil)
	m.identities.EXPECT().Login(gomock.Any(), testAccount, "wrong").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w := m.do(http.MethodPost, "/api/v1/auth/token", gin.H{"account": accountHex, "passphrase": "passphrase-1"}, false)
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "jwt-token-123", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])

	w = m.do(http.MethodPost, "/api/v1/auth/token", gin.H{"account": accountHex, "passphrase": "wrong"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", errorCodeOf(t, w))
}

// --- Tokens ---

func TestAppointToken_Success(t *testing.T) {
	m := setupRouter(t)
	m.tokens.EXPECT().AppointToken(gomock.Any(), ports.AppointTokenRequest{
		Address:     testToken,
		Symbol:      "PST",
		Name:        "Permissioned Share",
		Description: "Series A",
		Decimals:    0,
		CallerEIN:   ownerEIN,
	}).Return(&domain.TokenRecord{
		Address:   testToken,
		Symbol:    "PST",
		Name:      "Permissioned Share",
		OwnerEIN:  ownerEIN,
		CreatedAt: testNow,
	}, nil)

	w := m.do(http.MethodPost, "/api/v1/tokens", gin.H{
		"address":     tokenHex,
		"symbol":      "PST",
		"name":        "Permissioned Share",
		"description": " Series A ",
		"decimals":    0,
	}, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, tokenHex, data["address"])
	assert.Equal(t, float64(1), data["owner_ein"])
	assert.Equal(t, "2020-01-01T00:00:00Z", data["created_at"])
}

func TestAppointToken_RequiresBearer(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodPost, "/api/v1/tokens", gin.H{"address": tokenHex}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_002", errorCodeOf(t, w))
}

func TestAppointToken_DecimalsOutOfRange(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodPost, "/api/v1/tokens", gin.H{
		"address": tokenHex, "symbol": "PST", "name": "Share", "decimals": 19,
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = m.do(http.MethodPost, "/api/v1/tokens", gin.H{
		"address": tokenHex, "symbol": "PST", "name": "Share",
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code, "decimals is required")
}

func TestGetToken_NotFound(t *testing.T) {
	m := setupRouter(t)
	m.tokens.EXPECT().GetToken(gomock.Any(), testToken).Return(nil, apperror.ErrNotFound("token"))

	w := m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "REG_001", errorCodeOf(t, w))
}

// --- Catalog ---

func TestCategories(t *testing.T) {
	m := setupRouter(t)
	m.catalog.EXPECT().AddCategory(gomock.Any(), testToken, domain.TagKYC, "Know your customer", ownerEIN).Return(nil)
	m.catalog.EXPECT().GetCategory(gomock.Any(), testToken, domain.TagAML).Return("", nil)
	m.catalog.EXPECT().ListCategories(gomock.Any(), testToken).Return([]domain.Category{
		{Token: testToken, Tag: domain.TagKYC, Description: "Know your customer"},
	}, nil)

	w := m.do(http.MethodPut, "/api/v1/tokens/"+tokenHex+"/categories/KYC", gin.H{"description": "Know your customer"}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/categories/AML", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", dataOf(t, w)["description"])

	w = m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/categories", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "KYC", resp.Data[0]["tag"])
}

func TestAddCategory_InvalidTag(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodPut, "/api/v1/tokens/"+tokenHex+"/categories/TOOLONG", gin.H{"description": "x"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCategory_Unauthorized(t *testing.T) {
	m := setupRouter(t)
	m.catalog.EXPECT().AddCategory(gomock.Any(), testToken, domain.TagKYC, "x", ownerEIN).Return(apperror.ErrUnauthorized())

	w := m.do(http.MethodPut, "/api/v1/tokens/"+tokenHex+"/categories/KYC", gin.H{"description": "x"}, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AUTHZ_001", errorCodeOf(t, w))
}

func TestServices(t *testing.T) {
	m := setupRouter(t)
	removedAt := testNow
	m.catalog.EXPECT().AddService(gomock.Any(), testToken, domain.ServiceID(3), domain.TagKYC, ownerEIN).Return(nil)
	m.catalog.EXPECT().GetService(gomock.Any(), testToken, domain.ServiceID(3)).Return("KYC", nil)
	m.catalog.EXPECT().IsProvider(gomock.Any(), testToken, domain.ServiceID(3)).Return(true, nil)
	m.catalog.EXPECT().RemoveService(gomock.Any(), testToken, domain.ServiceID(3), ownerEIN).Return(nil)
	m.catalog.EXPECT().ListServices(gomock.Any(), testToken).Return([]domain.ServiceAssignment{
		{Token: testToken, ServiceID: 3, RemovedAt: &removedAt},
	}, nil)

	w := m.do(http.MethodPut, "/api/v1/tokens/"+tokenHex+"/services/3", gin.H{"category": "KYC"}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/services/3", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "KYC", data["category"])
	assert.Equal(t, true, data["is_provider"])

	w = m.do(http.MethodDelete, "/api/v1/tokens/"+tokenHex+"/services/3", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/services", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "", resp.Data[0]["category"])
	assert.Equal(t, "2020-01-01T00:00:00Z", resp.Data[0]["removed_at"])
}

func TestAddService_UnknownCategory(t *testing.T) {
	m := setupRouter(t)
	m.catalog.EXPECT().AddService(gomock.Any(), testToken, domain.ServiceID(4), domain.TagAML, ownerEIN).
		Return(apperror.ErrUnknownCategory("AML"))

	w := m.do(http.MethodPut, "/api/v1/tokens/"+tokenHex+"/services/4", gin.H{"category": "AML"}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "SVC_001", errorCodeOf(t, w))
}

func TestGetService_BadID(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/services/-1", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Eligibility ---

func TestRules(t *testing.T) {
	m := setupRouter(t)
	want := domain.SuitabilityRule{
		Token:              testToken,
		MinimumAge:         21,
		MinimumNetWorth:    50000,
		MinimumSalary:      36000,
		AccreditedRequired: true,
	}
	m.engine.EXPECT().AssignTokenValues(gomock.Any(), want, ownerEIN).Return(nil)
	m.engine.EXPECT().GetRule(gomock.Any(), testToken).Return(&want, nil)

	w := m.do(http.MethodPut, "/api/v1/tokens/"+tokenHex+"/rules", gin.H{
		"minimum_age":         21,
		"minimum_net_worth":   50000,
		"minimum_salary":      36000,
		"accredited_required": true,
	}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/rules", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, float64(21), data["minimum_age"])
	assert.Equal(t, false, data["aml_required"])
}

func TestAssignRule_NegativeThreshold(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodPut, "/api/v1/tokens/"+tokenHex+"/rules", gin.H{
		"minimum_age": 21, "minimum_net_worth": -1, "minimum_salary": 0,
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountryBans(t *testing.T) {
	m := setupRouter(t)
	ken := domain.MustTag("KEN")
	gomock.InOrder(
		m.engine.EXPECT().AddCountryBan(gomock.Any(), testToken, ken, ownerEIN).Return(nil),
		m.engine.EXPECT().GetCountryBan(gomock.Any(), testToken, ken).Return(true, nil),
		m.engine.EXPECT().LiftCountryBan(gomock.Any(), testToken, ken, ownerEIN).Return(nil),
	)

	w := m.do(http.MethodPut, "/api/v1/tokens/"+tokenHex+"/bans/KEN", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataOf(t, w)["banned"])

	w = m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/bans/KEN", nil, false)
	assert.Equal(t, true, dataOf(t, w)["banned"])

	w = m.do(http.MethodDelete, "/api/v1/tokens/"+tokenHex+"/bans/KEN", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, dataOf(t, w)["banned"])
}

func TestEvaluate(t *testing.T) {
	m := setupRouter(t)
	m.evaluator.EXPECT().Evaluate(gomock.Any(), testToken, domain.EIN(17)).Return(&domain.Verdict{
		Token:       testToken,
		BuyerEIN:    17,
		Reasons:     []domain.Reason{domain.ReasonUnderage, domain.ReasonCountryBanned},
		Age:         20,
		EvaluatedAt: testNow,
	}, nil)

	w := m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/eligibility/17", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, false, data["eligible"])
	assert.Equal(t, []interface{}{"UNDERAGE", "COUNTRY_BANNED"}, data["reasons"])
	assert.Equal(t, float64(20), data["age"])
}

func TestEvaluate_InvalidEIN(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex+"/eligibility/0", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Buyers ---

func TestAddBuyer_Success(t *testing.T) {
	m := setupRouter(t)
	birth, _ := domain.BirthDate(1984, 12, 12)
	m.ledger.EXPECT().AddBuyer(gomock.Any(), ports.BuyerInput{
		EIN:        17,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Country:    domain.MustTag("GBR"),
		BirthYear:  1984,
		BirthMonth: 12,
		BirthDay:   12,
		NetWorth:   100000,
		Salary:     0,
	}, ownerEIN).Return(&domain.Buyer{
		EIN:          17,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Country:      domain.MustTag("GBR"),
		BirthDate:    birth,
		NetWorth:     100000,
		RegistrarEIN: ownerEIN,
	}, nil)

	w := m.do(http.MethodPost, "/api/v1/buyers", gin.H{
		"ein": 17, "first_name": "Ada", "last_name": "Lovelace", "country": "GBR",
		"birth_year": 1984, "birth_month": 12, "birth_day": 12,
		"net_worth": 100000, "salary": 0,
	}, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, float64(birth.Unix()), data["birth_timestamp"])
	assert.Equal(t, false, data["kyc_status"])
	assert.Equal(t, float64(1), data["registrar_ein"])
}

func TestAddBuyer_MissingFields(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodPost, "/api/v1/buyers", gin.H{"ein": 17, "first_name": "Ada"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetInvestorStatus(t *testing.T) {
	m := setupRouter(t)
	m.ledger.EXPECT().SetBuyerInvestorStatus(gomock.Any(), domain.EIN(17), true, ownerEIN).Return(nil)
	m.ledger.EXPECT().GetBuyer(gomock.Any(), domain.EIN(17)).Return(&domain.Buyer{EIN: 17, InvestorStatus: true}, nil)

	w := m.do(http.MethodPut, "/api/v1/buyers/17/investor-status", gin.H{"status": true}, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataOf(t, w)["investor_status"])

	w = m.do(http.MethodPut, "/api/v1/buyers/17/investor-status", "{}", true)
	assert.Equal(t, http.StatusBadRequest, w.Code, "status is required")
}

func TestAttachCompliance(t *testing.T) {
	tests := []struct {
		kind string
		want domain.ComplianceKind
	}{
		{"kyc", domain.ComplianceKYC},
		{"AML", domain.ComplianceAML},
		{"Cft", domain.ComplianceCFT},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			m := setupRouter(t)
			m.ledger.EXPECT().AttachCompliance(gomock.Any(), tt.want, domain.EIN(17), testToken, domain.ServiceID(3), ownerEIN).Return(nil)
			m.ledger.EXPECT().GetBuyer(gomock.Any(), domain.EIN(17)).Return(&domain.Buyer{EIN: 17}, nil)

			w := m.do(http.MethodPost, "/api/v1/buyers/17/compliance/"+tt.kind, gin.H{"token": tokenHex, "service_id": 3}, true)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestAttachCompliance_Errors(t *testing.T) {
	m := setupRouter(t)

	w := m.do(http.MethodPost, "/api/v1/buyers/17/compliance/mla", gin.H{"token": tokenHex, "service_id": 3}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.ledger.EXPECT().AttachCompliance(gomock.Any(), domain.ComplianceKYC, domain.EIN(17), testToken, domain.ServiceID(3), ownerEIN).
		Return(apperror.ErrWrongCategory("KYC", "AML"))
	w = m.do(http.MethodPost, "/api/v1/buyers/17/compliance/kyc", gin.H{"token": tokenHex, "service_id": 3}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "SVC_003", errorCodeOf(t, w))
}

func TestGetBuyer_InternalError(t *testing.T) {
	m := setupRouter(t)
	m.ledger.EXPECT().GetBuyer(gomock.Any(), domain.EIN(17)).Return(nil, apperror.InternalError(errors.New("db down")))

	w := m.do(http.MethodGet, "/api/v1/buyers/17", nil, false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestKeysAboveBigintRange_AreValidationErrors(t *testing.T) {
	m := setupRouter(t)

	for _, path := range []string{
		"/api/v1/buyers/9223372036854775808",
		"/api/v1/tokens/" + tokenHex + "/services/9223372036854775808",
		"/api/v1/tokens/" + tokenHex + "/eligibility/18446744073709551615",
	} {
		w := m.do(http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "VAL_001", errorCodeOf(t, w), path)
	}
}

// --- Health & metrics ---

func TestHealthCheck(t *testing.T) {
	m := setupRouter(t)
	gomock.InOrder(
		m.health.EXPECT().Ping(gomock.Any()).Return(nil),
		m.health.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)

	w := m.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)

	w = m.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestMetricsEndpoint(t *testing.T) {
	m := setupRouter(t)
	m.tokens.EXPECT().GetToken(gomock.Any(), testToken).Return(&domain.TokenRecord{Address: testToken}, nil)

	m.do(http.MethodGet, "/api/v1/tokens/"+tokenHex, nil, false)

	w := m.do(http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/v1/tokens/:address"`)
}

func TestHandler_DirectInvocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenDirectory(ctrl)
	h := NewTokenHandler(tokens)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/tokens", bytes.NewReader([]byte("{}")))

	h.AppointToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "no caller identity in context")
}
