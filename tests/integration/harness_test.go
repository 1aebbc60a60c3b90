package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pst-registry/config"
	"pst-registry/internal/app"
	"pst-registry/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testApp runs the fully wired registry (memory stores, real services and
// middleware) behind an httptest server.
type testApp struct {
	server *httptest.Server
	app    *app.App
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

func newTestApp(t *testing.T, rateLimit bool) *testApp {
	t.Helper()

	cfg := &config.Config{
		Storage:   config.StorageConfig{Driver: config.DriverMemory, Identity: config.DriverMemory},
		JWT:       config.JWTConfig{Secret: "integration-secret-0123456789abcdef", Expiry: time.Hour, Issuer: "pst-registry-test"},
		Cache:     config.CacheConfig{TokenTTL: time.Minute},
		RateLimit: config.RateLimitConfig{Enabled: rateLimit},
	}

	a, err := app.Build(context.Background(), cfg, zerolog.Nop(),
		app.WithHashParams(service.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16}))
	require.NoError(t, err)

	srv := httptest.NewServer(a.Router)
	t.Cleanup(func() {
		srv.Close()
		a.Close()
	})
	return &testApp{server: srv, app: a}
}

// do sends a JSON request and decodes the response envelope.
func (ta *testApp) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ta.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// decode unmarshals the envelope's data into v.
func decode(t *testing.T, env envelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

// participant is a registered identity with a live access token.
type participant struct {
	account string
	ein     uint64
	token   string
}

func accountAddress(n int) string {
	return fmt.Sprintf("0x%040x", n)
}

func (ta *testApp) register(t *testing.T, n int) participant {
	t.Helper()
	account := accountAddress(n)
	creds := map[string]string{"account": account, "passphrase": "passphrase-1"}

	status, env := ta.do(t, http.MethodPost, "/api/v1/identities", "", creds)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var identity struct {
		EIN uint64 `json:"ein"`
	}
	decode(t, env, &identity)

	status, env = ta.do(t, http.MethodPost, "/api/v1/auth/token", "", creds)
	require.Equal(t, http.StatusOK, status, env.Message)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, env, &login)

	return participant{account: account, ein: identity.EIN, token: login.Token}
}

func (ta *testApp) appoint(t *testing.T, owner participant, address, symbol string) {
	t.Helper()
	status, env := ta.do(t, http.MethodPost, "/api/v1/tokens", owner.token, map[string]any{
		"address":  address,
		"symbol":   symbol,
		"name":     symbol + " Token",
		"decimals": 18,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
}

func (ta *testApp) addBuyer(t *testing.T, registrar participant, ein uint64, country string, birthYear int, netWorth, salary int64) {
	t.Helper()
	status, env := ta.do(t, http.MethodPost, "/api/v1/buyers", registrar.token, map[string]any{
		"ein":         ein,
		"first_name":  "Ada",
		"last_name":   "Lovelace",
		"country":     country,
		"birth_year":  birthYear,
		"birth_month": 1,
		"birth_day":   1,
		"net_worth":   netWorth,
		"salary":      salary,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
}
