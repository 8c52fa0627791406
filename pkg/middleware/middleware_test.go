package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

type fakeValidator struct {
	enabled bool
	claims  *domain.Claims
	err     error
}

func (f fakeValidator) Enabled() bool { return f.enabled }

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	validClaims := &domain.Claims{Scope: "reports:read", RegisteredClaims: jwt.RegisteredClaims{Subject: "dashboard"}}

	tests := []struct {
		name           string
		validator      fakeValidator
		path           string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "autenticação desabilitada libera tudo",
			validator:      fakeValidator{enabled: false},
			path:           "/totalsales",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "healthcheck é público",
			validator:      fakeValidator{enabled: true},
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "sem header de autorização",
			validator:      fakeValidator{enabled: true},
			path:           "/totalsales",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "header sem Bearer",
			validator:      fakeValidator{enabled: true},
			path:           "/totalsales",
			authorization:  "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token inválido",
			validator:      fakeValidator{enabled: true, err: errors.New("token inválido")},
			path:           "/totalsales",
			authorization:  "Bearer abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token válido",
			validator:      fakeValidator{enabled: true, claims: validClaims},
			path:           "/totalsales",
			authorization:  "Bearer abc",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_StoresClaims(t *testing.T) {
	claims := &domain.Claims{Scope: "reports:read"}
	validator := fakeValidator{enabled: true, claims: claims}

	var received *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = ClaimsFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/genres", nil)
	req.Header.Set("Authorization", "Bearer abc")

	AuthMiddleware(validator)(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Same(t, claims, received)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "token is expired")
	handler := AuthMiddleware(fakeValidator{enabled: true, err: expired})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/totalsales", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
}

func TestRequireScope(t *testing.T) {
	handler := AuthMiddleware(fakeValidator{enabled: true, claims: &domain.Claims{Scope: "outro"}})(
		RequireScope("reports:read")(okHandler()),
	)

	req := httptest.NewRequest(http.MethodGet, "/totalsales", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Sem autenticação não há claims e a rota fica aberta
	rec = httptest.NewRecorder()
	RequireScope("reports:read")(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/totalsales", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("preflight de origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/totalsales", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origem não permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/totalsales", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/totalsales", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, err := w.Write([]byte("ok"))
		require.NoError(t, err)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/genres", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
}
