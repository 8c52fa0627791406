package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	exportmocks "github.com/vfg2006/sales-report-api/internal/usecases/exporting/mocks"
	reportmocks "github.com/vfg2006/sales-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func testConfig(authEnabled bool) *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "5000"},
		Auth:   config.Auth{Enabled: authEnabled, Secret: "segredo-de-teste", Issuer: "sales-report-api"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestNew(t *testing.T) {
	cfg := testConfig(false)
	ctrl := gomock.NewController(t)

	srv, err := New(cfg, reportmocks.NewMockReporter(ctrl), exportmocks.NewMockExporter(ctrl), authenticating.NewService(cfg.Auth), nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", srv.httpServer.Addr)
}

func TestNewHandler_Authentication(t *testing.T) {
	cfg := testConfig(true)
	authenticator := authenticating.NewService(cfg.Auth)

	token, err := authenticator.IssueToken("dashboard", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		path           string
		token          string
		expectCall     bool
		expectedStatus int
	}{
		{name: "healthcheck sem token", path: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "relatório sem token", path: "/genres", expectedStatus: http.StatusUnauthorized},
		{name: "relatório com token inválido", path: "/genres", token: "abc.def.ghi", expectedStatus: http.StatusUnauthorized},
		{name: "relatório com token válido", path: "/genres", token: token, expectCall: true, expectedStatus: http.StatusOK},
		{name: "rota inexistente", path: "/nao-existe", token: token, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reporter := reportmocks.NewMockReporter(ctrl)
			if tt.expectCall {
				reporter.EXPECT().Genres(gomock.Any()).Return([]string{"Rock"}, nil)
			}

			handler := NewHandler(cfg, reporter, exportmocks.NewMockExporter(ctrl), authenticator, nil)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationHeader))
		})
	}
}

func TestNewHandler_AuthDisabled(t *testing.T) {
	cfg := testConfig(false)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jan := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	reporter := reportmocks.NewMockReporter(ctrl)
	reporter.EXPECT().TotalSales(gomock.Any(), domain.ReportFilter{}).
		Return([]domain.SalesData{{Month: jan, TotalSales: 15.84, NumberOfSales: 16}}, nil)

	handler := NewHandler(cfg, reporter, exportmocks.NewMockExporter(ctrl), authenticating.NewService(cfg.Auth), nil)

	req := httptest.NewRequest(http.MethodGet, "/totalsales", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `[{"month":"2022-01-01T00:00:00Z","totalSales":15.84,"numberOfSales":16}]`, rec.Body.String())
}
