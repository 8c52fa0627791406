package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestDatabaseHealthMonitor_Check(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus string
		expectedError  string
	}{
		{
			name:           "banco disponível",
			expectedStatus: domain.HealthStatusUp,
		},
		{
			name:           "banco indisponível",
			pingErr:        errors.New("connection refused"),
			expectedStatus: domain.HealthStatusDown,
			expectedError:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			mock.ExpectPing().WillReturnError(tt.pingErr)

			monitor := NewDatabaseHealthMonitor(conn, config.HealthCheck{Enabled: true, Interval: time.Minute})
			assert.Equal(t, domain.HealthStatusUnknown, monitor.Status().Status)

			health := monitor.Check(context.Background())

			assert.Equal(t, tt.expectedStatus, health.Status)
			assert.Equal(t, tt.expectedError, health.Error)
			assert.False(t, health.CheckedAt.IsZero())
			assert.Equal(t, health, monitor.Status())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDatabaseHealthMonitor_StartDisabled(t *testing.T) {
	conn, mock := newMockConnection(t)

	monitor := NewDatabaseHealthMonitor(conn, config.HealthCheck{Enabled: false})
	require.NoError(t, monitor.Start(context.Background()))

	assert.Equal(t, domain.HealthStatusUnknown, monitor.Status().Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseHealthMonitor_Start(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectPing()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := NewDatabaseHealthMonitor(conn, config.HealthCheck{Enabled: true, Interval: time.Hour})
	require.NoError(t, monitor.Start(ctx))

	assert.Eventually(t, func() bool {
		return monitor.Status().Status == domain.HealthStatusUp
	}, 2*time.Second, 10*time.Millisecond)
}
