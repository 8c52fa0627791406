package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const maxPingTimeout = 5 * time.Second

// Pinger é a parte da conexão usada pela verificação de saúde
type Pinger interface {
	Ping(ctx context.Context) error
	Stats() sql.DBStats
}

// DatabaseHealthMonitor verifica o banco periodicamente e guarda o último resultado.
// Não participa do caminho das requisições; o handler de healthcheck só lê o snapshot.
type DatabaseHealthMonitor struct {
	scheduler *gocron.Scheduler
	conn      Pinger
	config    config.HealthCheck

	statusMutex sync.RWMutex
	status      domain.DatabaseHealth
}

func NewDatabaseHealthMonitor(conn Pinger, cfg config.HealthCheck) *DatabaseHealthMonitor {
	logrus.WithFields(logrus.Fields{
		"enabled":  cfg.Enabled,
		"interval": cfg.Interval.String(),
	}).Info("Configuração da verificação de saúde do banco carregada")

	return &DatabaseHealthMonitor{
		scheduler: gocron.NewScheduler(time.UTC),
		conn:      conn,
		config:    cfg,
		status:    domain.DatabaseHealth{Status: domain.HealthStatusUnknown},
	}
}

// Start agenda a verificação e para o agendador quando o contexto termina
func (m *DatabaseHealthMonitor) Start(ctx context.Context) error {
	if !m.config.Enabled {
		logrus.Info("Verificação de saúde do banco desabilitada por configuração")
		return nil
	}

	_, err := m.scheduler.Every(m.config.Interval).Do(func() {
		m.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de saúde do banco: %w", err)
	}

	m.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando verificação de saúde do banco")
		m.scheduler.Stop()
	}()

	return nil
}

// Check executa uma verificação imediata e atualiza o snapshot
func (m *DatabaseHealthMonitor) Check(ctx context.Context) domain.DatabaseHealth {
	timeout := m.config.Interval
	if timeout <= 0 || timeout > maxPingTimeout {
		timeout = maxPingTimeout
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	startTime := time.Now()
	err := m.conn.Ping(pingCtx)
	latency := time.Since(startTime)

	stats := m.conn.Stats()
	health := domain.DatabaseHealth{
		Status:          domain.HealthStatusUp,
		CheckedAt:       time.Now().UTC(),
		Latency:         latency,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
	}

	logger := logrus.WithFields(logrus.Fields{
		"latency_ms":       latency.Milliseconds(),
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
	})

	if err != nil {
		health.Status = domain.HealthStatusDown
		health.Error = err.Error()
		logger.WithError(err).Error("Banco de dados indisponível")
	} else {
		logger.Debug("Banco de dados disponível")
	}

	m.statusMutex.Lock()
	m.status = health
	m.statusMutex.Unlock()

	return health
}

// Status retorna o resultado da última verificação
func (m *DatabaseHealthMonitor) Status() domain.DatabaseHealth {
	m.statusMutex.RLock()
	defer m.statusMutex.RUnlock()
	return m.status
}
