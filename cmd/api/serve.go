package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-report-api/internal/api"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP (comando padrão)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	pgConn, err := pgconn(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pgConn.Close()

	reportService := reporting.NewService(repository.NewSalesReportRepository(pgConn))
	exportService := exporting.NewService(reportService, spreadsheet.NewExcelWriter())
	authenticator := authenticating.NewService(cfg.Auth)

	healthMonitor := scheduler.NewDatabaseHealthMonitor(pgConn, cfg.HealthCheck)
	if err := healthMonitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a verificação de saúde do banco")
	} else {
		logrus.Info("Verificação de saúde do banco iniciada com sucesso")
	}

	server, err := api.New(cfg, reportService, exportService, authenticator, healthMonitor)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

// loadConfig lê a configuração e ajusta o logger global
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	if err := log.Setup(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.WithError(err).Warn("Configuração de log inválida, mantendo o padrão")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	return cfg, nil
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
