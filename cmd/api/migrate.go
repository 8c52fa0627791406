package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas de vendas que ainda não existem no banco",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pgConn, err := pgconn(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer pgConn.Close()

		return postgres.ApplySchema(cmd.Context(), pgConn)
	},
}
