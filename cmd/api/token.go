package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite um bearer token com acesso aos relatórios",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		token, err := authenticating.NewService(cfg.Auth).IssueToken(tokenSubject, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "dashboard", "identificação do cliente do token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "validade do token")
}
