package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "sales-report-api",
		Short:         "API de relatórios de vendas do painel de música",
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão do serviço",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	version = "dev"
)

func main() {
	rootCmd.AddCommand(serveCmd, exportCmd, migrateCmd, tokenCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Erro ao executar o comando")
		os.Exit(1)
	}
}
