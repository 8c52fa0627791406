package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// exportOptions são as flags do comando export
type exportOptions struct {
	report         string
	country        string
	genre          string
	startDate      string
	endDate        string
	forecastMonths int
	trendFunction  int
	outputDir      string
}

var exportFlags exportOptions

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Gera a planilha de um relatório sem subir o servidor",
	Example: `  sales-report-api export --report total --forecast-months 6 --trend-function 3
  sales-report-api export --report country-genre --country Brazil --genre Rock --output /tmp`,
	RunE: runExport,
}

func init() {
	flags := exportCmd.Flags()
	flags.StringVar(&exportFlags.report, "report", "total", "relatório exportado: total, genre, country ou country-genre")
	flags.StringVar(&exportFlags.country, "country", "", "país do relatório (country e country-genre)")
	flags.StringVar(&exportFlags.genre, "genre", "", "gênero do relatório (country-genre)")
	flags.StringVar(&exportFlags.startDate, "start-date", "", "data inicial yyyy-MM-dd")
	flags.StringVar(&exportFlags.endDate, "end-date", "", "data final yyyy-MM-dd")
	flags.IntVar(&exportFlags.forecastMonths, "forecast-months", 0, "meses projetados pela tendência")
	flags.IntVar(&exportFlags.trendFunction, "trend-function", 0, "ordinal da função de tendência (0 = Linear)")
	flags.StringVar(&exportFlags.outputDir, "output", ".", "diretório de destino da planilha")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pgConn, err := pgconn(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer pgConn.Close()

	reportService := reporting.NewService(repository.NewSalesReportRepository(pgConn))
	exportService := exporting.NewService(reportService, spreadsheet.NewExcelWriter())

	path, err := exportReport(cmd.Context(), exportService, exportFlags)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// exportReport gera a planilha escolhida e grava no diretório de saída
func exportReport(ctx context.Context, exporter exporting.Exporter, opts exportOptions) (string, error) {
	startDate, err := utils.ParseDate(opts.startDate)
	if err != nil {
		return "", errors.Wrap(err, "start-date inválida")
	}

	endDate, err := utils.ParseDate(opts.endDate)
	if err != nil {
		return "", errors.Wrap(err, "end-date inválida")
	}

	if opts.forecastMonths < 0 || opts.forecastMonths > exporting.MaxForecastMonths {
		return "", fmt.Errorf("forecast-months deve estar entre 0 e %d", exporting.MaxForecastMonths)
	}

	filter := domain.ReportFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Country:   opts.country,
		Genre:     opts.genre,
	}
	trend := domain.TrendOptions{
		Function:       domain.ParseTrendFunction(opts.trendFunction),
		ForecastMonths: opts.forecastMonths,
	}

	var file *domain.ExportFile
	switch strings.ToLower(opts.report) {
	case "total":
		file, err = exporter.ExportTotalSales(ctx, filter, trend)
	case "genre":
		file, err = exporter.ExportGenreSales(ctx, filter)
	case "country":
		file, err = exporter.ExportCountrySales(ctx, filter, trend)
	case "country-genre":
		file, err = exporter.ExportCountryGenreSales(ctx, filter, trend)
	default:
		return "", fmt.Errorf("relatório desconhecido %q, use total, genre, country ou country-genre", opts.report)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(opts.outputDir, file.Name)
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return "", errors.Wrap(err, "erro ao gravar planilha")
	}

	logrus.WithFields(logrus.Fields{
		"report": opts.report,
		"path":   path,
		"bytes":  len(file.Content),
	}).Info("Planilha exportada")

	return path, nil
}
