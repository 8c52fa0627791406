package exporting

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/sales-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MaxForecastMonths limita o horizonte de projeção das tendências
const MaxForecastMonths = 120

type Exporter interface {
	ExportTotalSales(ctx context.Context, filter domain.ReportFilter, opts domain.TrendOptions) (*domain.ExportFile, error)
	ExportGenreSales(ctx context.Context, filter domain.ReportFilter) (*domain.ExportFile, error)
	ExportCountrySales(ctx context.Context, filter domain.ReportFilter, opts domain.TrendOptions) (*domain.ExportFile, error)
	ExportCountryGenreSales(ctx context.Context, filter domain.ReportFilter, opts domain.TrendOptions) (*domain.ExportFile, error)
}

type Service struct {
	reporter reporting.Reporter
	writer   spreadsheet.Writer
}

func NewService(reporter reporting.Reporter, writer spreadsheet.Writer) Exporter {
	return &Service{
		reporter: reporter,
		writer:   writer,
	}
}

func (s *Service) ExportTotalSales(ctx context.Context, filter domain.ReportFilter, opts domain.TrendOptions) (*domain.ExportFile, error) {
	records, err := s.reporter.TotalSales(ctx, filter)
	if err != nil {
		return nil, err
	}

	table, err := monthlyTable(totalSalesSeries(records), opts)
	if err != nil {
		return nil, exportError(domain.ReportTotalSales, err)
	}

	return s.write(ctx, domain.ReportTotalSales, table)
}

// ExportGenreSales gera o gráfico de pizza por gênero e o ranking dos três maiores
func (s *Service) ExportGenreSales(ctx context.Context, filter domain.ReportFilter) (*domain.ExportFile, error) {
	records, err := s.reporter.GenreTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.write(ctx, domain.ReportGenreAggregateAll, genreTables(records)...)
}

func (s *Service) ExportCountrySales(ctx context.Context, filter domain.ReportFilter, opts domain.TrendOptions) (*domain.ExportFile, error) {
	records, err := s.reporter.CountrySales(ctx, filter)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Sales in %s", filter.Normalize().Country)
	table, err := monthlyTable(countrySalesSeries(title, records), opts)
	if err != nil {
		return nil, exportError(domain.ReportByCountry, err)
	}

	return s.write(ctx, domain.ReportByCountry, table)
}

func (s *Service) ExportCountryGenreSales(ctx context.Context, filter domain.ReportFilter, opts domain.TrendOptions) (*domain.ExportFile, error) {
	records, err := s.reporter.CountryGenreSales(ctx, filter)
	if err != nil {
		return nil, err
	}

	normalized := filter.Normalize()
	title := fmt.Sprintf("%s sales in %s", normalized.Genre, normalized.Country)
	table, err := monthlyTable(countrySalesSeries(title, records), opts)
	if err != nil {
		return nil, exportError(domain.ReportByCountryGenre, err)
	}

	return s.write(ctx, domain.ReportByCountryGenre, table)
}

func (s *Service) write(ctx context.Context, kind domain.ReportKind, tables ...domain.Table) (*domain.ExportFile, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, exportError(kind, err)
	}

	book := domain.Workbook{
		Name:   fmt.Sprintf("%s-%s.xlsx", kind, id),
		Tables: tables,
	}

	content, err := s.writer.Write(book)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"report": kind.String(),
			"error":  err.Error(),
		}).Error("Erro ao gerar planilha")
		return nil, exportError(kind, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report": kind.String(),
		"file":   book.Name,
		"bytes":  len(content),
	}).Info("Planilha gerada")

	return &domain.ExportFile{
		Name:        book.Name,
		ContentType: ContentTypeXLSX,
		Content:     content,
	}, nil
}

func exportError(kind domain.ReportKind, err error) error {
	if !errors.Is(err, domain.ErrExportGeneration) {
		err = fmt.Errorf("%w: %w", domain.ErrExportGeneration, err)
	}
	return reporting.NewReportError(err, apiErrors.ErrExportGeneration, kind, "Falha ao gerar planilha "+kind.String())
}
