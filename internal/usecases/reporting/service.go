package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

type Reporter interface {
	TotalSales(ctx context.Context, filter domain.ReportFilter) ([]domain.SalesData, error)
	GenreSales(ctx context.Context, filter domain.ReportFilter) ([]domain.GenreSalesData, error)
	CountrySales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountrySalesData, error)
	CountryGenreSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountrySalesData, error)
	CountryAllSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountryAllSales, error)
	CountryGenreAllSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountryAllSales, error)
	GenreTotals(ctx context.Context, filter domain.ReportFilter) ([]domain.GenreTotalSales, error)
	Genres(ctx context.Context) ([]string, error)
	Countries(ctx context.Context) ([]string, error)
	EstimateSales(ctx context.Context, kind domain.ReportKind, filter domain.ReportFilter, target time.Time) (*domain.SalesEstimate, error)
}

type Service struct {
	repository repository.SalesReportRepository
}

func NewService(repo repository.SalesReportRepository) Reporter {
	return &Service{
		repository: repo,
	}
}

func (s *Service) TotalSales(ctx context.Context, filter domain.ReportFilter) ([]domain.SalesData, error) {
	result, err := s.repository.TotalSales(ctx, filter)
	return report(ctx, domain.ReportTotalSales, result, err)
}

func (s *Service) GenreSales(ctx context.Context, filter domain.ReportFilter) ([]domain.GenreSalesData, error) {
	result, err := s.repository.GenreSales(ctx, filter)
	return report(ctx, domain.ReportByGenre, result, err)
}

func (s *Service) CountrySales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountrySalesData, error) {
	result, err := s.repository.CountrySales(ctx, filter)
	return report(ctx, domain.ReportByCountry, result, err)
}

func (s *Service) CountryGenreSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountrySalesData, error) {
	result, err := s.repository.CountryGenreSales(ctx, filter)
	return report(ctx, domain.ReportByCountryGenre, result, err)
}

func (s *Service) CountryAllSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountryAllSales, error) {
	result, err := s.repository.CountryAllSales(ctx, filter)
	return report(ctx, domain.ReportCountryAggregateAll, result, err)
}

func (s *Service) CountryGenreAllSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountryAllSales, error) {
	result, err := s.repository.CountryGenreAllSales(ctx, filter)
	return report(ctx, domain.ReportCountryGenreAggregateAll, result, err)
}

func (s *Service) GenreTotals(ctx context.Context, filter domain.ReportFilter) ([]domain.GenreTotalSales, error) {
	result, err := s.repository.GenreTotals(ctx, filter)
	return report(ctx, domain.ReportGenreAggregateAll, result, err)
}

// Genres lista os gêneros cadastrados
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	genres, err := s.repository.ListGenres(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar gêneros")
		return nil, NewReportError(err, ErrorCode(err), domain.ReportGenreAggregateAll, "Falha ao listar gêneros")
	}
	return genres, nil
}

// Countries lista os países dos clientes
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	countries, err := s.repository.ListCountries(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar países")
		return nil, NewReportError(err, ErrorCode(err), domain.ReportCountryAggregateAll, "Falha ao listar países")
	}
	return countries, nil
}

// EstimateSales estima o total de vendas do mês alvo a partir da série mensal do relatório
func (s *Service) EstimateSales(
	ctx context.Context,
	kind domain.ReportKind,
	filter domain.ReportFilter,
	target time.Time,
) (*domain.SalesEstimate, error) {
	points, err := s.monthlySeries(ctx, kind, filter)
	if err != nil {
		return nil, err
	}

	estimate, err := forecasting.EstimateMonth(points, target)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrMissingRequiredData, kind, "Histórico insuficiente para a estimativa")
	}

	estimate.EstimatedSales = utils.RoundWithTwoDecimalPlace(estimate.EstimatedSales)

	log.ForContext(ctx).WithFields(log.Fields{
		"report":      kind.String(),
		"target":      utils.FormatMonth(target),
		"sample_size": estimate.SampleSize,
	}).Debug("Estimativa de vendas calculada")

	return estimate, nil
}

// monthlySeries retorna a série de total de vendas por mês dos relatórios mensais
func (s *Service) monthlySeries(ctx context.Context, kind domain.ReportKind, filter domain.ReportFilter) ([]domain.MonthlyPoint, error) {
	var points []domain.MonthlyPoint

	switch kind {
	case domain.ReportTotalSales:
		records, err := s.TotalSales(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			points = append(points, domain.MonthlyPoint{Month: r.Month, Value: r.TotalSales})
		}
	case domain.ReportByGenre:
		records, err := s.GenreSales(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			points = append(points, domain.MonthlyPoint{Month: r.Month, Value: r.TotalSales})
		}
	case domain.ReportByCountry:
		records, err := s.CountrySales(ctx, filter)
		if err != nil {
			return nil, err
		}
		points = countryPoints(records)
	case domain.ReportByCountryGenre:
		records, err := s.CountryGenreSales(ctx, filter)
		if err != nil {
			return nil, err
		}
		points = countryPoints(records)
	default:
		return nil, NewReportError(domain.ErrInvalidFilter, apiErrors.ErrInvalidRequest, kind, "Relatório sem dimensão mensal")
	}

	return points, nil
}

func countryPoints(records []domain.CountrySalesData) []domain.MonthlyPoint {
	points := make([]domain.MonthlyPoint, 0, len(records))
	for _, r := range records {
		points = append(points, domain.MonthlyPoint{Month: r.Month, Value: r.TotalSales})
	}
	return points
}

func report[T any](ctx context.Context, kind domain.ReportKind, result []T, err error) ([]T, error) {
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"report": kind.String(),
			"error":  err.Error(),
		}).Error("Erro ao gerar relatório de vendas")
		return nil, wrapError(err, kind, "Falha ao gerar relatório "+kind.String())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report": kind.String(),
		"rows":   len(result),
	}).Debug("Relatório de vendas gerado")

	return result, nil
}
