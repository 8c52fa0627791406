// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

type SalesReportRepository interface {
	TotalSales(ctx context.Context, filter domain.ReportFilter) ([]domain.SalesData, error)
	GenreSales(ctx context.Context, filter domain.ReportFilter) ([]domain.GenreSalesData, error)
	CountrySales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountrySalesData, error)
	CountryGenreSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountrySalesData, error)
	CountryAllSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountryAllSales, error)
	CountryGenreAllSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountryAllSales, error)
	GenreTotals(ctx context.Context, filter domain.ReportFilter) ([]domain.GenreTotalSales, error)
	ListGenres(ctx context.Context) ([]string, error)
	ListCountries(ctx context.Context) ([]string, error)
}

type salesReportRepository struct {
	conn *postgres.Connection
}

func NewSalesReportRepository(conn *postgres.Connection) SalesReportRepository {
	return &salesReportRepository{
		conn: conn,
	}
}

func (r *salesReportRepository) TotalSales(ctx context.Context, filter domain.ReportFilter) ([]domain.SalesData, error) {
	return runReport(ctx, r.conn, domain.ReportTotalSales, filter, salesDataMapper)
}

func (r *salesReportRepository) GenreSales(ctx context.Context, filter domain.ReportFilter) ([]domain.GenreSalesData, error) {
	return runReport(ctx, r.conn, domain.ReportByGenre, filter, genreSalesMapper)
}

func (r *salesReportRepository) CountrySales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountrySalesData, error) {
	return runReport(ctx, r.conn, domain.ReportByCountry, filter, countrySalesMapper)
}

func (r *salesReportRepository) CountryGenreSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountrySalesData, error) {
	return runReport(ctx, r.conn, domain.ReportByCountryGenre, filter, countryGenreSalesMapper)
}

func (r *salesReportRepository) CountryAllSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountryAllSales, error) {
	return runReport(ctx, r.conn, domain.ReportCountryAggregateAll, filter, countryAllSalesMapper)
}

func (r *salesReportRepository) CountryGenreAllSales(ctx context.Context, filter domain.ReportFilter) ([]domain.CountryAllSales, error) {
	return runReport(ctx, r.conn, domain.ReportCountryGenreAggregateAll, filter, countryGenreAllSalesMapper)
}

func (r *salesReportRepository) GenreTotals(ctx context.Context, filter domain.ReportFilter) ([]domain.GenreTotalSales, error) {
	return runReport(ctx, r.conn, domain.ReportGenreAggregateAll, filter, genreTotalSalesMapper)
}

// ListGenres retorna os nomes de gênero cadastrados, usados nos filtros do dashboard
func (r *salesReportRepository) ListGenres(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("g.name").
		From("genre g").
		Where("g.name IS NOT NULL").
		OrderBy("g.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return execute(ctx, r.conn, query, args, nameMapper)
}

// ListCountries retorna os países distintos dos clientes
func (r *salesReportRepository) ListCountries(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT c.country").
		From("customer c").
		Where("c.country IS NOT NULL").
		OrderBy("c.country ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return execute(ctx, r.conn, query, args, nameMapper)
}

func runReport[T any](
	ctx context.Context,
	conn *postgres.Connection,
	kind domain.ReportKind,
	filter domain.ReportFilter,
	mapper rowMapper[T],
) ([]T, error) {
	query, err := BuildReportQuery(kind, filter)
	if err != nil {
		return nil, err
	}

	return execute(ctx, conn, query.SQL, query.Args, mapper)
}

// execute roda a consulta em uma sessão exclusiva, liberada em todos os caminhos de saída
func execute[T any](
	ctx context.Context,
	conn *postgres.Connection,
	query string,
	args []interface{},
	mapper rowMapper[T],
) ([]T, error) {
	session, err := conn.Session(ctx)
	if err != nil {
		return nil, queryError("erro ao obter conexão", err)
	}
	defer session.Close()

	rows, err := session.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("erro ao executar a query", err)
	}
	defer rows.Close()

	return mapRows(rows, mapper)
}

func queryError(message string, err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("%w: %s: %w (código: %s)", domain.ErrQueryExecution, message, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrQueryExecution, message, err)
}
