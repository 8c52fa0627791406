package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

type reportFunc[T any] func(ctx context.Context, filter domain.ReportFilter) ([]T, error)

// reportHandler responde com o relatório do tipo informado em JSON
func reportHandler[T any](kind domain.ReportKind, fetch reportFunc[T]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r, kind)
		if err != nil {
			writeError(w, r, err)
			return
		}

		result, err := fetch(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if result == nil {
			result = []T{}
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func TotalSales(service reporting.Reporter) http.Handler {
	return reportHandler(domain.ReportTotalSales, service.TotalSales)
}

func GenreSales(service reporting.Reporter) http.Handler {
	return reportHandler(domain.ReportByGenre, service.GenreSales)
}

func CountrySales(service reporting.Reporter) http.Handler {
	return reportHandler(domain.ReportByCountry, service.CountrySales)
}

func CountryGenreSales(service reporting.Reporter) http.Handler {
	return reportHandler(domain.ReportByCountryGenre, service.CountryGenreSales)
}

func CountrySalesAll(service reporting.Reporter) http.Handler {
	return reportHandler(domain.ReportCountryAggregateAll, service.CountryAllSales)
}

func CountryGenreSalesAll(service reporting.Reporter) http.Handler {
	return reportHandler(domain.ReportCountryGenreAggregateAll, service.CountryGenreAllSales)
}

type lookupFunc func(ctx context.Context) ([]string, error)

func lookupHandler(fetch lookupFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values, err := fetch(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		if values == nil {
			values = []string{}
		}

		writeJSON(w, r, http.StatusOK, values)
	})
}

// Genres lista os gêneros disponíveis para os filtros do painel
func Genres(service reporting.Reporter) http.Handler {
	return lookupHandler(service.Genres)
}

// Countries lista os países com vendas
func Countries(service reporting.Reporter) http.Handler {
	return lookupHandler(service.Countries)
}

// EstimateSales estima as vendas do mês informado em `month` (MM-YYYY)
func EstimateSales(service reporting.Reporter, kind domain.ReportKind) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r, kind)
		if err != nil {
			writeError(w, r, err)
			return
		}

		rawMonth := strings.TrimSpace(r.URL.Query().Get("month"))
		if rawMonth == "" {
			writeError(w, r, reporting.NewReportError(
				fmt.Errorf("%w: parâmetro month ausente", domain.ErrInvalidFilter),
				apiErrors.ErrMissingRequiredData,
				kind,
				"O parâmetro month é obrigatório (MM-YYYY)",
			))
			return
		}

		target, err := utils.ParseMonth(rawMonth)
		if err != nil {
			writeError(w, r, invalidParams(kind, err))
			return
		}

		estimate, err := service.EstimateSales(r.Context(), kind, filter, target)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, estimate)
	})
}
