package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/exporting"
)

type exportFunc func(ctx context.Context, filter domain.ReportFilter, opts domain.TrendOptions) (*domain.ExportFile, error)

func exportHandler(kind domain.ReportKind, export exportFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r, kind)
		if err != nil {
			writeError(w, r, err)
			return
		}

		opts, err := parseTrendOptions(r, kind)
		if err != nil {
			writeError(w, r, err)
			return
		}

		file, err := export(r.Context(), filter, opts)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeFile(w, r, file)
	})
}

func ExportTotalSales(service exporting.Exporter) http.Handler {
	return exportHandler(domain.ReportTotalSales, service.ExportTotalSales)
}

// ExportGenreSales não tem linha de tendência; forecastMonths e trendFunction são ignorados
func ExportGenreSales(service exporting.Exporter) http.Handler {
	return exportHandler(domain.ReportGenreAggregateAll, func(ctx context.Context, filter domain.ReportFilter, _ domain.TrendOptions) (*domain.ExportFile, error) {
		return service.ExportGenreSales(ctx, filter)
	})
}

func ExportCountrySales(service exporting.Exporter) http.Handler {
	return exportHandler(domain.ReportByCountry, service.ExportCountrySales)
}

func ExportCountryGenreSales(service exporting.Exporter) http.Handler {
	return exportHandler(domain.ReportByCountryGenre, service.ExportCountryGenreSales)
}
