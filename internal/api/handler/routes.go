package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
)

func reportsScope() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.RequireScope(authenticating.ScopeReports)}
}

func Healthcheck(monitor HealthMonitor) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(monitor),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/totalsales",
			Method:      http.MethodGet,
			Handler:     TotalSales(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/genresales/{genre}",
			Method:      http.MethodGet,
			Handler:     GenreSales(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countrySales/{country}",
			Method:      http.MethodGet,
			Handler:     CountrySales(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countryGenreSales/{country}/{genre}",
			Method:      http.MethodGet,
			Handler:     CountryGenreSales(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countrySalesAll",
			Method:      http.MethodGet,
			Handler:     CountrySalesAll(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countryGenreSalesAll/{genre}",
			Method:      http.MethodGet,
			Handler:     CountryGenreSalesAll(service),
			Middlewares: reportsScope(),
		},
	}
}

func Estimates(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/totalsales/estimate",
			Method:      http.MethodGet,
			Handler:     EstimateSales(service, domain.ReportTotalSales),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/genresales/{genre}/estimate",
			Method:      http.MethodGet,
			Handler:     EstimateSales(service, domain.ReportByGenre),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countrySales/{country}/estimate",
			Method:      http.MethodGet,
			Handler:     EstimateSales(service, domain.ReportByCountry),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countryGenreSales/{country}/{genre}/estimate",
			Method:      http.MethodGet,
			Handler:     EstimateSales(service, domain.ReportByCountryGenre),
			Middlewares: reportsScope(),
		},
	}
}

func Lookups(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/genres",
			Method:      http.MethodGet,
			Handler:     Genres(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countries",
			Method:      http.MethodGet,
			Handler:     Countries(service),
			Middlewares: reportsScope(),
		},
	}
}

func Exports(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/totalsales/export",
			Method:      http.MethodGet,
			Handler:     ExportTotalSales(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/genresales/export",
			Method:      http.MethodGet,
			Handler:     ExportGenreSales(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countrySales/export/{country}",
			Method:      http.MethodGet,
			Handler:     ExportCountrySales(service),
			Middlewares: reportsScope(),
		},
		{
			Path:        "/countryGenreSales/export/{country}/{genre}",
			Method:      http.MethodGet,
			Handler:     ExportCountryGenreSales(service),
			Middlewares: reportsScope(),
		},
	}
}
