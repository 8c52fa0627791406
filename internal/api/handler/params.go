package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

var validate = validator.New()

// reportParams são os parâmetros comuns dos relatórios, validados antes da conversão
type reportParams struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Country   string `validate:"omitempty,max=100"`
	Genre     string `validate:"omitempty,max=100"`
}

type trendParams struct {
	ForecastMonths int `validate:"gte=0"`
}

// pathParam lê o parâmetro de caminho decodificado uma única vez.
// O chi roteia pelo RawPath quando ele existe e nesse caso o valor ainda vem escapado.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
	}
	return strings.TrimSpace(value)
}

// parseFilter monta o filtro a partir do caminho e da query; datas vazias são ignoradas
func parseFilter(r *http.Request, kind domain.ReportKind) (domain.ReportFilter, error) {
	query := r.URL.Query()
	params := reportParams{
		StartDate: strings.TrimSpace(query.Get("startDate")),
		EndDate:   strings.TrimSpace(query.Get("endDate")),
		Country:   pathParam(r, "country"),
		Genre:     pathParam(r, "genre"),
	}

	if err := validate.Struct(params); err != nil {
		return domain.ReportFilter{}, invalidParams(kind, err)
	}

	startDate, err := utils.ParseDate(params.StartDate)
	if err != nil {
		return domain.ReportFilter{}, invalidParams(kind, err)
	}

	endDate, err := utils.ParseDate(params.EndDate)
	if err != nil {
		return domain.ReportFilter{}, invalidParams(kind, err)
	}

	return domain.ReportFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Country:   params.Country,
		Genre:     params.Genre,
	}, nil
}

// parseTrendOptions lê forecastMonths e trendFunction; função desconhecida vira Linear
func parseTrendOptions(r *http.Request, kind domain.ReportKind) (domain.TrendOptions, error) {
	query := r.URL.Query()
	opts := domain.TrendOptions{Function: domain.TrendLinear}

	if raw := strings.TrimSpace(query.Get("forecastMonths")); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			return opts, invalidParams(kind, fmt.Errorf("forecastMonths deve ser inteiro: %w", err))
		}
		opts.ForecastMonths = months
	}

	if err := validate.Struct(trendParams{ForecastMonths: opts.ForecastMonths}); err != nil {
		return opts, invalidParams(kind, err)
	}
	if opts.ForecastMonths > exporting.MaxForecastMonths {
		return opts, invalidParams(kind, fmt.Errorf("forecastMonths deve ser no máximo %d", exporting.MaxForecastMonths))
	}

	if raw := strings.TrimSpace(query.Get("trendFunction")); raw != "" {
		if ordinal, err := strconv.Atoi(raw); err == nil {
			opts.Function = domain.ParseTrendFunction(ordinal)
		}
	}

	return opts, nil
}

func invalidParams(kind domain.ReportKind, err error) error {
	details := err.Error()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
		}
		details = "parâmetros inválidos: " + strings.Join(fields, ", ")
	}

	return reporting.NewReportError(
		fmt.Errorf("%w: %w", domain.ErrInvalidFilter, err),
		apiErrors.ErrInvalidFormat,
		kind,
		details,
	)
}
