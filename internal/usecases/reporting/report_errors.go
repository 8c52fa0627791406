package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error             // Erro base
	Code    string            // Código de erro para API
	Kind    domain.ReportKind // Relatório envolvido
	Details string            // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, kind domain.ReportKind, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Kind:    kind,
		Details: details,
	}
}

// ErrorCode traduz os erros de relatório para os códigos da API
func ErrorCode(err error) string {
	var reportErr *ReportError
	if errors.As(err, &reportErr) && reportErr.Code != "" {
		return reportErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrInvalidFilter):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, domain.ErrQueryExecution):
		return apiErrors.ErrDatabaseOperation
	case errors.Is(err, domain.ErrResultMapping):
		return apiErrors.ErrResultMapping
	case errors.Is(err, domain.ErrExportGeneration), errors.Is(err, domain.ErrTrendNotSupported):
		return apiErrors.ErrExportGeneration
	default:
		return apiErrors.ErrInternalServer
	}
}

// wrapError envolve o erro do repositório mantendo o sentinela na cadeia
func wrapError(err error, kind domain.ReportKind, details string) error {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return err
	}
	return NewReportError(err, ErrorCode(err), kind, details)
}
