package handler

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeError traduz o erro do caso de uso para a resposta padronizada.
// Erros de servidor não expõem a mensagem do banco ao cliente.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := reporting.ErrorCode(err)
	status := apiErrors.StatusFor(code)

	message := err.Error()
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) && reportErr.Details != "" {
		message = reportErr.Details
	}
	if status >= http.StatusInternalServerError {
		message = serverMessage(err)
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"path":        r.URL.Path,
		"status_code": status,
		"error":       err.Error(),
	}).Warn("Requisição de relatório falhou")

	apiErrors.WriteError(w, code, message, nil)
}

func serverMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrQueryExecution):
		return "Erro ao consultar o banco de dados"
	case errors.Is(err, domain.ErrResultMapping):
		return "Resultado da consulta em formato inesperado"
	case errors.Is(err, domain.ErrExportGeneration), errors.Is(err, domain.ErrTrendNotSupported):
		return "Erro ao gerar a planilha"
	default:
		return "Erro interno no servidor"
	}
}

func writeFile(w http.ResponseWriter, r *http.Request, file *domain.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", fmt.Sprint(len(file.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(file.Content); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar planilha")
	}
}
