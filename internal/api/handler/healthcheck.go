package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// HealthMonitor expõe o último resultado da verificação do banco
type HealthMonitor interface {
	Status() domain.DatabaseHealth
}

type healthResponse struct {
	Time     time.Time              `json:"time"`
	Database *domain.DatabaseHealth `json:"database,omitempty"`
}

// HealthcheckHandler responde com a hora do servidor e a saúde do banco.
// Com o banco fora do ar a resposta é 503.
func HealthcheckHandler(monitor HealthMonitor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthResponse{Time: time.Now()}
		status := http.StatusOK

		if monitor != nil {
			health := monitor.Status()
			response.Database = &health
			if health.Status == domain.HealthStatusDown {
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, r, status, response)
	})
}
