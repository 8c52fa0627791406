package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// RequireScope restringe a rota aos tokens com o escopo informado.
// Sem claims no contexto a autenticação está desabilitada e a rota fica aberta.
func RequireScope(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if claims.Scope != scope {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_subject": claims.Subject,
					"user_scope":   claims.Scope,
				}).Warn("Acesso negado por escopo")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
