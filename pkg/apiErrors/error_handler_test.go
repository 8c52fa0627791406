package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "filtro ausente", code: ErrMissingRequiredData, expectedStatus: http.StatusBadRequest},
		{name: "formato inválido", code: ErrInvalidFormat, expectedStatus: http.StatusBadRequest},
		{name: "falha de banco", code: ErrDatabaseOperation, expectedStatus: http.StatusInternalServerError},
		{name: "mapeamento de resultado", code: ErrResultMapping, expectedStatus: http.StatusInternalServerError},
		{name: "geração de planilha", code: ErrExportGeneration, expectedStatus: http.StatusInternalServerError},
		{name: "rota inexistente", code: ErrRouteNotFound, expectedStatus: http.StatusNotFound},
		{name: "código desconhecido", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
