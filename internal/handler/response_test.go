package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperrors.NewValidation("data_nascimento inválida"), http.StatusBadRequest, "data_nascimento inválida"},
		{"conflict", apperrors.NewConflict("e-mail já cadastrado"), http.StatusBadRequest, "e-mail já cadastrado"},
		{"not found", apperrors.NewNotFound("paciente não encontrado"), http.StatusNotFound, "paciente não encontrado"},
		{"credentials", apperrors.NewInvalidCredentials(), http.StatusUnauthorized, "credenciais inválidas"},
		{"persistence", apperrors.NewPersistence(assert.AnError), http.StatusInternalServerError, "erro interno do servidor"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "erro interno do servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestPathID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := PathID(c, "id")
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestPathIDRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "0", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := PathID(c, "id")
		assert.False(t, ok, "value %q should be rejected", raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
