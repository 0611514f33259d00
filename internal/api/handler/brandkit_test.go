package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	brandfetchmocks "github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandfetch/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetBrandKit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("sucesso ao repassar o corpo da resposta sem alterações", func(t *testing.T) {
		payload := `{"name":"Acme","domain":"acme.com","colors":[{"hex":"#ff0000","type":"accent"}]}`

		mockService := brandfetchmocks.NewMockBrandfetchIntegrator(ctrl)
		mockService.EXPECT().BrandKitByDomain("acme.com").Return([]byte(payload), nil)

		req := httptest.NewRequest(http.MethodGet, "/brandkit?domain=acme.com", nil)
		rec := httptest.NewRecorder()

		GetBrandKit(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, payload, rec.Body.String())
	})

	t.Run("erro 500 quando a consulta ao Brandfetch falha", func(t *testing.T) {
		mockService := brandfetchmocks.NewMockBrandfetchIntegrator(ctrl)
		mockService.
			EXPECT().
			BrandKitByDomain("dominio-inexistente.com").
			Return(nil, fmt.Errorf("requisição ao Brandfetch falhou com status: 404 Not Found"))

		req := httptest.NewRequest(http.MethodGet, "/brandkit?domain=dominio-inexistente.com", nil)
		rec := httptest.NewRecorder()

		GetBrandKit(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"requisição ao Brandfetch falhou com status: 404 Not Found"}`, rec.Body.String())
	})

	t.Run("domínio ausente é encaminhado sem validação local", func(t *testing.T) {
		mockService := brandfetchmocks.NewMockBrandfetchIntegrator(ctrl)
		mockService.
			EXPECT().
			BrandKitByDomain("").
			Return(nil, fmt.Errorf("requisição ao Brandfetch falhou com status: 400 Bad Request"))

		req := httptest.NewRequest(http.MethodGet, "/brandkit", nil)
		rec := httptest.NewRecorder()

		GetBrandKit(mockService).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"requisição ao Brandfetch falhou com status: 400 Bad Request"}`, rec.Body.String())
	})
}
