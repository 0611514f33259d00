package brandfetchclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-ads-api/internal/config"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Brandfetch: config.Brandfetch{
			URL: baseURL,
			Key: "chave-de-teste",
		},
	}
}

func TestBrandByDomain(t *testing.T) {
	t.Run("sucesso ao consultar a marca e repassar o corpo sem alterações", func(t *testing.T) {
		payload := `{"name":"Acme","domain":"acme.com","colors":[{"hex":"#ff0000","type":"accent"}]}`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/brands/acme.com", r.URL.Path)
			assert.Equal(t, "Bearer chave-de-teste", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(payload))
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL))

		body, err := client.BrandByDomain("acme.com")
		require.NoError(t, err)
		assert.Equal(t, payload, string(body))
	})

	t.Run("erro quando a API responde com status diferente de 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL))

		body, err := client.BrandByDomain("dominio-inexistente.com")
		require.Error(t, err)
		assert.Nil(t, body)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("erro quando a API responde com corpo que não é JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>erro</html>"))
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL))

		body, err := client.BrandByDomain("acme.com")
		require.Error(t, err)
		assert.Nil(t, body)
		assert.Contains(t, err.Error(), "JSON")
	})

	t.Run("erro quando o servidor está indisponível", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(newTestConfig(server.URL))

		body, err := client.BrandByDomain("acme.com")
		require.Error(t, err)
		assert.Nil(t, body)
	})
}
