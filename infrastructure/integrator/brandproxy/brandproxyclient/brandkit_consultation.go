package brandproxyclient

import (
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/brand-ads-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type BrandKitConsultationParams struct {
	Domain string
}

type BrandKitConsultationResponse = domain.BrandKit

func (c *BrandProxyClient) BrandKitConsultation(params BrandKitConsultationParams) (*BrandKitConsultationResponse, error) {
	var response BrandKitConsultationResponse

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.BrandProxy.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("domain", params.Domain)
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao brand proxy falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
