package brandfetchclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BrandByDomain consulta a API do Brandfetch e retorna o corpo bruto da
// resposta, sem interpretar o payload.
func (c *BrandfetchClient) BrandByDomain(domain string) ([]byte, error) {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.Cfg.Brandfetch.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "brands", domain)

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+c.Cfg.Brandfetch.Key)
	req.Header.Set("Accept", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao Brandfetch falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler a resposta")
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	// O corpo é repassado sem alterações, mas precisa ser um JSON válido.
	if !json.Valid(body) {
		return nil, fmt.Errorf("resposta do Brandfetch não é um JSON válido")
	}

	return body, nil
}
