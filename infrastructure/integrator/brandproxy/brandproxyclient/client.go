package brandproxyclient

import (
	"net/http"

	"github.com/vfg2006/brand-ads-api/internal/config"
)

type Client interface {
	BrandKitConsultation(params BrandKitConsultationParams) (*BrandKitConsultationResponse, error)
}

type BrandProxyClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do brand proxy.
func NewClient(cfg *config.Config) Client {
	return &BrandProxyClient{
		httpClient: &http.Client{},
		config:     cfg,
	}
}
