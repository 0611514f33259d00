package brandfetchclient

import (
	"github.com/vfg2006/brand-ads-api/internal/config"
)

type Client interface {
	BrandByDomain(domain string) ([]byte, error)
}

type BrandfetchClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	client := &BrandfetchClient{
		Cfg: cfg,
	}
	return client
}
