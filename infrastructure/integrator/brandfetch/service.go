package brandfetch

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandfetch/brandfetchclient"
	"github.com/vfg2006/brand-ads-api/internal/config"
)

type BrandfetchIntegrator interface {
	BrandKitByDomain(domain string) ([]byte, error)
}

type BrandfetchService struct {
	cfg    *config.Config
	Client brandfetchclient.Client
}

func New(cfg *config.Config, client brandfetchclient.Client) BrandfetchIntegrator {
	return &BrandfetchService{
		cfg:    cfg,
		Client: client,
	}
}

// BrandKitByDomain busca o kit de marca no Brandfetch e devolve o payload
// bruto para ser repassado ao cliente.
func (s *BrandfetchService) BrandKitByDomain(domain string) ([]byte, error) {
	resp, err := s.Client.BrandByDomain(domain)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"domain": domain,
			"error":  err.Error(),
		}).Error("brandkit: failed to fetch brand data from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"domain":     domain,
		"body_bytes": len(resp),
	}).Debug("brandkit: successfully retrieved brand data")

	return resp, nil
}
