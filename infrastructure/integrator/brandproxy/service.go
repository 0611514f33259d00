package brandproxy

import (
	"github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandproxy/brandproxyclient"
	"github.com/vfg2006/brand-ads-api/internal/config"
	"github.com/vfg2006/brand-ads-api/internal/domain"
)

type BrandProxyIntegrator interface {
	BrandKitByDomain(siteDomain string) (*domain.BrandKit, error)
	CheckConnection(siteDomain string) (bool, error)
}

type BrandProxyService struct {
	cfg    *config.Config
	Client brandproxyclient.Client
}

func New(cfg *config.Config, client brandproxyclient.Client) BrandProxyIntegrator {
	return &BrandProxyService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BrandProxyService) BrandKitByDomain(siteDomain string) (*domain.BrandKit, error) {
	paramsClient := brandproxyclient.BrandKitConsultationParams{
		Domain: siteDomain,
	}

	resp, err := s.Client.BrandKitConsultation(paramsClient)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *BrandProxyService) CheckConnection(siteDomain string) (bool, error) {
	paramsClient := brandproxyclient.BrandKitConsultationParams{
		Domain: siteDomain,
	}

	_, err := s.Client.BrandKitConsultation(paramsClient)
	if err != nil {
		return false, err
	}

	return true, nil
}
