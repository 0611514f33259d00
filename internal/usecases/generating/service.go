package generating

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandproxy"
	"github.com/vfg2006/brand-ads-api/internal/config"
	"github.com/vfg2006/brand-ads-api/internal/domain"
	"github.com/vfg2006/brand-ads-api/pkg/apiErrors"
)

type AdGenerator interface {
	GenerateAds(siteDomain string, count int) (*domain.GenerateAdsResponse, error)
}

type Service struct {
	brandProxyService brandproxy.BrandProxyIntegrator
	cfg               *config.Config
}

func NewService(brandProxyService brandproxy.BrandProxyIntegrator, cfg *config.Config) AdGenerator {
	return &Service{
		brandProxyService: brandProxyService,
		cfg:               cfg,
	}
}

// GenerateAds monta a quantidade pedida de anúncios para o domínio,
// personalizando os modelos com o nome e a cor principal da marca.
func (s *Service) GenerateAds(siteDomain string, count int) (*domain.GenerateAdsResponse, error) {
	if count <= 0 {
		count = s.cfg.Generator.DefaultAdCount
	}

	if max := s.cfg.Generator.MaxAdCount; max > 0 && count > max {
		logrus.WithFields(logrus.Fields{
			"domain":    siteDomain,
			"requested": count,
			"max":       max,
		}).Warn("ads: requested count above limit, capping")
		count = max
	}

	brandKit, err := s.brandProxyService.BrandKitByDomain(siteDomain)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"domain": siteDomain,
			"error":  err.Error(),
		}).Error("ads: failed to fetch brand kit from proxy")
		return nil, NewGeneratingError(ErrBrandKitFetch, apiErrors.ErrExternalService, siteDomain, err.Error())
	}

	brandName := brandKit.BrandName()
	primaryColor := brandKit.PrimaryColorHex()

	ads := make([]domain.Ad, 0, count)
	for i := 0; i < count; i++ {
		ad := domain.TemplateAt(i).Render(brandName)
		ad.Color = primaryColor
		ads = append(ads, ad)
	}

	logrus.WithFields(logrus.Fields{
		"domain":     siteDomain,
		"brand_name": brandName,
		"ads":        len(ads),
	}).Debug("ads: successfully generated ads")

	return &domain.GenerateAdsResponse{
		Domain: siteDomain,
		Ads:    ads,
	}, nil
}
