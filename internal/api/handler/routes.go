package handler

import (
	"net/http"

	"github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandfetch"
	"github.com/vfg2006/brand-ads-api/internal/api/handler/router"
	"github.com/vfg2006/brand-ads-api/internal/usecases/generating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func BrandKit(service brandfetch.BrandfetchIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/brandkit",
			Method:  http.MethodGet,
			Handler: GetBrandKit(service),
		},
	}
}

func Ads(service generating.AdGenerator) []router.Route {
	return []router.Route{
		{
			Path:    "/generate-ads",
			Method:  http.MethodGet,
			Handler: GenerateAds(service),
		},
	}
}
