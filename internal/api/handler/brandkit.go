package handler

import (
	"net/http"

	"github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandfetch"
	"github.com/vfg2006/brand-ads-api/pkg/apiErrors"
	"github.com/vfg2006/brand-ads-api/pkg/log"
)

func GetBrandKit(service brandfetch.BrandfetchIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		siteDomain := r.URL.Query().Get("domain")
		logger.WithField("domain", siteDomain).Info("brandkit: fetching brand kit for domain")

		body, err := service.BrandKitByDomain(siteDomain)
		if err != nil {
			logger.WithFields(log.Fields{
				"domain": siteDomain,
				"error":  err.Error(),
			}).Error("brandkit: failed to fetch brand kit")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(body); err != nil {
			logger.WithFields(log.Fields{
				"domain": siteDomain,
				"error":  err.Error(),
			}).Error("brandkit: failed to write response")
		}
	})
}
