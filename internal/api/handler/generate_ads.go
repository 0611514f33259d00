package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/brand-ads-api/internal/usecases/generating"
	"github.com/vfg2006/brand-ads-api/pkg/apiErrors"
	"github.com/vfg2006/brand-ads-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func GenerateAds(service generating.AdGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		siteDomain := r.URL.Query().Get("domain")
		if siteDomain == "" {
			logger.Warn("ads: missing required domain parameter")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required query parameter: domain")
			return
		}

		// Quantidade inválida ou ausente cai no padrão definido na configuração
		count, err := strconv.Atoi(r.URL.Query().Get("count"))
		if err != nil {
			count = 0
		}

		logger.WithFields(log.Fields{
			"domain": siteDomain,
			"count":  count,
		}).Info("ads: generating ads for domain")

		response, err := service.GenerateAds(siteDomain, count)
		if err != nil {
			logger.WithFields(log.Fields{
				"domain": siteDomain,
				"error":  err.Error(),
			}).Error("ads: failed to generate ads")

			var genErr *generating.GeneratingError
			if errors.As(err, &genErr) {
				apiErrors.WriteError(w, genErr.Code, genErr.Error())
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar anúncios")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"domain": siteDomain,
				"error":  err.Error(),
			}).Error("ads: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta")
		}
	})
}
