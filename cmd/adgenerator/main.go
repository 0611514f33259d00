package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandproxy"
	"github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandproxy/brandproxyclient"
	"github.com/vfg2006/brand-ads-api/internal/api"
	"github.com/vfg2006/brand-ads-api/internal/api/handler"
	"github.com/vfg2006/brand-ads-api/internal/config"
	"github.com/vfg2006/brand-ads-api/internal/scheduler"
	"github.com/vfg2006/brand-ads-api/internal/usecases/generating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	brandProxyClient := brandproxyclient.NewClient(cfg)
	brandProxyIntegrator := brandproxy.New(cfg, brandProxyClient)

	generatingService := generating.NewService(brandProxyIntegrator, cfg)

	// Inicializa o agendador de verificação do brand proxy
	upstreamProbeService := scheduler.NewUpstreamProbeService(brandProxyIntegrator, cfg)

	// Inicia o agendador em background
	if err := upstreamProbeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação do brand proxy")
	} else {
		logrus.Info("Agendador de verificação do brand proxy iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		handler.Healthcheck(),
		handler.Ads(generatingService),
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
