package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-ads-api/infrastructure/integrator/brandproxy"
	"github.com/vfg2006/brand-ads-api/internal/config"
	"github.com/vfg2006/brand-ads-api/pkg/utils"
)

// UpstreamProbeConfig representa a configuração do agendador de verificação do brand proxy
type UpstreamProbeConfig struct {
	CronSchedule string
	ProbeDomain  string
	Enabled      bool
}

// UpstreamProbeService gerencia o agendamento e execução das verificações do brand proxy
type UpstreamProbeService struct {
	scheduler            *gocron.Scheduler
	config               UpstreamProbeConfig
	appConfig            *config.Config
	brandProxyService    brandproxy.BrandProxyIntegrator
	probeRunning         bool
	probeMutex           sync.Mutex
	lastProbeStartedAt   time.Time
	lastProbeCompletedAt time.Time
	lastProbeSucceeded   bool
	lastProbeError       string
}

// NewUpstreamProbeService cria uma nova instância do serviço de verificação do brand proxy
func NewUpstreamProbeService(
	brandProxyService brandproxy.BrandProxyIntegrator,
	appConfig *config.Config,
) *UpstreamProbeService {
	// Criar a configuração com base na config global
	probeConfig := UpstreamProbeConfig{
		CronSchedule: appConfig.UpstreamProbe.CronSchedule,
		ProbeDomain:  appConfig.UpstreamProbe.ProbeDomain,
		Enabled:      appConfig.UpstreamProbe.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"probe_domain":  probeConfig.ProbeDomain,
		"probe_enabled": probeConfig.Enabled,
	}).Info("Configuração do agendador de verificação do brand proxy carregada")

	return &UpstreamProbeService{
		scheduler:         scheduler,
		config:            probeConfig,
		appConfig:         appConfig,
		brandProxyService: brandProxyService,
		probeRunning:      false,
	}
}

// Start inicia o agendador
func (s *UpstreamProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação periódica do brand proxy desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação do brand proxy")

	// Agendar a verificação do brand proxy
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probeUpstream()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do brand proxy: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação do brand proxy")
		s.scheduler.Stop()
	}()

	return nil
}

// probeUpstream verifica se o brand proxy está respondendo para o domínio configurado
func (s *UpstreamProbeService) probeUpstream() {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Info("Verificação do brand proxy já em andamento, ignorando")
		return
	}
	s.probeRunning = true
	s.probeMutex.Unlock()

	startTime := time.Now()
	s.lastProbeStartedAt = startTime

	defer func() {
		s.probeMutex.Lock()
		s.probeRunning = false
		s.probeMutex.Unlock()
	}()

	probeID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador da verificação")
	}

	logrus.WithFields(logrus.Fields{
		"probe_id":     probeID,
		"probe_domain": s.config.ProbeDomain,
	}).Info("Iniciando verificação do brand proxy")

	ok, err := s.brandProxyService.CheckConnection(s.config.ProbeDomain)
	if err != nil || !ok {
		s.lastProbeSucceeded = false
		if err != nil {
			s.lastProbeError = err.Error()
		}

		logrus.WithFields(logrus.Fields{
			"probe_id":     probeID,
			"probe_domain": s.config.ProbeDomain,
			"error":        s.lastProbeError,
		}).Error("Brand proxy indisponível")
	} else {
		s.lastProbeSucceeded = true
		s.lastProbeError = ""

		logrus.WithFields(logrus.Fields{
			"probe_id":     probeID,
			"probe_domain": s.config.ProbeDomain,
		}).Info("Brand proxy respondendo normalmente")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"probe_id": probeID,
		"duration": duration.String(),
	}).Info("Verificação do brand proxy concluída")

	s.lastProbeCompletedAt = time.Now()
}

// TriggerManualProbe inicia manualmente uma verificação do brand proxy
func (s *UpstreamProbeService) TriggerManualProbe() {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Info("Verificação do brand proxy já em andamento, ignorando solicitação manual")
		return
	}
	s.probeMutex.Unlock()

	logrus.Info("Iniciando verificação manual do brand proxy")
	go s.probeUpstream()
}

// GetStatus retorna o status atual do agendador
func (s *UpstreamProbeService) GetStatus() map[string]any {
	return map[string]any{
		"probe_enabled":           s.config.Enabled,
		"probe_cron":              s.config.CronSchedule,
		"probe_domain":            s.config.ProbeDomain,
		"last_probe_started_at":   s.lastProbeStartedAt,
		"last_probe_completed_at": s.lastProbeCompletedAt,
		"last_probe_succeeded":    s.lastProbeSucceeded,
		"last_probe_error":        s.lastProbeError,
	}
}
