package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Brandfetch    Brandfetch    `mapstructure:",squash"`
	BrandProxy    BrandProxy    `mapstructure:",squash"`
	Generator     Generator     `mapstructure:",squash"`
	UpstreamProbe UpstreamProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Brandfetch guarda o acesso à API de dados de marca usada pelo proxy.
// URL é derivada de BaseURL e Version após o unmarshal.
type Brandfetch struct {
	BaseURL string `mapstructure:"brandfetch_base_url"`
	URL     string `mapstructure:"-"`
	Version string `mapstructure:"brandfetch_version"`
	Key     string `mapstructure:"brandfetch_key"`
}

// BrandProxy guarda o endereço do proxy de brand kit consumido pelo
// gerador de anúncios. A variável de ambiente mantém o nome histórico
// BRANDFETCH_URL usado pelos deploys existentes.
type BrandProxy struct {
	URL string `mapstructure:"brandfetch_url"`
}

type Generator struct {
	DefaultAdCount int `mapstructure:"generator_default_ad_count"`
	MaxAdCount     int `mapstructure:"generator_max_ad_count"`
}

type UpstreamProbe struct {
	CronSchedule string `mapstructure:"upstream_probe_cron"`
	ProbeDomain  string `mapstructure:"upstream_probe_domain"`
	Enabled      bool   `mapstructure:"upstream_probe_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 3000)

	viper.SetDefault("BRANDFETCH_BASE_URL", "https://api.brandfetch.io")
	viper.SetDefault("BRANDFETCH_VERSION", "v2")
	viper.SetDefault("BRANDFETCH_KEY", "")

	viper.SetDefault("BRANDFETCH_URL", "https://brandfetch-proxy.onrender.com/brandkit")

	viper.SetDefault("GENERATOR_DEFAULT_AD_COUNT", 3) // Quantidade de anúncios quando count não é informado
	viper.SetDefault("GENERATOR_MAX_AD_COUNT", 0)     // 0 = sem limite

	// Defaults para a verificação agendada do brand proxy
	viper.SetDefault("UPSTREAM_PROBE_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("UPSTREAM_PROBE_DOMAIN", "example.com")
	viper.SetDefault("UPSTREAM_PROBE_ENABLED", false) // Habilitar verificação do brand proxy

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Brandfetch.URL = fmt.Sprintf("%s/%s", config.Brandfetch.BaseURL, config.Brandfetch.Version)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
