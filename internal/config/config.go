package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	HealthCheck HealthCheck `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	SSLMode         string        `mapstructure:"database_sslmode"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	Enabled bool   `mapstructure:"auth_enabled"`
	Secret  string `mapstructure:"auth_secret"`
	Issuer  string `mapstructure:"auth_issuer"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type HealthCheck struct {
	Enabled  bool          `mapstructure:"healthcheck_enabled"`
	Interval time.Duration `mapstructure:"healthcheck_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 5000)

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/music_database")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("AUTH_SECRET", "")
	v.SetDefault("AUTH_ISSUER", "sales-report-api")

	// Lista separada por vírgulas; "*" libera qualquer origem
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("HEALTHCHECK_ENABLED", true)
	v.SetDefault("HEALTHCHECK_INTERVAL", "30s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// NewConfig lê a configuração uma única vez a partir do ambiente (e do .env, se existir)
func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = config.Database.BuildDSN()

	return config, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("config: DATABASE_URL é obrigatório")
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("config: AUTH_SECRET é obrigatório quando AUTH_ENABLED=true")
	}

	if c.HealthCheck.Enabled && c.HealthCheck.Interval <= 0 {
		return fmt.Errorf("config: HEALTHCHECK_INTERVAL deve ser positivo")
	}

	return nil
}

// BuildDSN monta a URL de conexão escapando usuário e senha
func (d Database) BuildDSN() string {
	dsn := fmt.Sprintf(
		"%s://%s@%s",
		d.Driver,
		url.UserPassword(d.User, d.Password).String(),
		d.URL,
	)

	if d.SSLMode != "" {
		dsn = fmt.Sprintf("%s?sslmode=%s", dsn, url.QueryEscape(d.SSLMode))
	}

	return dsn
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
