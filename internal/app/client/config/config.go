package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultLogLevel       = "info"
	defaultEnv            = "local"
	defaultConfigDir      = ".goldkeeper"
	defaultRequestTimeout = 120
	sessionFileName       = "session.json"
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ServerAddress  string        `mapstructure:"server_address"`
	LogLevel       string        `mapstructure:"log_level"`
	ConfigDir      string        `mapstructure:"config_dir"`
	SessionPath    string        `mapstructure:"session_path"`
	RequestTimeout time.Duration `mapstructure:"request_timeout_seconds"`
	EnableTLS      bool          `mapstructure:"enable_tls"`
	CACertPath     string        `mapstructure:"ca_cert_path"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env, переменные окружения и значения по умолчанию
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	// Загружаем .env файл если существует
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)
	viper.SetDefault("ENABLE_TLS", false)

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	// Создаем директорию если ее нет
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("создание директории конфигурации: %w", err)
	}

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		SessionPath:    filepath.Join(configDir, sessionFileName),
		RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		EnableTLS:      viper.GetBool("ENABLE_TLS"),
		CACertPath:     viper.GetString("CA_CERT_PATH"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds должен быть положительным")
	}
	return nil
}

// BaseURL возвращает адрес сервера со схемой. Адрес с явной схемой не меняется.
func (c *Config) BaseURL() string {
	if hasScheme(c.ServerAddress) {
		return c.ServerAddress
	}
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}

func hasScheme(addr string) bool {
	for _, p := range []string{"http://", "https://"} {
		if len(addr) >= len(p) && addr[:len(p)] == p {
			return true
		}
	}
	return false
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
