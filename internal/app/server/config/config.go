package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env       string
	DB        db
	Server    server
	Logger    logger
	Auth      auth
	Backup    backup
	Bootstrap bootstrap
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT_SECONDS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type auth struct {
	SessionTTL time.Duration `env:"SESSION_TTL_HOURS"`
}

type backup struct {
	Dir               string        `env:"BACKUP_DIR"`
	RetentionDays     int           `env:"BACKUP_RETENTION_DAYS"`
	CatalogPath       string        `env:"BACKUP_CATALOG_PATH"`
	Interval          time.Duration `env:"BACKUP_INTERVAL_HOURS"`
	DockerContainer   string        `env:"BACKUP_DOCKER_CONTAINER"`
	DockerDatabaseURI string        `env:"BACKUP_DOCKER_DATABASE_URI"`
	PgDumpPath        string        `env:"PG_DUMP_PATH"`
	PgRestorePath     string        `env:"PG_RESTORE_PATH"`
}

type bootstrap struct {
	AdminUsername string `env:"BOOTSTRAP_ADMIN_USERNAME"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// MustLoad загружает конфигурацию сервера и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", ":8080")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("BACKUP_DIR", "backups")
	viper.SetDefault("BACKUP_RETENTION_DAYS", 7)
	viper.SetDefault("BACKUP_INTERVAL_HOURS", 0)

	cfg := &Config{
		Env: viper.GetString("APP_ENV"),
		DB: db{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: server{
			RunAddress:      viper.GetString("RUN_ADDRESS"),
			ShutdownTimeout: time.Duration(viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Logger: logger{LogLevel: viper.GetString("LOG_LEVEL")},
		Auth: auth{
			SessionTTL: time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		},
		Backup: backup{
			Dir:               viper.GetString("BACKUP_DIR"),
			RetentionDays:     viper.GetInt("BACKUP_RETENTION_DAYS"),
			CatalogPath:       viper.GetString("BACKUP_CATALOG_PATH"),
			Interval:          time.Duration(viper.GetInt("BACKUP_INTERVAL_HOURS")) * time.Hour,
			DockerContainer:   viper.GetString("BACKUP_DOCKER_CONTAINER"),
			DockerDatabaseURI: viper.GetString("BACKUP_DOCKER_DATABASE_URI"),
			PgDumpPath:        viper.GetString("PG_DUMP_PATH"),
			PgRestorePath:     viper.GetString("PG_RESTORE_PATH"),
		},
		Bootstrap: bootstrap{
			AdminUsername: viper.GetString("BOOTSTRAP_ADMIN_USERNAME"),
			AdminPassword: viper.GetString("BOOTSTRAP_ADMIN_PASSWORD"),
		},
	}

	if cfg.Backup.CatalogPath == "" {
		cfg.Backup.CatalogPath = cfg.Backup.Dir + string(os.PathSeparator) + "catalog.db"
	}
	if cfg.Backup.DockerDatabaseURI == "" {
		cfg.Backup.DockerDatabaseURI = cfg.DB.DatabaseURI
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DB.DatabaseURI == "" {
		return errors.New("DATABASE_URI не может быть пустым")
	}
	if c.Server.RunAddress == "" {
		return errors.New("RUN_ADDRESS не может быть пустым")
	}
	if c.Backup.Dir == "" {
		return errors.New("BACKUP_DIR не может быть пустым")
	}
	if c.Backup.RetentionDays < 0 {
		return fmt.Errorf("BACKUP_RETENTION_DAYS должен быть неотрицательным, получено %d", c.Backup.RetentionDays)
	}
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("неизвестное окружение APP_ENV=%q", c.Env)
	}
	return nil
}

// String маскирует строку подключения к базе
func (c *Config) String() string {
	return fmt.Sprintf("Config{Env: %s, Addr: %s, DB: *** (masked) ***, Backups: %s}", c.Env, c.Server.RunAddress, c.Backup.Dir)
}
