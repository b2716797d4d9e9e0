// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/cmd/client/cmd/types"
	"goldkeeper/internal/app/client"
	"goldkeeper/internal/app/client/config"
	"goldkeeper/internal/utils/logger"
)

var (
	cfgFile    string
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "goldkeeper",
	Short: "GoldKeeper - администрирование ювелирной мастерской",
	Long: `GoldKeeper - консольная панель администратора ювелирной мастерской.

Управление пользователями и ролями, справочником типов работ,
коэффициентом пересчета при скупке и резервными копиями базы.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !common.Shown(err) {
			fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		}
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log := logger.NewWithLevel(cfg.Env, level)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	ctx := cmd.Context()
	ctx = context.WithValue(ctx, types.ClientAppKey, app)
	ctx = context.WithValue(ctx, types.LoggerKey, log)
	ctx = context.WithValue(ctx, types.OutputKey, types.Output{
		JSON: jsonOutput,
		Out:  cmd.OutOrStdout(),
		Err:  cmd.ErrOrStderr(),
	})
	cmd.SetContext(ctx)
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".goldkeeper"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем окружение и значения по умолчанию
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера GoldKeeper")

	// Команды добавляются в init.go
}
