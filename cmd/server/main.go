package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"goldkeeper/internal/app/server/api"
	"goldkeeper/internal/app/server/config"
	"goldkeeper/internal/domain/backup"
	"goldkeeper/internal/domain/session"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
	"goldkeeper/internal/infrastructure/storage/postgres"
	"goldkeeper/internal/utils/logger"
)

const sessionCleanupInterval = time.Hour

func main() {
	cfg := config.MustLoad()
	log := logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
	log.Info("starting goldkeeper server", slog.String("env", cfg.Env), slog.String("addr", cfg.Server.RunAddress))

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", logger.Err(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewAccountValidator(), log)
	created, err := userService.EnsureAdmin(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		log.Warn("bootstrap administrator created", slog.String("username", cfg.Bootstrap.AdminUsername))
	}

	sessionService := session.NewService(postgres.NewSessionRepository(storage, log), cfg.Auth.SessionTTL, log)
	worktypeService := worktype.NewService(postgres.NewWorkTypeRepository(storage.Pool(), log), log)
	settingsService := settings.NewService(postgres.NewSettingsRepository(storage.Pool(), log), log)

	dumper, err := newDumper(cfg, log)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Backup.CatalogPath), 0o700); err != nil {
		return err
	}
	catalog, err := backup.NewSQLiteCatalog(cfg.Backup.CatalogPath)
	if err != nil {
		return err
	}
	defer catalog.Close()

	backups, err := backup.NewManager(backup.Options{
		Dir:           cfg.Backup.Dir,
		RetentionDays: cfg.Backup.RetentionDays,
	}, dumper, catalog, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Server.RunAddress,
		Handler: api.New(api.Services{
			Users:    userService,
			Sessions: sessionService,
			WorkType: worktypeService,
			Settings: settingsService,
			Backups:  backups,
			DB:       storage,
		}, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		backups.RunSchedule(gctx, cfg.Backup.Interval)
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				sessionService.Cleanup(gctx)
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newDumper выбирает способ снятия дампа: exec в контейнер базы или локальные pg_dump/pg_restore
func newDumper(cfg *config.Config, log *slog.Logger) (backup.Dumper, error) {
	if cfg.Backup.DockerContainer != "" {
		log.Info("using docker dumper", slog.String("container", cfg.Backup.DockerContainer))
		return backup.NewDockerDumper(cfg.Backup.DockerContainer, cfg.Backup.DockerDatabaseURI, log)
	}
	return backup.NewExecDumper(cfg.Backup.PgDumpPath, cfg.Backup.PgRestorePath, cfg.DB.DatabaseURI, log), nil
}
