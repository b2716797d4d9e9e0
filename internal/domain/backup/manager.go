package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Backup, error)
	Create(ctx context.Context, actor string) (Backup, error)
	Restore(ctx context.Context, filename string, dropExisting bool, actor string) error
	Delete(ctx context.Context, filename, actor string) error
	History(ctx context.Context, limit int) ([]Event, error)
}

type Options struct {
	Dir           string
	RetentionDays int
}

// Manager управляет архивами бэкапов в каталоге Dir.
// Создание, восстановление и удаление выполняются строго по одному.
type Manager struct {
	dir       string
	retention time.Duration
	dumper    Dumper
	catalog   Catalog
	log       *slog.Logger
	now       func() time.Time
	mu        sync.Mutex
}

func NewManager(opts Options, dumper Dumper, catalog Catalog, log *slog.Logger) (*Manager, error) {
	if opts.Dir == "" {
		return nil, errors.New("backup directory is not configured")
	}
	if err := os.MkdirAll(opts.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}
	if catalog == nil {
		catalog = nopCatalog{}
	}

	return &Manager{
		dir:       opts.Dir,
		retention: time.Duration(opts.RetentionDays) * 24 * time.Hour,
		dumper:    dumper,
		catalog:   catalog,
		log:       log.With(slog.String("component", "backup_manager")),
		now:       time.Now,
	}, nil
}

func (m *Manager) List(_ context.Context) ([]Backup, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	now := m.now()
	backups := make([]Backup, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		created, err := ParseFileName(entry.Name())
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, newBackup(entry.Name(), created, info.Size(), now))
	}

	// Новые сверху: имя содержит время создания
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Filename > backups[j].Filename
	})

	return backups, nil
}

func (m *Manager) Create(ctx context.Context, actor string) (Backup, error) {
	if !m.mu.TryLock() {
		return Backup{}, ErrBusy
	}
	defer m.mu.Unlock()

	created := m.now().UTC().Truncate(time.Second)
	name := FileName(created)
	log := m.log.With(slog.String("file", name))

	b, err := m.create(ctx, name, created, actor)
	m.record(ctx, ActionCreate, name, actor, err)
	if err != nil {
		log.Error("backup failed", "error", err)
		return Backup{}, err
	}

	log.Info("backup created", "size_mb", b.SizeMB, "by", actor)

	if _, err := m.cleanup(ctx); err != nil {
		log.Warn("retention cleanup failed", "error", err)
	}

	return b, nil
}

func (m *Manager) create(ctx context.Context, name string, created time.Time, actor string) (Backup, error) {
	final := filepath.Join(m.dir, name)
	if _, err := os.Stat(final); err == nil {
		return Backup{}, ErrExists
	}

	tmp, err := os.CreateTemp(m.dir, ".dump-*")
	if err != nil {
		return Backup{}, fmt.Errorf("create temp dump: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := m.dumper.Dump(ctx, tmp); err != nil {
		tmp.Close()
		return Backup{}, fmt.Errorf("dump database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Backup{}, fmt.Errorf("close temp dump: %w", err)
	}

	part := final + ".part"
	if err := writeArchive(part, tmp.Name(), newManifest(created, actor)); err != nil {
		return Backup{}, err
	}
	if err := os.Rename(part, final); err != nil {
		os.Remove(part)
		return Backup{}, fmt.Errorf("finalize archive: %w", err)
	}

	info, err := os.Stat(final)
	if err != nil {
		return Backup{}, fmt.Errorf("stat archive: %w", err)
	}

	return newBackup(name, created, info.Size(), m.now()), nil
}

// Restore заменяет текущее состояние базы содержимым архива.
// При dropExisting существующие объекты удаляются перед загрузкой.
func (m *Manager) Restore(ctx context.Context, filename string, dropExisting bool, actor string) error {
	if _, err := ParseFileName(filename); err != nil {
		return err
	}
	if !m.mu.TryLock() {
		return ErrBusy
	}
	defer m.mu.Unlock()

	log := m.log.With(slog.String("file", filename))
	log.Warn("restoring database", "drop_existing", dropExisting, "by", actor)

	err := m.restore(ctx, filename, dropExisting)
	m.record(ctx, ActionRestore, filename, actor, err)
	if err != nil {
		log.Error("restore failed", "error", err)
		return err
	}

	log.Info("database restored", "by", actor)
	return nil
}

func (m *Manager) restore(ctx context.Context, filename string, dropExisting bool) error {
	dump, manifest, err := openDump(filepath.Join(m.dir, filename))
	if err != nil {
		return err
	}
	defer dump.Close()

	if manifest.Format != "" && manifest.Format != dumpFormat {
		return fmt.Errorf("%w: unsupported dump format %q", ErrCorrupted, manifest.Format)
	}

	if err := m.dumper.Restore(ctx, dump, dropExisting); err != nil {
		return fmt.Errorf("restore database: %w", err)
	}
	return nil
}

func (m *Manager) Delete(ctx context.Context, filename, actor string) error {
	if _, err := ParseFileName(filename); err != nil {
		return err
	}
	if !m.mu.TryLock() {
		return ErrBusy
	}
	defer m.mu.Unlock()

	err := os.Remove(filepath.Join(m.dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	m.record(ctx, ActionDelete, filename, actor, err)
	if err != nil {
		return fmt.Errorf("delete backup: %w", err)
	}

	m.log.Info("backup deleted", "file", filename, "by", actor)
	return nil
}

func (m *Manager) History(ctx context.Context, limit int) ([]Event, error) {
	return m.catalog.List(ctx, limit)
}

// Cleanup удаляет архивы старше срока хранения
func (m *Manager) Cleanup(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleanup(ctx)
}

func (m *Manager) cleanup(ctx context.Context) ([]string, error) {
	if m.retention <= 0 {
		return nil, nil
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	cutoff := m.now().Add(-m.retention)
	var removed []string
	for _, entry := range entries {
		created, err := ParseFileName(entry.Name())
		if err != nil || !created.Before(cutoff) {
			continue
		}
		err = os.Remove(filepath.Join(m.dir, entry.Name()))
		m.record(ctx, ActionExpire, entry.Name(), "retention", err)
		if err != nil {
			m.log.Warn("failed to delete old backup", "file", entry.Name(), "error", err)
			continue
		}
		m.log.Info("deleted old backup", "file", entry.Name())
		removed = append(removed, entry.Name())
	}

	return removed, nil
}

// RunSchedule создает бэкапы с заданным интервалом до отмены контекста
func (m *Manager) RunSchedule(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.log.Info("scheduled backups enabled", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.Create(ctx, "scheduler"); err != nil {
				m.log.Error("scheduled backup failed", "error", err)
			}
		}
	}
}

func (m *Manager) record(ctx context.Context, action Action, filename, actor string, opErr error) {
	e := Event{
		Action:    action,
		Filename:  filename,
		Actor:     actor,
		Success:   opErr == nil,
		CreatedAt: m.now().UTC(),
	}
	if opErr != nil {
		e.Detail = opErr.Error()
	}
	// Журнал пишем и после отмены запроса
	if err := m.catalog.Record(context.WithoutCancel(ctx), e); err != nil {
		m.log.Warn("failed to record backup event", "action", action, "error", err)
	}
}

func newBackup(name string, created time.Time, size int64, now time.Time) Backup {
	return Backup{
		Filename:  name,
		CreatedAt: created,
		SizeBytes: size,
		SizeMB:    sizeMB(size),
		AgeDays:   ageDays(created, now),
	}
}
