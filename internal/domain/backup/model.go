package backup

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

const (
	filePrefix  = "backup_"
	fileSuffix  = ".tar.gz"
	stampLayout = "20060102_150405"
)

var (
	ErrNotFound    = errors.New("backup not found")
	ErrInvalidName = errors.New("invalid backup file name")
	ErrBusy        = errors.New("another backup operation is in progress")
	ErrExists      = errors.New("backup with this name already exists")
	ErrCorrupted   = errors.New("backup archive is corrupted")
)

// Backup - снимок всей базы данных. После создания не изменяется.
type Backup struct {
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
	SizeMB    float64   `json:"size_mb"`
	AgeDays   int       `json:"age_days"`
}

type Action string

const (
	ActionCreate  Action = "create"
	ActionRestore Action = "restore"
	ActionDelete  Action = "delete"
	ActionExpire  Action = "expire"
)

// Event - запись журнала операций с бэкапами
type Event struct {
	ID        int64     `json:"id"`
	Action    Action    `json:"action"`
	Filename  string    `json:"filename"`
	Actor     string    `json:"actor"`
	Success   bool      `json:"success"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Manifest лежит в архиве рядом с дампом
type Manifest struct {
	Version   int       `json:"version"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
	DumpSize  int64     `json:"dump_size"`
}

// FileName возвращает имя архива для момента t
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format(stampLayout) + fileSuffix
}

// ParseFileName извлекает время создания из имени архива
func ParseFileName(name string) (time.Time, error) {
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return time.Time{}, ErrInvalidName
	}
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return time.Time{}, ErrInvalidName
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	t, err := time.ParseInLocation(stampLayout, stamp, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidName
	}
	return t, nil
}

func ageDays(created, now time.Time) int {
	if now.Before(created) {
		return 0
	}
	return int(now.Sub(created).Hours() / 24)
}

func sizeMB(size int64) float64 {
	mb := float64(size) / (1024 * 1024)
	return float64(int64(mb*100+0.5)) / 100
}
