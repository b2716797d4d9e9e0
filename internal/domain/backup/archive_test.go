package backup

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_WriteAndOpen(t *testing.T) {
	dir := t.TempDir()
	dumpPath := filepath.Join(dir, "db.dump")
	require.NoError(t, os.WriteFile(dumpPath, []byte("PGDMP-fake-content"), 0o600))

	archivePath := filepath.Join(dir, "backup_20240101_000000.tar.gz")
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, writeArchive(archivePath, dumpPath, newManifest(created, "admin")))

	r, manifest, err := openDump(archivePath)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "PGDMP-fake-content", string(data))
	assert.Equal(t, dumpFormat, manifest.Format)
	assert.Equal(t, "admin", manifest.CreatedBy)
	assert.Equal(t, int64(len("PGDMP-fake-content")), manifest.DumpSize)
}

func TestArchive_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	dumpPath := filepath.Join(dir, "db.dump")
	require.NoError(t, os.WriteFile(dumpPath, []byte("x"), 0o600))

	archivePath := filepath.Join(dir, "existing.tar.gz")
	require.NoError(t, os.WriteFile(archivePath, []byte("keep me"), 0o600))

	err := writeArchive(archivePath, dumpPath, newManifest(time.Now(), "admin"))
	require.Error(t, err)

	data, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestOpenDump_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := openDump(filepath.Join(dir, "missing.tar.gz"))
	assert.ErrorIs(t, err, ErrNotFound)

	garbage := filepath.Join(dir, "garbage.tar.gz")
	require.NoError(t, os.WriteFile(garbage, []byte("not a gzip stream"), 0o600))
	_, _, err = openDump(garbage)
	assert.ErrorIs(t, err, ErrCorrupted)
}
