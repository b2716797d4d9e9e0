package backup

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	manifestEntry = "manifest.json"
	dumpEntry     = "database.dump"
	dumpFormat    = "pg_dump-custom"
)

// writeArchive упаковывает дамп и манифест в tar.gz. Файл path не должен существовать.
func writeArchive(path, dumpPath string, manifest Manifest) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close archive: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	dump, err := os.Open(dumpPath)
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}
	defer dump.Close()

	info, err := dump.Stat()
	if err != nil {
		return fmt.Errorf("stat dump: %w", err)
	}
	manifest.DumpSize = info.Size()

	meta, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	if err := tw.WriteHeader(&tar.Header{
		Name:    manifestEntry,
		Mode:    0o600,
		Size:    int64(len(meta)),
		ModTime: manifest.CreatedAt,
	}); err != nil {
		return fmt.Errorf("write manifest header: %w", err)
	}
	if _, err := tw.Write(meta); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if err := tw.WriteHeader(&tar.Header{
		Name:    dumpEntry,
		Mode:    0o600,
		Size:    info.Size(),
		ModTime: manifest.CreatedAt,
	}); err != nil {
		return fmt.Errorf("write dump header: %w", err)
	}
	if _, err := io.Copy(tw, dump); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("close tar: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}
	return nil
}

type dumpReader struct {
	io.Reader
	gz *gzip.Reader
	f  *os.File
}

func (r *dumpReader) Close() error {
	gzErr := r.gz.Close()
	fErr := r.f.Close()
	return errors.Join(gzErr, fErr)
}

// openDump открывает архив и возвращает поток дампа вместе с манифестом
func openDump(path string) (io.ReadCloser, Manifest, error) {
	var manifest Manifest

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, manifest, ErrNotFound
		}
		return nil, manifest, fmt.Errorf("open archive: %w", err)
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, manifest, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			gz.Close()
			f.Close()
			return nil, manifest, fmt.Errorf("%w: %v", ErrCorrupted, err)
		}

		switch hdr.Name {
		case manifestEntry:
			if err := json.NewDecoder(tr).Decode(&manifest); err != nil {
				gz.Close()
				f.Close()
				return nil, manifest, fmt.Errorf("%w: manifest: %v", ErrCorrupted, err)
			}
		case dumpEntry:
			return &dumpReader{Reader: tr, gz: gz, f: f}, manifest, nil
		}
	}

	gz.Close()
	f.Close()
	return nil, manifest, fmt.Errorf("%w: %s entry is missing", ErrCorrupted, dumpEntry)
}

func newManifest(createdAt time.Time, actor string) Manifest {
	return Manifest{
		Version:   1,
		Format:    dumpFormat,
		CreatedAt: createdAt,
		CreatedBy: actor,
	}
}
