package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/exp/slog"
)

// Dumper снимает и восстанавливает дамп базы данных в формате pg_dump custom
type Dumper interface {
	Dump(ctx context.Context, w io.Writer) error
	Restore(ctx context.Context, r io.Reader, dropExisting bool) error
}

// ExecDumper запускает локальные pg_dump/pg_restore
type ExecDumper struct {
	dumpPath    string
	restorePath string
	databaseURI string
	log         *slog.Logger
}

func NewExecDumper(dumpPath, restorePath, databaseURI string, log *slog.Logger) *ExecDumper {
	if dumpPath == "" {
		dumpPath = "pg_dump"
	}
	if restorePath == "" {
		restorePath = "pg_restore"
	}
	return &ExecDumper{
		dumpPath:    dumpPath,
		restorePath: restorePath,
		databaseURI: databaseURI,
		log:         log.With(slog.String("component", "exec_dumper")),
	}
}

func (d *ExecDumper) Dump(ctx context.Context, w io.Writer) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.dumpPath, dumpArgs(d.databaseURI)...)
	cmd.Stdout = w
	cmd.Stderr = &stderr

	d.log.Debug("running pg_dump", "binary", d.dumpPath)
	if err := cmd.Run(); err != nil {
		return commandError("pg_dump", err, stderr.String())
	}
	return nil
}

func (d *ExecDumper) Restore(ctx context.Context, r io.Reader, dropExisting bool) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.restorePath, restoreArgs(d.databaseURI, dropExisting)...)
	cmd.Stdin = r
	cmd.Stderr = &stderr

	d.log.Debug("running pg_restore", "binary", d.restorePath, "drop_existing", dropExisting)
	if err := cmd.Run(); err != nil {
		return commandError("pg_restore", err, stderr.String())
	}
	return nil
}

// sessionsTable хранит токены входа, их строки в дамп не попадают
const sessionsTable = "sessions"

func dumpArgs(databaseURI string) []string {
	return []string{
		"--format=custom",
		"--no-owner",
		"--no-privileges",
		"--exclude-table-data=" + sessionsTable,
		"--dbname=" + databaseURI,
	}
}

func restoreArgs(databaseURI string, dropExisting bool) []string {
	args := []string{"--no-owner", "--no-privileges", "--exit-on-error", "--single-transaction", "--dbname=" + databaseURI}
	if dropExisting {
		args = append(args, "--clean", "--if-exists")
	}
	return args
}

func commandError(name string, err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return fmt.Errorf("%s: %w", name, err)
	}
	return fmt.Errorf("%s: %w: %s", name, err, stderr)
}
