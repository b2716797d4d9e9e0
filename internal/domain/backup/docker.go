package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"golang.org/x/exp/slog"
)

// execAPI - подмножество docker клиента, нужное для exec в контейнер с базой
type execAPI interface {
	ContainerExecCreate(ctx context.Context, container string, options container.ExecOptions) (container.ExecCreateResponse, error)
	ContainerExecAttach(ctx context.Context, execID string, config container.ExecAttachOptions) (types.HijackedResponse, error)
	ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error)
}

// DockerDumper запускает pg_dump/pg_restore внутри контейнера postgres,
// когда на хосте сервера нет клиентских утилит нужной версии.
type DockerDumper struct {
	api         execAPI
	container   string
	databaseURI string
	log         *slog.Logger
}

func NewDockerDumper(containerName, databaseURI string, log *slog.Logger) (*DockerDumper, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	return newDockerDumper(cli, containerName, databaseURI, log), nil
}

func newDockerDumper(api execAPI, containerName, databaseURI string, log *slog.Logger) *DockerDumper {
	return &DockerDumper{
		api:         api,
		container:   containerName,
		databaseURI: databaseURI,
		log:         log.With(slog.String("component", "docker_dumper"), slog.String("container", containerName)),
	}
}

func (d *DockerDumper) Dump(ctx context.Context, w io.Writer) error {
	cmd := append([]string{"pg_dump"}, dumpArgs(d.databaseURI)...)
	return d.exec(ctx, cmd, nil, w)
}

func (d *DockerDumper) Restore(ctx context.Context, r io.Reader, dropExisting bool) error {
	cmd := append([]string{"pg_restore"}, restoreArgs(d.databaseURI, dropExisting)...)
	return d.exec(ctx, cmd, r, io.Discard)
}

func (d *DockerDumper) exec(ctx context.Context, cmd []string, stdin io.Reader, stdout io.Writer) error {
	d.log.Debug("docker exec", "cmd", cmd[0])

	created, err := d.api.ContainerExecCreate(ctx, d.container, container.ExecOptions{
		Cmd:          cmd,
		AttachStdin:  stdin != nil,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return fmt.Errorf("%s: exec create: %w", cmd[0], err)
	}

	hj, err := d.api.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return fmt.Errorf("%s: exec attach: %w", cmd[0], err)
	}
	defer hj.Close()

	stdinErr := make(chan error, 1)
	if stdin != nil {
		go func() {
			_, err := io.Copy(hj.Conn, stdin)
			if cerr := hj.CloseWrite(); err == nil {
				err = cerr
			}
			stdinErr <- err
		}()
	} else {
		stdinErr <- nil
	}

	var stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(stdout, &stderr, hj.Reader); err != nil {
		return fmt.Errorf("%s: read output: %w", cmd[0], err)
	}
	if err := <-stdinErr; err != nil {
		return fmt.Errorf("%s: write input: %w", cmd[0], err)
	}

	exitCode, err := d.waitExit(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("%s: exec inspect: %w", cmd[0], err)
	}
	if exitCode != 0 {
		return commandError(cmd[0], fmt.Errorf("exit code %d", exitCode), stderr.String())
	}
	return nil
}

// waitExit ждет завершения процесса: поток вывода может закрыться раньше, чем docker обновит статус
func (d *DockerDumper) waitExit(ctx context.Context, execID string) (int, error) {
	for {
		info, err := d.api.ContainerExecInspect(ctx, execID)
		if err != nil {
			return 0, err
		}
		if !info.Running {
			return info.ExitCode, nil
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}
