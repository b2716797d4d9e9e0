package slogpretty

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestPrettyHandler_Handle(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("component", "backup_manager"))

	log.Info("backup created", slog.String("filename", "backup_20240102_030405.tar.gz"))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "backup created")
	assert.Contains(t, out, `"component": "backup_manager"`)
	assert.Contains(t, out, `"filename": "backup_20240102_030405.tar.gz"`)
}

func TestPrettyHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelWarn}}
	log := slog.New(opts.NewPrettyHandler(&buf))

	log.Info("skipped")

	assert.Empty(t, buf.String())
}
