// Package common - помощники, общие для всех команд клиента
package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"goldkeeper/cmd/client/cmd/types"
	"goldkeeper/internal/app/client"
	"goldkeeper/internal/app/client/panel"
)

var ErrNotLoggedIn = errors.New("вы не вошли в систему, выполните: goldkeeper auth login")

func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, errors.New("приложение не инициализировано")
	}
	return app, nil
}

func Logger(cmd *cobra.Command) *slog.Logger {
	log, ok := cmd.Context().Value(types.LoggerKey).(*slog.Logger)
	if !ok || log == nil {
		return slog.Default()
	}
	return log
}

func Output(cmd *cobra.Command) types.Output {
	out, ok := cmd.Context().Value(types.OutputKey).(types.Output)
	if !ok {
		return types.Output{Out: os.Stdout, Err: os.Stderr}
	}
	return out
}

// OpenPage перечитывает текущего пользователя и собирает страницу настроек под его роль
func OpenPage(cmd *cobra.Command) (*panel.Page, error) {
	app, err := App(cmd)
	if err != nil {
		return nil, err
	}

	actor, err := app.Refresh(cmd.Context())
	if errors.Is(err, client.ErrNotAuthenticated) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось получить текущего пользователя: %w", err)
	}

	n := panel.NewConsoleNotifier(Output(cmd).Info())
	return panel.NewPage(app.API(), actor, n, Logger(cmd)), nil
}

// shownError - ошибка, о которой пользователь уже получил уведомление
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }

func (e *shownError) Unwrap() error { return e.err }

// Result превращает ошибку панели в результат команды. Ошибки, о которых
// панель уже уведомила, помечаются и повторно не печатаются.
func Result(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, panel.ErrForbidden):
		return errors.New("недостаточно прав для этой операции")
	case errors.Is(err, panel.ErrBusy):
		return errors.New("операция уже выполняется")
	case errors.Is(err, panel.ErrNoDialog), errors.Is(err, panel.ErrNotConfirming):
		return err
	default:
		return &shownError{err: err}
	}
}

// Shown сообщает, что текст ошибки уже показан пользователю
func Shown(err error) bool {
	var s *shownError
	return errors.As(err, &s)
}

func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func NewTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// ParseID разбирает числовой идентификатор из аргумента команды
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некорректный ID: %q", arg)
	}
	return id, nil
}
