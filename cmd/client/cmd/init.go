// cmd/client/cmd/init.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/auth"
	"goldkeeper/cmd/client/cmd/backups"
	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/cmd/client/cmd/settings"
	"goldkeeper/cmd/client/cmd/users"
	"goldkeeper/cmd/client/cmd/worktypes"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Проверить настройку клиента",
	Long: `Команда init проверяет готовность клиента к работе:
	1. Показывает адрес сервера и каталог конфигурации
	2. Проверяет соединение с сервером и базой данных
	3. Сообщает, выполнен ли вход`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		w := common.Output(cmd).Info()

		fmt.Fprintln(w, "=== Проверка GoldKeeper ===")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Сервер:  %s\n", app.ServerURL())
		fmt.Fprintf(w, "Сессия:  %s\n", app.SessionPath())
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Проверка соединения с сервером...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		if err := app.API().HealthCheck(ctx); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}
		fmt.Fprintln(w, "✓ Соединение с сервером установлено")

		if u, ok := app.CurrentUser(); ok {
			fmt.Fprintf(w, "✓ Вход выполнен: %s\n", u.Username)
			return nil
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Что дальше:")
		fmt.Fprintln(w, "1. Войдите в систему: goldkeeper auth login")
		fmt.Fprintln(w, "2. Посмотрите пользователей: goldkeeper users list")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Авторизация
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)
	auth.AuthCmd.AddCommand(auth.ChangePasswordCmd)

	// Пользователи
	rootCmd.AddCommand(users.UsersCmd)
	users.UsersCmd.AddCommand(users.ListCmd)
	users.UsersCmd.AddCommand(users.CreateCmd)
	users.UsersCmd.AddCommand(users.EditCmd)
	users.UsersCmd.AddCommand(users.PasswdCmd)
	users.UsersCmd.AddCommand(users.DeleteCmd)

	// Типы работ
	rootCmd.AddCommand(worktypes.WorkTypesCmd)
	worktypes.WorkTypesCmd.AddCommand(worktypes.ListCmd)
	worktypes.WorkTypesCmd.AddCommand(worktypes.CreateCmd)
	worktypes.WorkTypesCmd.AddCommand(worktypes.EditCmd)
	worktypes.WorkTypesCmd.AddCommand(worktypes.DeleteCmd)

	// Настройки магазина
	rootCmd.AddCommand(settings.SettingsCmd)
	settings.SettingsCmd.AddCommand(settings.ShowCmd)
	settings.SettingsCmd.AddCommand(settings.SetCmd)

	// Резервные копии
	rootCmd.AddCommand(backups.BackupsCmd)
	backups.BackupsCmd.AddCommand(backups.ListCmd)
	backups.BackupsCmd.AddCommand(backups.CreateCmd)
	backups.BackupsCmd.AddCommand(backups.RestoreCmd)
	backups.BackupsCmd.AddCommand(backups.DeleteCmd)
	backups.BackupsCmd.AddCommand(backups.HistoryCmd)
}
