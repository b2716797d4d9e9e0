package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Завершает сессию на сервере и удаляет сохраненный токен.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			if errors.Is(err, client.ErrNotAuthenticated) {
				fmt.Fprintln(common.Output(cmd).Info(), "Вход не выполнен")
				return nil
			}
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		fmt.Fprintln(common.Output(cmd).Info(), "✅ Сессия завершена")
		return nil
	},
}
