package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client"
	"goldkeeper/internal/domain/user"
)

var ChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Сменить свой пароль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		me, err := app.Refresh(cmd.Context())
		if errors.Is(err, client.ErrNotAuthenticated) {
			return common.ErrNotLoggedIn
		}
		if err != nil {
			return fmt.Errorf("ошибка получения пользователя: %w", err)
		}

		w := common.Output(cmd).Info()
		password, err := common.AskNewPassword(w)
		if err != nil {
			return err
		}
		if len(password) < user.MinPasswordLen {
			return fmt.Errorf("пароль должен быть не короче %d символов", user.MinPasswordLen)
		}

		if err := app.API().ChangePassword(cmd.Context(), me.ID, password); err != nil {
			return fmt.Errorf("ошибка смены пароля: %w", err)
		}

		fmt.Fprintln(w, "✅ Пароль изменен")
		return nil
	},
}
