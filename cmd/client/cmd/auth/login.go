// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
)

var username string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему GoldKeeper",
	Long: `Аутентификация на сервере GoldKeeper.

После входа токен сохраняется локально для последующих команд.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}
		out := common.Output(cmd)
		w := out.Info()

		fmt.Fprintln(w, "=== Вход в систему ===")
		fmt.Fprintln(w)

		login := username
		if login == "" {
			if login, err = common.Ask(w, "Логин"); err != nil {
				return err
			}
		}
		password, err := common.AskPassword(w, "Пароль")
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "Аутентификация...")
		u, err := app.Login(cmd.Context(), login, password)
		if err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		if out.JSON {
			return common.PrintJSON(out.Out, u)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "✅ Добро пожаловать, %s (%s)\n", u.FullName, panel.RoleLabel(u.Role))
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&username, "username", "u", "", "логин пользователя")
}
