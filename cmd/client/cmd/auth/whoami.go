package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client"
	"goldkeeper/internal/app/client/panel"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := common.App(cmd)
		if err != nil {
			return err
		}

		u, err := app.Refresh(cmd.Context())
		if errors.Is(err, client.ErrNotAuthenticated) {
			return common.ErrNotLoggedIn
		}
		if err != nil {
			return fmt.Errorf("ошибка получения пользователя: %w", err)
		}

		out := common.Output(cmd)
		if out.JSON {
			return common.PrintJSON(out.Out, u)
		}

		fmt.Fprintf(out.Out, "Логин:   %s\n", u.Username)
		fmt.Fprintf(out.Out, "ФИО:     %s\n", u.FullName)
		fmt.Fprintf(out.Out, "Email:   %s\n", u.Email)
		fmt.Fprintf(out.Out, "Роль:    %s\n", panel.RoleLabel(u.Role))
		fmt.Fprintf(out.Out, "Сервер:  %s\n", app.ServerURL())
		return nil
	},
}
