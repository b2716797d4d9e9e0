package users

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
	"goldkeeper/internal/domain/user"
)

var (
	createUsername string
	createFullName string
	createEmail    string
	createRole     string
	createInactive bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать пользователя",
	Long: `Создание учетной записи. Незаданные флагами поля запрашиваются интерактивно.

Логин после создания изменить нельзя.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := common.OpenPage(cmd)
		if err != nil {
			return err
		}
		p := page.Users
		if err := p.OpenCreate(); err != nil {
			return common.Result(err)
		}
		defer p.Cancel()

		w := common.Output(cmd).Info()
		form := p.Form()

		if form.Username, err = askIfEmpty(w, createUsername, "Логин"); err != nil {
			return err
		}
		if form.FullName, err = askIfEmpty(w, createFullName, "ФИО"); err != nil {
			return err
		}
		if form.Email, err = askIfEmpty(w, createEmail, "Email"); err != nil {
			return err
		}

		role := createRole
		if role == "" {
			role, err = common.AskDefault(w, "Роль ("+rolesHint(p.RoleOptions())+")", string(user.RoleStaff))
			if err != nil {
				return err
			}
		}
		form.Role = user.Role(strings.ToLower(role))
		form.IsActive = !createInactive

		if form.Password, err = common.AskNewPassword(w); err != nil {
			return err
		}

		if err := p.SetForm(form); err != nil {
			return common.Result(err)
		}
		return common.Result(p.Submit(cmd.Context()))
	},
}

func askIfEmpty(w io.Writer, value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	return common.Ask(w, label)
}

func rolesHint(roles []user.Role) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, fmt.Sprintf("%s - %s", r, panel.RoleLabel(r)))
	}
	return strings.Join(names, ", ")
}

func init() {
	CreateCmd.Flags().StringVarP(&createUsername, "username", "u", "", "логин")
	CreateCmd.Flags().StringVar(&createFullName, "full-name", "", "ФИО")
	CreateCmd.Flags().StringVar(&createEmail, "email", "", "email")
	CreateCmd.Flags().StringVarP(&createRole, "role", "r", "", "роль (staff, manager, admin)")
	CreateCmd.Flags().BoolVar(&createInactive, "inactive", false, "создать отключенную учетную запись")
}
