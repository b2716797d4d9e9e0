package users

import (
	"strings"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/domain/user"
)

var (
	editFullName string
	editEmail    string
	editRole     string
	editActive   bool
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить пользователя",
	Long: `Изменение ФИО, email, роли и статуса учетной записи.
Меняются только поля, переданные флагами. Пароль меняется командой passwd.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, target, err := loadUser(cmd, args[0])
		if err != nil {
			return err
		}
		if err := p.OpenEdit(target); err != nil {
			return common.Result(err)
		}
		defer p.Cancel()

		form := p.Form()
		flags := cmd.Flags()
		if flags.Changed("full-name") {
			form.FullName = editFullName
		}
		if flags.Changed("email") {
			form.Email = editEmail
		}
		if flags.Changed("role") {
			form.Role = user.Role(strings.ToLower(editRole))
		}
		if flags.Changed("active") {
			form.IsActive = editActive
		}

		if err := p.SetForm(form); err != nil {
			return common.Result(err)
		}
		return common.Result(p.Submit(cmd.Context()))
	},
}

func init() {
	EditCmd.Flags().StringVar(&editFullName, "full-name", "", "новое ФИО")
	EditCmd.Flags().StringVar(&editEmail, "email", "", "новый email")
	EditCmd.Flags().StringVarP(&editRole, "role", "r", "", "новая роль (staff, manager, admin)")
	EditCmd.Flags().BoolVar(&editActive, "active", true, "активна ли учетная запись (--active=false отключает)")
}
