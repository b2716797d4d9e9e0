package users

import (
	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
)

var PasswdCmd = &cobra.Command{
	Use:   "passwd <id>",
	Short: "Сбросить пароль пользователя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, target, err := loadUser(cmd, args[0])
		if err != nil {
			return err
		}
		if err := p.OpenPasswordReset(target); err != nil {
			return common.Result(err)
		}
		defer p.Cancel()

		password, err := common.AskNewPassword(common.Output(cmd).Info())
		if err != nil {
			return err
		}
		return common.Result(p.SubmitPassword(cmd.Context(), password))
	},
}
