package users

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить пользователя",
	Long:  `Удаление учетной записи. Доступно только администратору, удалить себя нельзя.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, target, err := loadUser(cmd, args[0])
		if err != nil {
			return err
		}
		if err := p.RequestDelete(target); err != nil {
			return common.Result(err)
		}

		w := common.Output(cmd).Info()
		if !deleteYes {
			ok, err := common.Confirm(w, fmt.Sprintf("Удалить пользователя %s (%s)?", target.Username, target.FullName))
			if err != nil {
				p.Cancel()
				return err
			}
			if !ok {
				p.Cancel()
				fmt.Fprintln(w, "Отменено")
				return nil
			}
		}

		return common.Result(p.ConfirmDelete(cmd.Context()))
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
