package worktypes

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить тип работ",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, target, err := loadWorkType(cmd, args[0])
		if err != nil {
			return err
		}
		p.RequestDelete(target)

		w := common.Output(cmd).Info()
		if !deleteYes {
			ok, err := common.Confirm(w, fmt.Sprintf("Удалить тип работ %q?", target.Name))
			if err != nil || !ok {
				p.Cancel()
				if err == nil {
					fmt.Fprintln(w, "Отменено")
				}
				return err
			}
		}

		return common.Result(p.ConfirmDelete(cmd.Context()))
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
