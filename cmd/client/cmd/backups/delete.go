package backups

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <файл>",
	Short: "Удалить резервную копию",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := openBackups(cmd)
		if err != nil {
			return err
		}
		p := page.Backups

		target, err := findBackup(p, args[0])
		if err != nil {
			return err
		}
		p.RequestDelete(target)

		w := common.Output(cmd).Info()
		if !deleteYes {
			ok, err := common.Confirm(w, fmt.Sprintf("Удалить резервную копию %s?", target.Filename))
			if err != nil || !ok {
				p.CancelDelete()
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
