package backups

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать резервную копию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := common.OpenPage(cmd)
		if err != nil {
			return err
		}
		if page.Backups == nil {
			return errAdminOnly
		}

		b, err := page.Backups.Create(cmd.Context())
		if err != nil {
			return common.Result(err)
		}

		out := common.Output(cmd)
		if out.JSON {
			return common.PrintJSON(out.Out, b)
		}
		fmt.Fprintf(out.Out, "Файл:    %s\n", b.Filename)
		fmt.Fprintf(out.Out, "Размер:  %s\n", panel.FormatSize(b.SizeBytes))
		return nil
	},
}
