package backups

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список резервных копий",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := openBackups(cmd)
		if err != nil {
			return err
		}

		items := page.Backups.Backups()
		out := common.Output(cmd)
		if out.JSON {
			return common.PrintJSON(out.Out, items)
		}
		if len(items) == 0 {
			fmt.Fprintln(out.Out, "Резервных копий нет")
			return nil
		}

		w := common.NewTable(out.Out)
		fmt.Fprintf(w, "Файл\tСоздана\tРазмер\tВозраст\t\n")
		fmt.Fprintf(w, "---\t---\t---\t---\t\n")
		for _, b := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
				b.Filename,
				panel.FormatTime(b.CreatedAt),
				panel.FormatSize(b.SizeBytes),
				panel.FormatAge(b.AgeDays),
			)
		}
		w.Flush()
		fmt.Fprintf(out.Out, "\nВсего копий: %d\n", len(items))
		return nil
	},
}
