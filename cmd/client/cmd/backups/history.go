package backups

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
)

var historyLimit int

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Журнал операций с резервными копиями",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := common.OpenPage(cmd)
		if err != nil {
			return err
		}
		if page.Backups == nil {
			return errAdminOnly
		}

		events, err := page.Backups.History(cmd.Context(), historyLimit)
		if err != nil {
			return common.Result(err)
		}

		out := common.Output(cmd)
		if out.JSON {
			return common.PrintJSON(out.Out, events)
		}
		if len(events) == 0 {
			fmt.Fprintln(out.Out, "Журнал пуст")
			return nil
		}

		w := common.NewTable(out.Out)
		fmt.Fprintf(w, "Время\tОперация\tФайл\tКто\tРезультат\t\n")
		fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")
		for _, e := range events {
			result := "✓"
			if !e.Success {
				result = "✗ " + e.Detail
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
				panel.FormatTime(e.CreatedAt),
				e.Action,
				e.Filename,
				e.Actor,
				result,
			)
		}
		w.Flush()
		return nil
	},
}

func init() {
	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "количество записей")
}
