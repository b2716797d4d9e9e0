package worktypes

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список типов работ",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := common.OpenPage(cmd)
		if err != nil {
			return err
		}
		if err := page.WorkTypes.Load(cmd.Context()); err != nil {
			return common.Result(err)
		}

		items := page.WorkTypes.WorkTypes()
		out := common.Output(cmd)
		if out.JSON {
			return common.PrintJSON(out.Out, items)
		}
		if len(items) == 0 {
			fmt.Fprintln(out.Out, "Типы работ не найдены")
			return nil
		}

		w := common.NewTable(out.Out)
		fmt.Fprintf(w, "ID\tНазвание\tОписание\tСтатус\tСоздан\t\n")
		fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")
		for _, wt := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
				wt.ID,
				wt.Name,
				truncate(wt.Description, 40),
				panel.ActiveLabel(wt.IsActive),
				panel.FormatTime(wt.CreatedAt),
			)
		}
		w.Flush()
		fmt.Fprintf(out.Out, "\nВсего типов работ: %d\n", len(items))
		return nil
	},
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
