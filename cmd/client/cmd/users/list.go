package users

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список пользователей",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := common.OpenPage(cmd)
		if err != nil {
			return err
		}
		if err := page.Users.Load(cmd.Context()); err != nil {
			return common.Result(err)
		}

		items := page.Users.Users()
		out := common.Output(cmd)
		if out.JSON {
			return common.PrintJSON(out.Out, items)
		}
		if len(items) == 0 {
			fmt.Fprintln(out.Out, "Пользователи не найдены")
			return nil
		}

		w := common.NewTable(out.Out)
		fmt.Fprintf(w, "ID\tЛогин\tФИО\tEmail\tРоль\tСтатус\tСоздан\t\n")
		fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t\n")
		for _, u := range items {
			login := u.Username
			if u.ID == page.Actor.ID {
				login += " (вы)"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
				u.ID,
				login,
				u.FullName,
				u.Email,
				panel.RoleLabel(u.Role),
				panel.ActiveLabel(u.IsActive),
				panel.FormatTime(u.CreatedAt),
			)
		}
		w.Flush()
		fmt.Fprintf(out.Out, "\nВсего пользователей: %d\n", len(items))
		return nil
	},
}
