package backups

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
)

var RestoreCmd = &cobra.Command{
	Use:   "restore <файл>",
	Short: "Восстановить базу из резервной копии",
	Long: `Восстановление заменяет ВСЕ текущие данные содержимым копии.

Требуется двойное подтверждение: сначала ответ "да" на предупреждение,
затем точное имя файла копии.`,
	Args: cobra.ExactArgs(1),
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

		w := common.Output(cmd).Info()
		p.RequestRestore(target)

		fmt.Fprintln(w, color.RedString("⚠️  ВНИМАНИЕ: восстановление базы данных"))
		for _, line := range p.Consequences() {
			fmt.Fprintf(w, "  - %s\n", line)
		}
		fmt.Fprintln(w)

		ok, err := common.Confirm(w, "Продолжить?")
		if err != nil || !ok {
			p.CancelRestore()
			if err == nil {
				fmt.Fprintln(w, "Отменено")
			}
			return err
		}

		typed, err := common.Ask(w, fmt.Sprintf("Введите имя файла %s для подтверждения", target.Filename))
		if err != nil {
			p.CancelRestore()
			return err
		}

		return common.Result(p.ConfirmRestore(cmd.Context(), typed))
	},
}
