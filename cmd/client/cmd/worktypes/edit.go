package worktypes

import (
	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
)

var (
	editName        string
	editDescription string
	editActive      bool
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить тип работ",
	Long:  `Меняются только поля, переданные флагами.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, target, err := loadWorkType(cmd, args[0])
		if err != nil {
			return err
		}
		p.OpenEdit(target)
		defer p.Cancel()

		form := p.Form()
		flags := cmd.Flags()
		if flags.Changed("name") {
			form.Name = editName
		}
		if flags.Changed("description") {
			form.Description = editDescription
		}
		if flags.Changed("active") {
			form.IsActive = editActive
		}

		if err := p.SetForm(form); err != nil {
			return common.Result(err)
		}
		return common.Result(p.Submit(cmd.Context()))
	},
}

func init() {
	EditCmd.Flags().StringVarP(&editName, "name", "n", "", "новое название")
	EditCmd.Flags().StringVarP(&editDescription, "description", "d", "", "новое описание")
	EditCmd.Flags().BoolVar(&editActive, "active", true, "активен ли тип работ (--active=false отключает)")
}
