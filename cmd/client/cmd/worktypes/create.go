package worktypes

import (
	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
)

var (
	createName        string
	createDescription string
	createInactive    bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Добавить тип работ",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := common.OpenPage(cmd)
		if err != nil {
			return err
		}
		p := page.WorkTypes
		p.OpenCreate()
		defer p.Cancel()

		w := common.Output(cmd).Info()
		form := p.Form()
		form.Name = createName
		if form.Name == "" {
			if form.Name, err = common.Ask(w, "Название"); err != nil {
				return err
			}
		}
		form.Description = createDescription
		if !cmd.Flags().Changed("description") {
			if form.Description, err = common.Ask(w, "Описание (необязательно)"); err != nil {
				return err
			}
		}
		form.IsActive = !createInactive

		if err := p.SetForm(form); err != nil {
			return common.Result(err)
		}
		return common.Result(p.Submit(cmd.Context()))
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createName, "name", "n", "", "название")
	CreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "описание")
	CreateCmd.Flags().BoolVar(&createInactive, "inactive", false, "создать неактивным")
}
