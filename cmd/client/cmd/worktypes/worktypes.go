package worktypes

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
	"goldkeeper/internal/domain/worktype"
)

// WorkTypesCmd - справочник типов работ мастерской
var WorkTypesCmd = &cobra.Command{
	Use:     "work-types",
	Aliases: []string{"wt"},
	Short:   "Справочник типов работ",
	Long:    `Просмотр и ведение справочника типов работ (ремонт, пайка, гравировка и т.д.).`,
}

func loadWorkType(cmd *cobra.Command, arg string) (*panel.WorkTypePanel, worktype.WorkType, error) {
	id, err := common.ParseID(arg)
	if err != nil {
		return nil, worktype.WorkType{}, err
	}

	page, err := common.OpenPage(cmd)
	if err != nil {
		return nil, worktype.WorkType{}, err
	}
	if err := page.WorkTypes.Load(cmd.Context()); err != nil {
		return nil, worktype.WorkType{}, common.Result(err)
	}

	for _, wt := range page.WorkTypes.WorkTypes() {
		if wt.ID == id {
			return page.WorkTypes, wt, nil
		}
	}
	return nil, worktype.WorkType{}, fmt.Errorf("тип работ с ID %d не найден", id)
}
