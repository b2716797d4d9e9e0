package backups

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
	"goldkeeper/internal/domain/backup"
)

var errAdminOnly = errors.New("резервные копии доступны только администратору")

// BackupsCmd - резервные копии базы данных
var BackupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "Резервные копии базы",
	Long: `Создание, восстановление и удаление резервных копий базы данных.

Восстановление заменяет все текущие данные содержимым копии и требует
двойного подтверждения.`,
}

// openBackups возвращает панель резервных копий с загруженным списком
func openBackups(cmd *cobra.Command) (*panel.Page, error) {
	page, err := common.OpenPage(cmd)
	if err != nil {
		return nil, err
	}
	if page.Backups == nil {
		return nil, errAdminOnly
	}
	if err := page.Backups.Load(cmd.Context()); err != nil {
		return nil, common.Result(err)
	}
	if page.Backups.Denied() {
		return nil, errAdminOnly
	}
	return page, nil
}

func findBackup(p *panel.BackupPanel, filename string) (backup.Backup, error) {
	for _, b := range p.Backups() {
		if b.Filename == filename {
			return b, nil
		}
	}
	return backup.Backup{}, fmt.Errorf("резервная копия %q не найдена", filename)
}
