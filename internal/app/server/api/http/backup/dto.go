package backup

import "goldkeeper/internal/domain/backup"

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Backups []backup.Backup `json:"backups"`
}

type createOutput struct {
	Body CreateResponse
}

type CreateResponse struct {
	Message string        `json:"message"`
	Backup  backup.Backup `json:"backup"`
}

type restoreInput struct {
	BackupFile   string `query:"backup_file" required:"true" example:"backup_20240102_030405.tar.gz" doc:"Имя архива"`
	DropExisting bool   `query:"drop_existing" default:"false" doc:"Удалить текущие объекты базы перед восстановлением"`
}

type deleteInput struct {
	Filename string `path:"filename" example:"backup_20240102_030405.tar.gz"`
}

type historyInput struct {
	Limit int `query:"limit" default:"50" minimum:"1" maximum:"500"`
}

type historyOutput struct {
	Body HistoryResponse
}

type HistoryResponse struct {
	Events []backup.Event `json:"events"`
}

type messageOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}
