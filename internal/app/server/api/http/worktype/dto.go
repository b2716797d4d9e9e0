package worktype

import "goldkeeper/internal/domain/worktype"

type listOutput struct {
	Body []worktype.WorkType
}

type createInput struct {
	Body worktype.CreateRequest
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID типа работ"`
	Body worktype.UpdateRequest
}

type deleteInput struct {
	ID int `path:"id" example:"1" doc:"ID типа работ"`
}

type output struct {
	Body worktype.WorkType
}
