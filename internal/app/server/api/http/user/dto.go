package user

import "goldkeeper/internal/domain/user"

type loginInput struct {
	Body user.LoginRequest
}

type loginOutput struct {
	Body user.LoginResponse
}

type userOutput struct {
	Body user.User
}

type registerInput struct {
	Body user.CreateRequest
}

type listOutput struct {
	Body []user.User
}

type idInput struct {
	ID int `path:"id" example:"1" doc:"ID пользователя"`
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID пользователя"`
	Body user.UpdateRequest
}

type changePasswordInput struct {
	ID   int `path:"id" example:"1" doc:"ID пользователя"`
	Body user.ChangePasswordRequest
}

type messageOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}
