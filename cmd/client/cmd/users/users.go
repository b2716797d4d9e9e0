package users

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldkeeper/cmd/client/cmd/common"
	"goldkeeper/internal/app/client/panel"
	"goldkeeper/internal/domain/user"
)

// UsersCmd - родительская команда управления учетными записями
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Пользователи и роли",
	Long: `Просмотр, создание, изменение и удаление учетных записей.

Создавать и изменять пользователей могут менеджеры и администраторы,
удалять - только администраторы. Роль admin назначает только администратор.`,
}

// loadUser загружает список и находит пользователя по аргументу-ID
func loadUser(cmd *cobra.Command, arg string) (*panel.UserPanel, user.User, error) {
	id, err := common.ParseID(arg)
	if err != nil {
		return nil, user.User{}, err
	}

	page, err := common.OpenPage(cmd)
	if err != nil {
		return nil, user.User{}, err
	}
	if err := page.Users.Load(cmd.Context()); err != nil {
		return nil, user.User{}, common.Result(err)
	}

	for _, u := range page.Users.Users() {
		if u.ID == id {
			return page.Users, u, nil
		}
	}
	return nil, user.User{}, fmt.Errorf("пользователь с ID %d не найден", id)
}
