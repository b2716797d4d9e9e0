package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для операций с сессией пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Вход и выход",
	Long:  `Вход в систему, выход, просмотр текущего пользователя и смена своего пароля.`,
}
