package user

import "time"

// Role - роль пользователя в магазине
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Roles перечисляет роли в порядке возрастания привилегий
var Roles = []Role{RoleStaff, RoleManager, RoleAdmin}

func (r Role) rank() int {
	switch r {
	case RoleStaff:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// Valid проверяет, что роль входит в известный набор
func (r Role) Valid() bool {
	return r.rank() > 0
}

// AtLeast сообщает, обладает ли роль привилегиями не ниже min
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.rank() >= min.rank()
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	Password  string    `json:"-"` // хэш
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanManageUsers - может ли пользователь создавать и редактировать учетные записи
func (u User) CanManageUsers() bool {
	return u.IsActive && u.Role.AtLeast(RoleManager)
}

// IsAdmin сообщает, является ли пользователь администратором
func (u User) IsAdmin() bool {
	return u.IsActive && u.Role == RoleAdmin
}

// AssignableRoles возвращает роли, которые пользователь может выдавать другим.
// Роль admin выдает только администратор.
func (u User) AssignableRoles() []Role {
	if u.IsAdmin() {
		return Roles
	}
	if u.CanManageUsers() {
		return []Role{RoleStaff, RoleManager}
	}
	return nil
}
