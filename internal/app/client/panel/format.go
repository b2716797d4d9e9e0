package panel

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"goldkeeper/internal/domain/user"
)

// FormatSize - размер файла в читаемом виде (1.2 MB)
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}

// FormatAge - возраст копии в днях
func FormatAge(days int) string {
	switch {
	case days <= 0:
		return "сегодня"
	case days == 1:
		return "вчера"
	default:
		return fmt.Sprintf("%d дн. назад", days)
	}
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02.01.2006 15:04")
}

// FormatRelative - время относительно текущего момента (3 hours ago)
func FormatRelative(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func FormatFactor(f float64) string {
	return fmt.Sprintf("%.3f", f)
}

func RoleLabel(r user.Role) string {
	switch r {
	case user.RoleAdmin:
		return "Администратор"
	case user.RoleManager:
		return "Менеджер"
	case user.RoleStaff:
		return "Сотрудник"
	default:
		return string(r)
	}
}

// ActiveLabel - подпись статуса учетной записи или типа работ
func ActiveLabel(active bool) string {
	if active {
		return "активен"
	}
	return "отключен"
}
