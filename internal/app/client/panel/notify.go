package panel

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"goldkeeper/internal/app/client"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast - короткое уведомление пользователю
type Toast struct {
	Level   Level
	Title   string
	Message string
}

type Notifier interface {
	Notify(t Toast)
}

// ConsoleNotifier печатает уведомления в терминал с цветом уровня
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(t Toast) {
	var mark string
	switch t.Level {
	case LevelSuccess:
		mark = color.GreenString("✅")
	case LevelWarning:
		mark = color.YellowString("⚠️ ")
	case LevelError:
		mark = color.RedString("❌")
	default:
		mark = color.CyanString("ℹ️ ")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if t.Message == "" {
		fmt.Fprintf(n.out, "%s %s\n", mark, color.New(color.Bold).Sprint(t.Title))
		return
	}
	fmt.Fprintf(n.out, "%s %s: %s\n", mark, color.New(color.Bold).Sprint(t.Title), t.Message)
}

// Recorder запоминает уведомления. Используется в тестах и в режиме --json.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Recorder) Notify(t Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

// Last возвращает последнее уведомление
func (r *Recorder) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = nil
}

// errorDetail возвращает текст для пользователя: detail сервера без изменений,
// иначе текст ошибки
func errorDetail(err error) string {
	if apiErr, ok := client.AsAPIError(err); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}

type notifier struct {
	Notifier
}

func (n notifier) info(title, msg string) {
	n.Notify(Toast{Level: LevelInfo, Title: title, Message: msg})
}

func (n notifier) success(title, msg string) {
	n.Notify(Toast{Level: LevelSuccess, Title: title, Message: msg})
}

func (n notifier) warn(title, msg string) {
	n.Notify(Toast{Level: LevelWarning, Title: title, Message: msg})
}

func (n notifier) fail(title string, err error) {
	n.Notify(Toast{Level: LevelError, Title: title, Message: errorDetail(err)})
}
