// Package types содержит ключи контекста, общие для команд клиента
package types

import "io"

type contextKey string

const (
	ClientAppKey contextKey = "app"
	LoggerKey    contextKey = "logger"
	OutputKey    contextKey = "output"
)

// Output описывает, куда команда печатает результат.
// В режиме JSON stdout содержит только данные, уведомления и вопросы уходят в stderr.
type Output struct {
	JSON bool
	Out  io.Writer
	Err  io.Writer
}

// Info возвращает поток для уведомлений и вопросов пользователю
func (o Output) Info() io.Writer {
	if o.JSON {
		return o.Err
	}
	return o.Out
}
