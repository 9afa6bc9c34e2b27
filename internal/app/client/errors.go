package client

import (
	"errors"
	"fmt"
)

// Ошибки сессии. ErrSessionExpired возвращается при ответе 401/422 —
// к этому моменту принудительный выход уже выполнен, повторять запрос нельзя.
var (
	ErrSessionExpired = errors.New("сессия недействительна, требуется повторный вход")
	ErrNoSession      = errors.New("нет активной сессии. Выполните вход: pubdeck auth login")
)

// ValidationError — локальная ошибка валидации ввода. Запрос в сеть
// при такой ошибке не отправляется.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ServerError — ответ сервера с кодом, отличным от 2xx (кроме 401/422).
// Msg содержит сообщение сервера, если оно было в ответе.
type ServerError struct {
	Path   string
	Status int
	Msg    string
}

func (e *ServerError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("ошибка запроса к %s: статус %d", e.Path, e.Status)
}

// TransportError — сетевая ошибка, сервер недоступен или соединение оборвано.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("сервер недоступен (%s): %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ChannelError — сбой push-канала. Не фатален: транспорт сам
// переподключается, ошибка попадает только в консоль логов.
type ChannelError struct {
	Err error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("ошибка push-канала: %v", e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
