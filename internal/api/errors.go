package api

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationRequired  = errors.New("authentication required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// HTTPError is any non-2xx answer other than 401 and 403.
type HTTPError struct {
	Status     int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.StatusText)
}

// TransportError means no response was received (network failure,
// timeout, cancelled context).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FormatError means a 2xx response whose body has an unexpected shape.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected response format from %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Message turns an error into the text shown to the user.
func Message(err error) string {
	var httpErr *HTTPError
	var transportErr *TransportError
	var formatErr *FormatError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthenticationRequired):
		return "Требуется авторизация"
	case errors.Is(err, ErrInsufficientPermissions):
		return "Недостаточно прав"
	case errors.As(err, &httpErr):
		return httpErr.Error()
	case errors.As(err, &transportErr):
		return "Сервер недоступен, попробуйте ещё раз"
	case errors.As(err, &formatErr):
		return "Неожиданный ответ сервера"
	default:
		return err.Error()
	}
}
