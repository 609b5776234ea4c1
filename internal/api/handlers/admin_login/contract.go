package admin_login

import "net/http"

// PasswordChecker проверка пароля администратора (реализуется *password.Checker)
type PasswordChecker interface {
	Check(plain string) error
}

// AdminSessions открытие сессии администратора (реализуется *session.Manager)
type AdminSessions interface {
	StartAdmin(w http.ResponseWriter) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
