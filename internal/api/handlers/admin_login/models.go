package admin_login

// LoginRequest пароль администратора
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse результат входа
type LoginResponse struct {
	Authenticated bool `json:"authenticated"`
}
