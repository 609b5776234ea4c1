// Package session хранит состояние мастера бронирования и сессию администратора
// в зашифрованных cookie (gorilla/securecookie)
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/m04kA/barber-booking/internal/wizard"
)

const (
	WizardCookieName = "barber_wizard"
	AdminCookieName  = "barber_admin"
)

var (
	// ErrNoSession cookie отсутствует или не прошла проверку подписи
	ErrNoSession = errors.New("session: no valid session")

	// ErrEncode не удалось сериализовать значение cookie
	ErrEncode = errors.New("session: failed to encode cookie")
)

// Options параметры cookie
type Options struct {
	Secure bool
	MaxAge int // секунды
}

// Manager кодирует и декодирует cookie сессий
type Manager struct {
	sc      *securecookie.SecureCookie
	options Options
	now     func() time.Time
}

// adminSession содержимое cookie администратора
type adminSession struct {
	Admin    bool
	IssuedAt int64
}

func NewManager(hashKey, blockKey []byte, options Options) *Manager {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(options.MaxAge)
	sc.SetSerializer(securecookie.JSONEncoder{})
	return &Manager{sc: sc, options: options, now: time.Now}
}

// LoadWizard возвращает сохранённый мастер или новый, если cookie нет или она повреждена
func (m *Manager) LoadWizard(r *http.Request) *wizard.Flow {
	c, err := r.Cookie(WizardCookieName)
	if err != nil {
		return wizard.New()
	}
	var flow wizard.Flow
	if err := m.sc.Decode(WizardCookieName, c.Value, &flow); err != nil || !flow.Step.IsValid() {
		return wizard.New()
	}
	return &flow
}

// SaveWizard сохраняет состояние мастера
func (m *Manager) SaveWizard(w http.ResponseWriter, flow *wizard.Flow) error {
	return m.set(w, WizardCookieName, flow)
}

// StartAdmin открывает сессию администратора
func (m *Manager) StartAdmin(w http.ResponseWriter) error {
	return m.set(w, AdminCookieName, adminSession{Admin: true, IssuedAt: m.now().Unix()})
}

// IsAdmin проверяет cookie администратора
func (m *Manager) IsAdmin(r *http.Request) bool {
	c, err := r.Cookie(AdminCookieName)
	if err != nil {
		return false
	}
	var s adminSession
	if err := m.sc.Decode(AdminCookieName, c.Value, &s); err != nil {
		return false
	}
	return s.Admin
}

// EndAdmin удаляет cookie администратора
func (m *Manager) EndAdmin(w http.ResponseWriter) {
	m.clear(w, AdminCookieName)
}

func (m *Manager) set(w http.ResponseWriter, name string, value interface{}) error {
	encoded, err := m.sc.Encode(name, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, name, err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.options.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   m.options.MaxAge,
	})
	return nil
}

func (m *Manager) clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.options.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
