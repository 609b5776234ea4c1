package wizard

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/m04kA/barber-booking/internal/domain"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// Details контактные данные клиента (второй шаг)
type Details struct {
	Name               string
	PeopleCount        int
	NotificationMethod domain.NotificationMethod
	ContactInfo        string
}

// DefaultDetails значения формы по умолчанию
func DefaultDetails() Details {
	return Details{
		PeopleCount:        domain.DefaultPeopleCount,
		NotificationMethod: domain.NotifyWhatsApp,
	}
}

// IsComplete заполнены имя и контакт
func (d Details) IsComplete() bool {
	return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.ContactInfo) != ""
}

// Validate проверяет полноту и формат контактных данных.
// Для Email ожидается адрес почты, для WhatsApp/SMS - номер телефона
func (d Details) Validate() error {
	if !d.IsComplete() {
		return ErrDetailsIncomplete
	}

	if len(d.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidDetails, domain.MaxNameLength)
	}

	if d.PeopleCount < domain.MinPeopleCount || d.PeopleCount > domain.MaxPeopleCount {
		return fmt.Errorf("%w: people count must be between %d and %d",
			ErrInvalidDetails, domain.MinPeopleCount, domain.MaxPeopleCount)
	}

	if !d.NotificationMethod.IsValid() {
		return fmt.Errorf("%w: unknown notification method %q", ErrInvalidDetails, d.NotificationMethod)
	}

	contact := strings.TrimSpace(d.ContactInfo)
	if len(contact) > domain.MaxContactInfoLength {
		return fmt.Errorf("%w: contact info is too long", ErrInvalidDetails)
	}

	if d.NotificationMethod == domain.NotifyEmail {
		if _, err := mail.ParseAddress(contact); err != nil {
			return fmt.Errorf("%w: invalid email address", ErrInvalidDetails)
		}
		return nil
	}

	if !isPhone(contact) {
		return fmt.Errorf("%w: invalid phone number", ErrInvalidDetails)
	}
	return nil
}

// isPhone допускает цифры, пробелы, дефисы, скобки и ведущий плюс
func isPhone(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}
