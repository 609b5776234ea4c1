package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда заявка не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrInvalidAppointment возвращается при попытке сохранить заявку без обязательных полей
	ErrInvalidAppointment = errors.New("appointment.repository: invalid appointment")

	// ErrStatusConflict возвращается, если статус заявки изменился раньше
	ErrStatusConflict = errors.New("appointment.repository: status conflict")
)
