package appointment

import (
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
)

// Seed демонстрационные заявки для панели администратора
func Seed() []domain.Appointment {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	return []domain.Appointment{
		{ID: 1, Name: "David Cohen", Date: day(15), Time: "10:00", PeopleCount: 1, ContactInfo: "050-1234567",
			NotificationMethod: domain.NotifyWhatsApp, Service: "Men's haircut", Status: domain.StatusApproved},
		{ID: 2, Name: "Yael Levi", Date: day(15), Time: "11:00", PeopleCount: 1, ContactInfo: "052-7654321",
			NotificationMethod: domain.NotifySMS, Service: "Hair coloring", Status: domain.StatusPending},
		{ID: 3, Name: "Moshe Golan", Date: day(15), Time: "12:00", PeopleCount: 1, ContactInfo: "054-9876543",
			NotificationMethod: domain.NotifyWhatsApp, Service: "Haircut + beard", Status: domain.StatusApproved},
		{ID: 4, Name: "Ronit Avraham", Date: day(16), Time: "09:30", PeopleCount: 2, ContactInfo: "053-1472583",
			NotificationMethod: domain.NotifyWhatsApp, Service: "Women's haircut", Status: domain.StatusPending},
		{ID: 5, Name: "Avi Cohen", Date: day(16), Time: "10:30", PeopleCount: 1, ContactInfo: "058-3692581",
			NotificationMethod: domain.NotifySMS, Service: "Men's haircut", Status: domain.StatusApproved},
		{ID: 6, Name: "Michal David", Date: day(17), Time: "13:00", PeopleCount: 1, ContactInfo: "michal@example.com",
			NotificationMethod: domain.NotifyEmail, Service: "Hair coloring", Status: domain.StatusApproved},
		{ID: 7, Name: "Yossi Levi", Date: day(17), Time: "14:00", PeopleCount: 3, ContactInfo: "052-8529637",
			NotificationMethod: domain.NotifyWhatsApp, Service: "Men's haircut", Status: domain.StatusPending},
		{ID: 8, Name: "Sara Cohen", Date: day(18), Time: "11:30", PeopleCount: 1, ContactInfo: "054-7539514",
			NotificationMethod: domain.NotifyWhatsApp, Service: "Women's haircut", Status: domain.StatusApproved},
	}
}
