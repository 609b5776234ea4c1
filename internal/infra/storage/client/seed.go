package client

import (
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/ptr"
)

// Seed демонстрационный список клиентов
func Seed() []domain.Client {
	visit := func(m time.Month, d int) *time.Time {
		return ptr.Ptr(time.Date(2024, m, d, 0, 0, 0, 0, time.UTC))
	}

	return []domain.Client{
		{ID: 1, Name: "David Cohen", Phone: "050-1234567", Email: ptr.Ptr("david@example.com"),
			LastVisit: visit(time.March, 10), TotalVisits: 15, FavoriteService: ptr.Ptr("Men's haircut")},
		{ID: 2, Name: "Yael Levi", Phone: "052-7654321", Email: ptr.Ptr("yael@example.com"),
			LastVisit: visit(time.March, 8), TotalVisits: 8, FavoriteService: ptr.Ptr("Hair coloring")},
		{ID: 3, Name: "Moshe Golan", Phone: "054-9876543", Email: ptr.Ptr("moshe@example.com"),
			LastVisit: visit(time.March, 12), TotalVisits: 20, FavoriteService: ptr.Ptr("Haircut + beard")},
		{ID: 4, Name: "Ronit Avraham", Phone: "053-1472583", Email: ptr.Ptr("ronit@example.com"),
			LastVisit: visit(time.February, 28), TotalVisits: 5, FavoriteService: ptr.Ptr("Women's haircut")},
		{ID: 5, Name: "Avi Cohen", Phone: "058-3692581", Email: ptr.Ptr("avi@example.com"),
			LastVisit: visit(time.March, 5), TotalVisits: 12, FavoriteService: ptr.Ptr("Men's haircut")},
		{ID: 6, Name: "Michal David", Phone: "050-9517538", Email: ptr.Ptr("michal@example.com"),
			LastVisit: visit(time.March, 1), TotalVisits: 7, FavoriteService: ptr.Ptr("Hair coloring")},
		{ID: 7, Name: "Yossi Levi", Phone: "052-8529637", Email: ptr.Ptr("yossi@example.com"),
			LastVisit: visit(time.February, 20), TotalVisits: 3, FavoriteService: ptr.Ptr("Men's haircut")},
		{ID: 8, Name: "Sara Cohen", Phone: "054-7539514", Email: ptr.Ptr("sara@example.com"),
			LastVisit: visit(time.March, 11), TotalVisits: 10, FavoriteService: ptr.Ptr("Women's haircut")},
	}
}
