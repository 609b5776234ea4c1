package domain

import "time"

// Client represents a customer of the barbershop
type Client struct {
	ID              int64
	Name            string
	Phone           string
	Email           *string
	LastVisit       *time.Time
	TotalVisits     int
	FavoriteService *string
}
