package models

import "github.com/m04kA/barber-booking/internal/domain"

// ClientResponse карточка клиента
type ClientResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	LastVisit       *string `json:"lastVisit,omitempty"` // YYYY-MM-DD
	TotalVisits     int     `json:"totalVisits"`
	FavoriteService *string `json:"favoriteService,omitempty"`
}

// ClientListResponse результат поиска клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c domain.Client) ClientResponse {
	resp := ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		TotalVisits:     c.TotalVisits,
		FavoriteService: c.FavoriteService,
	}
	if c.LastVisit != nil {
		lastVisit := c.LastVisit.Format(domain.DateFormat)
		resp.LastVisit = &lastVisit
	}
	return resp
}

// FromDomainClients конвертирует список клиентов
func FromDomainClients(list []domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(list)),
		Total:   len(list),
	}
	for _, c := range list {
		resp.Clients = append(resp.Clients, FromDomainClient(c))
	}
	return resp
}
