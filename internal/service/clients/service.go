package clients

import (
	"context"
	"fmt"

	"github.com/m04kA/barber-booking/internal/service/clients/models"
)

// Service сервис справочника клиентов
type Service struct {
	repo   ClientRepository
	logger Logger
}

func NewService(repo ClientRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Search ищет клиентов по имени, телефону, почте или любимой услуге
func (s *Service) Search(ctx context.Context, term string) (*models.ClientListResponse, error) {
	list, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: term=%q found=%d", term, len(list))
	return models.FromDomainClients(list), nil
}
