package search_clients

import (
	"context"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/service/clients/models"
)

type ClientsService interface {
	Search(ctx context.Context, term string) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/clients
// Query params: q (поиск по имени, телефону, email, любимой услуге)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), term)
	if err != nil {
		h.logger.Error("GET /admin/clients - Failed to search clients: q=%q, error=%v", term, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
