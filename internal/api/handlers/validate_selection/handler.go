package validate_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	validateSelection "github.com/m04kA/barber-booking/internal/usecase/validate_selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate           = "нельзя выбрать прошедшую дату"
)

type Handler struct {
	useCase ValidateSelectionUseCase
	logger  Logger
}

func NewHandler(useCase ValidateSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/validate
// Возвращает 200 для допустимого (или неполного) выбора и 422 с причиной для недопустимого
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/validate - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)

	verdict, isVerdict := handlers.NewVerdict(err)
	if !isVerdict {
		switch {
		case errors.Is(err, validateSelection.ErrInvalidDate):
			h.logger.Warn("POST /availability/validate - Past date: %s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		default:
			h.logger.Error("POST /availability/validate - Failed to validate: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(verdict, result, !useCaseReq.Date.IsZero())

	if !verdict.Valid {
		h.logger.Info("POST /availability/validate - Selection rejected: date=%s, time=%s, code=%s",
			req.Date, req.Time, verdict.Code)
		handlers.RespondUnprocessable(w, response)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
