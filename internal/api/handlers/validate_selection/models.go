package validate_selection

import (
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/domain"
	validateSelection "github.com/m04kA/barber-booking/internal/usecase/validate_selection"
	"github.com/m04kA/barber-booking/pkg/types"
)

// ValidateSelectionRequest выбор клиента; пустые поля допустимы
type ValidateSelectionRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ValidateSelectionResponse вердикт и окно выбранного дня
type ValidateSelectionResponse struct {
	handlers.VerdictResponse
	Complete bool   `json:"complete"`
	IsOpen   *bool  `json:"isOpen,omitempty"`
	Label    string `json:"label,omitempty"`
}

// ToUseCaseRequest парсит дату; время передаётся как есть и проверяется движком
func (r *ValidateSelectionRequest) ToUseCaseRequest() (*validateSelection.Request, error) {
	req := &validateSelection.Request{Time: types.TimeString(strings.TrimSpace(r.Time))}

	dateStr := strings.TrimSpace(r.Date)
	if dateStr == "" {
		return req, nil
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = date
	return req, nil
}

// FromUseCaseResponse дополняет вердикт данными об окне дня
func FromUseCaseResponse(verdict *handlers.VerdictResponse, resp *validateSelection.Response, hasDate bool) *ValidateSelectionResponse {
	result := &ValidateSelectionResponse{VerdictResponse: *verdict}
	if resp == nil {
		return result
	}

	result.Complete = resp.Complete
	if !hasDate {
		return result
	}

	isOpen := resp.Window.IsOpen
	result.IsOpen = &isOpen
	result.Label = resp.Window.Label
	if isOpen && result.OpenTime == nil {
		openTime, closeTime := resp.Window.OpenTime.String(), resp.Window.CloseTime.String()
		result.OpenTime, result.CloseTime = &openTime, &closeTime
	}
	return result
}
