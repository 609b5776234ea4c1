package get_available_slots

import (
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barber-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                   string   `json:"date"`
	IsOpen                 bool     `json:"isOpen"`
	Label                  string   `json:"label"`
	OpenTime               *string  `json:"openTime,omitempty"`
	CloseTime              *string  `json:"closeTime,omitempty"`
	SlotGranularityMinutes int      `json:"slotGranularityMinutes"`
	Slots                  []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	result := &AvailableSlotsResponse{
		Date:                   resp.Date.Format(domain.DateFormat),
		IsOpen:                 resp.Window.IsOpen,
		Label:                  resp.Window.Label,
		SlotGranularityMinutes: resp.Granularity,
		Slots:                  slots,
	}
	if resp.Window.IsOpen {
		openTime, closeTime := resp.Window.OpenTime.String(), resp.Window.CloseTime.String()
		result.OpenTime, result.CloseTime = &openTime, &closeTime
	}
	return result
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(dateStr))
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}
