package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Client клиент календаря праздников
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHolidays получает праздники и их кануны за год
func (c *Client) GetHolidays(ctx context.Context, year int) ([]Holiday, error) {
	c.log.Info("Fetching holidays for year=%d", year)

	endpoint := fmt.Sprintf("%s/holidays?%s", c.baseURL, url.Values{"year": {strconv.Itoa(year)}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Holiday calendar unavailable for year=%d: %v", year, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrYearNotAvailable
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var dtos []holidayDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]Holiday, 0, len(dtos))
	for _, dto := range dtos {
		date, err := time.Parse(dateLayout, dto.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q: %v", ErrInvalidResponse, dto.Date, err)
		}
		if dto.Kind != KindHoliday && dto.Kind != KindEve {
			c.log.Warn("Skipping %s (%s): unknown kind %q", dto.Date, dto.Name, dto.Kind)
			continue
		}
		result = append(result, Holiday{Date: date, Name: strings.TrimSpace(dto.Name), Kind: dto.Kind})
	}

	c.log.Info("Fetched %d holidays for year=%d", len(result), year)
	return result, nil
}
