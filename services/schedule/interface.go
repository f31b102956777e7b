package schedule

import (
	"context"
	"net/http"
	"time"

	"roombot/models"
)

// Client defines the calls the bot makes against the external scheduling
// service: one availability query and one booking submission.
type Client interface {
	QueryRooms(ctx context.Context, capacity int, date, timeFrom, timeTo string) ([]models.Room, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (string, error)
}

// DefaultScheduleClient implements Client over HTTP.
type DefaultScheduleClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewDefaultScheduleClient(baseURL string) *DefaultScheduleClient {
	return &DefaultScheduleClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}
