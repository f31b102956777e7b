// File: services/schedule/client.go
package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"roombot/models"
	"roombot/utils"

	"go.uber.org/zap"
)

// QueryRooms asks the scheduling service for rooms that can hold the given
// number of participants in the requested window. An absent or empty
// "rooms" field in the response is a valid empty result.
func (c *DefaultScheduleClient) QueryRooms(ctx context.Context, capacity int, date, timeFrom, timeTo string) ([]models.Room, error) {
	logger := utils.GetLogger()

	params := url.Values{}
	params.Set("capacity", strconv.Itoa(capacity))
	params.Set("date", date)
	params.Set("timeFrom", timeFrom)
	params.Set("timeTo", timeTo)

	reqURL := fmt.Sprintf("%s/api/schedule?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build room query request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Room query failed",
			zap.Int("status", resp.StatusCode),
			zap.String("date", date))
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var list models.RoomList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to parse room list: %w", err)
	}

	logger.Debug("Room query succeeded",
		zap.Int("rooms", len(list.Rooms)),
		zap.Int("capacity", capacity))
	return list.Rooms, nil
}

// CreateBooking submits the collected meeting fields and returns the
// confirmation message from the scheduling service.
func (c *DefaultScheduleClient) CreateBooking(ctx context.Context, booking models.BookingRequest) (string, error) {
	logger := utils.GetLogger()

	body, err := json.Marshal(booking)
	if err != nil {
		return "", fmt.Errorf("failed to marshal booking request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/schedule", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Booking submission failed",
			zap.Int("status", resp.StatusCode),
			zap.String("roomId", booking.RoomID))
		return "", &UpstreamError{StatusCode: resp.StatusCode}
	}

	var result models.BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse booking response: %w", err)
	}

	logger.Info("Booking created",
		zap.String("roomId", booking.RoomID),
		zap.String("date", booking.Date))
	return result.Event.Message, nil
}
