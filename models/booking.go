package models

// BookingRequest is the body posted to the scheduling service to finalize
// a meeting.
type BookingRequest struct {
	Title    string   `json:"title"`
	Date     string   `json:"date"` // YYYY-MM-DD
	TimeFrom string   `json:"timeFrom"`
	TimeTo   string   `json:"timeTo"`
	Guests   []string `json:"guests"`
	RoomID   string   `json:"roomId"`
}

// BookingResponse wraps the scheduling service's booking confirmation.
// Only the nested human-readable message is retained.
type BookingResponse struct {
	Event struct {
		Message string `json:"message"`
	} `json:"event"`
}
