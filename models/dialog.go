package models

// Stage tags the current step of a booking dialog.
type Stage string

const (
	StageAwaitingTitle         Stage = "awaiting_title"
	StageAwaitingDate          Stage = "awaiting_date"
	StageAwaitingStartTime     Stage = "awaiting_start_time"
	StageAwaitingEndTime       Stage = "awaiting_end_time"
	StageAwaitingParticipants  Stage = "awaiting_participants"
	StageAwaitingRoomSelection Stage = "awaiting_room_selection"
)

// DialogState holds the accumulated fields of one in-progress booking
// dialog. It lives in Redis between webhook deliveries, keyed by chat ID,
// and is deleted on completion, cancellation or TTL expiry.
type DialogState struct {
	DialogID string `json:"dialogId"`
	ChatID   int64  `json:"chatId"`
	Stage    Stage  `json:"stage"`

	Title        string   `json:"title,omitempty"`
	Date         string   `json:"date,omitempty"` // normalized YYYY-MM-DD
	StartTime    string   `json:"timeFrom,omitempty"`
	EndTime      string   `json:"timeTo,omitempty"`
	Participants []string `json:"participants,omitempty"`

	// RoomOptions is the snapshot shown to the user in the selection table.
	// The displayed 1-based index i maps to RoomOptions[i-1].ID and is only
	// valid for the current dialog turn.
	RoomOptions    []Room `json:"roomOptions,omitempty"`
	SelectedRoomID string `json:"selectedRoomId,omitempty"`
}
