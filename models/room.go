package models

// Room is one bookable room as returned by the scheduling service.
// Snapshots are immutable and never persisted.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// RoomList is the payload of the availability query. A missing "rooms"
// field decodes to an empty slice, which is a valid (no availability)
// outcome rather than an error.
type RoomList struct {
	Rooms []Room `json:"rooms"`
}
