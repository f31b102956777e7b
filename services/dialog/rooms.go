package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"roombot/models"
)

// RenderRoomTable builds the fixed-width room selection table. Room names
// are padded or truncated to a stable column width; rows are numbered from
// 1 in display order.
func RenderRoomTable(rooms []models.Room) string {
	var b strings.Builder
	b.WriteString("<b>Room Selection</b>\n\n")
	b.WriteString("<pre><code class='language-html'>\n")
	b.WriteString("ID  | Room Name          | Capacity\n")
	b.WriteString("----+--------------------+----------\n")
	for i, room := range rooms {
		fmt.Fprintf(&b, "%-3d | %-18.18s | %d\n", i+1, room.Name, room.Capacity)
	}
	b.WriteString("</code></pre>\n\n")
	b.WriteString("Select a room by its ID number.")
	return b.String()
}

// ResolveRoomSelection maps a user's reply back to a room identifier via
// the displayed 1-based index. ok is false for non-numeric input or an
// index outside the table.
func ResolveRoomSelection(rooms []models.Room, reply string) (string, bool) {
	idx, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil || idx < 1 || idx > len(rooms) {
		return "", false
	}
	return rooms[idx-1].ID, true
}
