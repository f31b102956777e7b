package dialog

import (
	"fmt"
	"strings"
	"testing"

	"roombot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRooms() []models.Room {
	return []models.Room{
		{ID: "R1", Name: "Alpha", Capacity: 5},
		{ID: "R2", Name: "Beta", Capacity: 12},
		{ID: "R3", Name: "Conference Room Gamma", Capacity: 30},
	}
}

func TestRenderRoomTable(t *testing.T) {
	rooms := sampleRooms()
	table := RenderRoomTable(rooms)

	// One row per room, numbered from 1 in display order.
	var rows int
	for i, room := range rooms {
		prefix := fmt.Sprintf("%-3d |", i+1)
		for _, line := range strings.Split(table, "\n") {
			if strings.HasPrefix(line, prefix) {
				rows++
				assert.Contains(t, line, fmt.Sprintf("| %d", room.Capacity))
			}
		}
	}
	assert.Equal(t, len(rooms), rows)

	assert.Contains(t, table, "Alpha")
	assert.Contains(t, table, "Beta")
	// Long names are truncated to the column width.
	assert.Contains(t, table, "Conference Room Ga")
	assert.NotContains(t, table, "Conference Room Gamma")
	assert.Contains(t, table, "Select a room by its ID number.")
}

func TestResolveRoomSelection(t *testing.T) {
	rooms := sampleRooms()

	t.Run("maps each displayed index to its room", func(t *testing.T) {
		for i, room := range rooms {
			id, ok := ResolveRoomSelection(rooms, fmt.Sprintf("%d", i+1))
			require.True(t, ok)
			assert.Equal(t, room.ID, id)
		}
	})

	t.Run("rejects out-of-range and non-numeric input", func(t *testing.T) {
		for _, input := range []string{"0", "-1", "4", "99", "abc", "", "1.5"} {
			_, ok := ResolveRoomSelection(rooms, input)
			assert.False(t, ok, "input %q", input)
		}
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		id, ok := ResolveRoomSelection(rooms, " 2 ")
		require.True(t, ok)
		assert.Equal(t, "R2", id)
	})
}
