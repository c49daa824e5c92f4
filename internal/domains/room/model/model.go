package model

import (
	"fmt"
	"time"

	"luxeroom/shared/failure"
)

const (
	EntityName = "room"
)

// Type is the bed configuration of a room. The inventory only carries the
// two configurations of the original property.
type Type string

const (
	TypeTwin   Type = "Twin Room"
	TypeDouble Type = "Double Bed"
)

// Status is the housekeeping state of a room. Any status may transition to
// any other; there is no legality matrix.
type Status string

const (
	StatusReady      Status = "Ready"
	StatusCleaning   Status = "Cleaning"
	StatusOccupied   Status = "Occupied"
	StatusOutOfOrder Status = "Out of Order"
)

func (s Status) Valid() bool {
	switch s {
	case StatusReady, StatusCleaning, StatusOccupied, StatusOutOfOrder:
		return true
	}

	return false
}

// Room is one unit of the fixed inventory. Rooms are seeded at first start
// and never created or deleted afterwards; only Status and LastUpdated move.
type Room struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Type        Type   `json:"type"`
	Status      Status `json:"status"`
	LastUpdated *int64 `json:"lastUpdated,omitempty"`
}

// ChangeStatus returns a copy of the room collection with the matching
// room's status replaced and its lastUpdated stamped. Every other room is
// untouched. The input slice is never mutated so callers can hold the old
// collection for comparison or rollback.
func ChangeStatus(rooms []Room, roomID string, status Status, now time.Time) ([]Room, error) {
	if !status.Valid() {
		return nil, failure.BadRequestFromString(fmt.Sprintf("unknown room status: %s", status))
	}

	found := false
	next := make([]Room, len(rooms))

	for i, room := range rooms {
		if room.ID == roomID {
			millis := now.UnixNano() / int64(time.Millisecond)
			room.Status = status
			room.LastUpdated = &millis
			found = true
		}

		next[i] = room
	}

	if !found {
		return nil, failure.NotFound(EntityName + " not found")
	}

	return next, nil
}

// Find returns the room with the given id.
func Find(rooms []Room, roomID string) (Room, bool) {
	for _, room := range rooms {
		if room.ID == roomID {
			return room, true
		}
	}

	return Room{}, false
}

// Label is the human-facing room descriptor used in activity messages and
// drafted notes, e.g. "Room 104 (Double Bed)".
func (r Room) Label() string {
	return fmt.Sprintf("Room %s (%s)", r.Number, r.Type)
}
