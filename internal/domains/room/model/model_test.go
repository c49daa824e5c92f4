package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"luxeroom/internal/domains/room/model"
	"luxeroom/shared/timezone"
)

func TestSeed(t *testing.T) {
	rooms := model.Seed()

	assert.Len(t, rooms, 13)

	for _, room := range rooms {
		assert.Equal(t, model.StatusReady, room.Status)
		assert.Nil(t, room.LastUpdated)
		assert.True(t, room.Type == model.TypeTwin || room.Type == model.TypeDouble)
	}
}

func TestChangeStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 11, 0, 0, 0, timezone.GetLocation())

	tests := []struct {
		name    string
		roomID  string
		status  model.Status
		wantErr bool
	}{
		{
			name:   "valid change",
			roomID: "r101",
			status: model.StatusCleaning,
		},
		{
			name:   "out of order has a space in it",
			roomID: "r104",
			status: model.StatusOutOfOrder,
		},
		{
			name:    "unknown room",
			roomID:  "r999",
			status:  model.StatusCleaning,
			wantErr: true,
		},
		{
			name:    "unknown status",
			roomID:  "r101",
			status:  model.Status("Haunted"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := model.Seed()
			changed, err := model.ChangeStatus(rooms, tt.roomID, tt.status, now)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			room, found := model.Find(changed, tt.roomID)
			assert.True(t, found)
			assert.Equal(t, tt.status, room.Status)
			assert.NotNil(t, room.LastUpdated)
			assert.Equal(t, now.UnixNano()/int64(time.Millisecond), *room.LastUpdated)
		})
	}
}

func TestChangeStatusLeavesOthersUntouched(t *testing.T) {
	now := time.Date(2026, 3, 10, 11, 0, 0, 0, timezone.GetLocation())
	rooms := model.Seed()

	changed, err := model.ChangeStatus(rooms, "r101", model.StatusOccupied, now)
	assert.NoError(t, err)

	for _, room := range changed {
		if room.ID == "r101" {
			continue
		}

		assert.Equal(t, model.StatusReady, room.Status)
		assert.Nil(t, room.LastUpdated)
	}

	// The input collection is never mutated.
	original, _ := model.Find(rooms, "r101")
	assert.Equal(t, model.StatusReady, original.Status)
}

func TestLabel(t *testing.T) {
	room := model.Room{ID: "r104", Number: "104", Type: model.TypeDouble, Status: model.StatusReady}

	assert.Equal(t, "Room 104 (Double Bed)", room.Label())
}
