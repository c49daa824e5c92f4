package state_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	activityModel "luxeroom/internal/domains/activity/model"
	bookingModel "luxeroom/internal/domains/booking/model"
	roomModel "luxeroom/internal/domains/room/model"
	"luxeroom/internal/snapshot"
	"luxeroom/internal/state"
	"luxeroom/shared/timezone"
)

func TestNewFromSnapshotsSeedsWhenEmpty(t *testing.T) {
	store := state.NewFromSnapshots(snapshot.NewMemory())

	assert.Len(t, store.Rooms(), 13)
	assert.Empty(t, store.Bookings())
	assert.Empty(t, store.Activity())
}

func TestNewFromSnapshotsRestoresPersistedState(t *testing.T) {
	snapshots := snapshot.NewMemory()
	ctx := context.Background()

	rooms, err := roomModel.ChangeStatus(roomModel.Seed(), "r101", roomModel.StatusCleaning, timezone.Now())
	assert.NoError(t, err)
	assert.NoError(t, snapshots.Save(ctx, snapshot.KeyRooms, rooms, "origin-a"))

	booking, err := bookingModel.New("b1", "r101", "Aisha", "", timezone.Now(), 2, "s1", "Bestey", timezone.Now())
	assert.NoError(t, err)
	assert.NoError(t, snapshots.Save(ctx, snapshot.KeyBookings, []bookingModel.Booking{booking}, "origin-a"))

	store := state.NewFromSnapshots(snapshots)

	restored, found := store.FindRoom("r101")
	assert.True(t, found)
	assert.Equal(t, roomModel.StatusCleaning, restored.Status)

	assert.Len(t, store.Bookings(), 1)
	assert.Equal(t, "b1", store.Bookings()[0].ID)
}

func TestAccessorsReturnCopies(t *testing.T) {
	store := state.New(roomModel.Seed(), nil, nil)

	rooms := store.Rooms()
	rooms[0].Status = roomModel.StatusOutOfOrder

	fresh, _ := store.FindRoom(rooms[0].ID)
	assert.Equal(t, roomModel.StatusReady, fresh.Status, "mutating a returned slice must not leak into the store")
}

func TestReplaceIsIdempotent(t *testing.T) {
	store := state.New(roomModel.Seed(), nil, nil)

	changed, err := roomModel.ChangeStatus(store.Rooms(), "r101", roomModel.StatusOccupied, timezone.Now())
	assert.NoError(t, err)

	store.ReplaceRooms(changed)
	store.ReplaceRooms(changed)

	room, _ := store.FindRoom("r101")
	assert.Equal(t, roomModel.StatusOccupied, room.Status)
	assert.Len(t, store.Rooms(), 13)
}

func TestAppendActivityReturnsRetainedLog(t *testing.T) {
	store := state.New(nil, nil, nil)
	now := timezone.Now()

	first := store.AppendActivity(activityModel.New("a1", "first", "Bestey", activityModel.KindBooking, now))
	second := store.AppendActivity(activityModel.New("a2", "second", "Faari", activityModel.KindStatus, now.Add(time.Minute)))

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
	assert.Equal(t, "a2", second[0].ID)
	assert.Equal(t, "a2", store.Activity()[0].ID)
}
