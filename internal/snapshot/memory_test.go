package snapshot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"luxeroom/internal/snapshot"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := snapshot.NewMemory()
	ctx := context.Background()

	saved := []payload{{Name: "r101", Count: 2}}
	assert.NoError(t, store.Save(ctx, snapshot.KeyRooms, saved, "origin-a"))

	var loaded []payload
	found, err := store.Load(ctx, snapshot.KeyRooms, &loaded)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, loaded)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := snapshot.NewMemory()

	var loaded []payload
	found, err := store.Load(context.Background(), snapshot.KeyBookings, &loaded)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, loaded)
}

func TestMemoryStoreRevisions(t *testing.T) {
	store := snapshot.NewMemory()
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, snapshot.KeyRooms, []payload{}, "origin-a"))
	assert.NoError(t, store.Save(ctx, snapshot.KeyBookings, []payload{}, "origin-b"))

	revisions, err := store.Revisions(ctx)

	assert.NoError(t, err)
	assert.Len(t, revisions, 2)
	assert.Equal(t, "origin-a", revisions[snapshot.KeyRooms].ModifiedBy)
	assert.Equal(t, "origin-b", revisions[snapshot.KeyBookings].ModifiedBy)
	assert.False(t, revisions[snapshot.KeyRooms].ModifiedAt.IsZero())
}

// Saves do not merge. When two instances grow diverging collections from
// the same base and save them in turn, the second save silently drops
// what only the first contained. Expected last-writer-wins behavior for
// whole-collection snapshots.
func TestMemoryStoreDivergingSavesDoNotMerge(t *testing.T) {
	store := snapshot.NewMemory()
	ctx := context.Background()

	base := []payload{{Name: "base"}}
	assert.NoError(t, store.Save(ctx, snapshot.KeyBookings, base, "origin-a"))

	fromA := append(append([]payload{}, base...), payload{Name: "added-by-a"})
	fromB := append(append([]payload{}, base...), payload{Name: "added-by-b"})

	assert.NoError(t, store.Save(ctx, snapshot.KeyBookings, fromA, "origin-a"))
	assert.NoError(t, store.Save(ctx, snapshot.KeyBookings, fromB, "origin-b"))

	var loaded []payload
	found, err := store.Load(ctx, snapshot.KeyBookings, &loaded)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, fromB, loaded)

	for _, p := range loaded {
		assert.NotEqual(t, "added-by-a", p.Name, "the first writer's entry is gone")
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := snapshot.NewMemory()
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, snapshot.KeyRooms, []payload{{Name: "old"}}, "origin-a"))
	assert.NoError(t, store.Save(ctx, snapshot.KeyRooms, []payload{{Name: "new"}}, "origin-b"))

	var loaded []payload
	found, err := store.Load(ctx, snapshot.KeyRooms, &loaded)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", loaded[0].Name)

	revisions, err := store.Revisions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "origin-b", revisions[snapshot.KeyRooms].ModifiedBy)
}
