package snapshot

//go:generate go run go.uber.org/mock/mockgen -source=./snapshot.go -destination=./mocks/snapshot_mock.go -package=mocks

import (
	"context"
	"time"
)

// The three collections are persisted under independent keys. There is
// deliberately no transaction spanning them: each key is independently
// loadable with its own default, so a crash between writes leaves a state
// the loader can still make sense of.
const (
	KeyRooms    = "hotel_rooms"
	KeyBookings = "hotel_bookings"
	KeyActivity = "hotel_activity"
)

// Revision describes the last write to a key, used by the sync poller to
// detect snapshots written by sibling instances.
type Revision struct {
	ModifiedAt time.Time `db:"modified_at"`
	ModifiedBy string    `db:"modified_by"`
}

// Store is whole-collection snapshot persistence. Save replaces the value
// under a key with the serialized collection; the last writer wins, there
// is no merge. Load reports found=false for a key that was never written
// so the caller can fall back to its seed default.
type Store interface {
	Load(ctx context.Context, key string, target any) (found bool, err error)
	Save(ctx context.Context, key string, value any, origin string) error
	Revisions(ctx context.Context) (map[string]Revision, error)
}
