package state

import (
	"context"
	"sync"

	activityModel "luxeroom/internal/domains/activity/model"
	bookingModel "luxeroom/internal/domains/booking/model"
	roomModel "luxeroom/internal/domains/room/model"
	"luxeroom/internal/snapshot"

	"github.com/rs/zerolog/log"
)

// Store holds the authoritative in-memory collections for this instance.
// The durable snapshots are a passive mirror of it: reads never touch the
// database, and a failed write leaves the Store as the source of truth for
// the rest of the session.
//
// Accessors hand out copies and Replace swaps whole collections, so sync
// messages and local mutations never share a slice.
type Store struct {
	mu       sync.RWMutex
	rooms    []roomModel.Room
	bookings []bookingModel.Booking
	activity []activityModel.Entry
}

// NewFromSnapshots seeds a Store from the durable snapshots, falling back
// to the seed inventory and empty collections for keys never written.
func NewFromSnapshots(snapshots snapshot.Store) *Store {
	ctx := context.Background()
	store := &Store{}

	found, err := snapshots.Load(ctx, snapshot.KeyRooms, &store.rooms)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load rooms snapshot, starting from seed inventory")
	}

	if !found || len(store.rooms) == 0 {
		store.rooms = roomModel.Seed()
	}

	if _, err := snapshots.Load(ctx, snapshot.KeyBookings, &store.bookings); err != nil {
		log.Warn().Err(err).Msg("failed to load bookings snapshot, starting empty")
	}

	if _, err := snapshots.Load(ctx, snapshot.KeyActivity, &store.activity); err != nil {
		log.Warn().Err(err).Msg("failed to load activity snapshot, starting empty")
	}

	log.Info().
		Int("rooms", len(store.rooms)).
		Int("bookings", len(store.bookings)).
		Int("activity", len(store.activity)).
		Msg("State store seeded from snapshots")

	return store
}

// New builds a Store from explicit collections; used by tests.
func New(rooms []roomModel.Room, bookings []bookingModel.Booking, activity []activityModel.Entry) *Store {
	return &Store{
		rooms:    rooms,
		bookings: bookings,
		activity: activity,
	}
}

func (s *Store) Rooms() []roomModel.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]roomModel.Room(nil), s.rooms...)
}

func (s *Store) Bookings() []bookingModel.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]bookingModel.Booking(nil), s.bookings...)
}

func (s *Store) Activity() []activityModel.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]activityModel.Entry(nil), s.activity...)
}

func (s *Store) FindRoom(roomID string) (roomModel.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return roomModel.Find(s.rooms, roomID)
}

// ReplaceRooms swaps the room collection. Replacing with an equal
// collection is a no-op by construction, which keeps duplicate sync
// delivery harmless.
func (s *Store) ReplaceRooms(rooms []roomModel.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms = rooms
}

func (s *Store) ReplaceBookings(bookings []bookingModel.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = bookings
}

func (s *Store) ReplaceActivity(activity []activityModel.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activity = activity
}

// AppendActivity applies the retention-bounded append under the lock and
// returns the new collection for persistence.
func (s *Store) AppendActivity(entry activityModel.Entry) []activityModel.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activity = activityModel.Append(s.activity, entry)

	return append([]activityModel.Entry(nil), s.activity...)
}
