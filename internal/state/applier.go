package state

import (
	"context"
	"encoding/json"

	activityModel "luxeroom/internal/domains/activity/model"
	bookingModel "luxeroom/internal/domains/booking/model"
	roomModel "luxeroom/internal/domains/room/model"
	"luxeroom/internal/syncbus"

	"github.com/rs/zerolog/log"
)

// Applier applies inbound sync messages to the state store. Each message
// carries a full collection, so applying one is a wholesale replace and
// applying the same message twice converges on the same state.
type Applier struct {
	store *Store
}

func NewApplier(store *Store) *Applier {
	return &Applier{store: store}
}

func (a *Applier) Apply(_ context.Context, msg syncbus.Message) {
	switch msg.Kind {
	case syncbus.KindRooms:
		var rooms []roomModel.Room
		if err := json.Unmarshal(msg.Collection, &rooms); err != nil {
			log.Error().Err(err).Msg("failed to decode rooms sync payload")

			return
		}

		a.store.ReplaceRooms(rooms)
	case syncbus.KindBookings:
		var bookings []bookingModel.Booking
		if err := json.Unmarshal(msg.Collection, &bookings); err != nil {
			log.Error().Err(err).Msg("failed to decode bookings sync payload")

			return
		}

		a.store.ReplaceBookings(bookings)
	case syncbus.KindActivity:
		var activity []activityModel.Entry
		if err := json.Unmarshal(msg.Collection, &activity); err != nil {
			log.Error().Err(err).Msg("failed to decode activity sync payload")

			return
		}

		a.store.ReplaceActivity(activity)
	default:
		log.Warn().Str("kind", string(msg.Kind)).Msg("ignoring sync message of unknown kind")
	}
}
