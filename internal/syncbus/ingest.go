package syncbus

import (
	"context"
	"encoding/json"
	"time"

	"luxeroom/internal/snapshot"

	"github.com/rs/zerolog/log"
)

// keyKinds maps durable snapshot keys to the sync kinds the poller may
// synthesize when a sibling instance rewrites them.
var keyKinds = map[string]Kind{
	snapshot.KeyRooms:    KindRooms,
	snapshot.KeyBookings: KindBookings,
	snapshot.KeyActivity: KindActivity,
}

// consumeLoop is the live ingestion adapter: it receives broadcasts from
// sibling instances and drops this instance's own echoes.
func (b *redisBus) consumeLoop(ctx context.Context, handler Handler) {
	pubsub := b.client.Subscribe(ctx, b.cfg.Sync.Channel)
	defer pubsub.Close()

	log.Info().Str("channel", b.cfg.Sync.Channel).Msg("Subscribed to sync channel")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Sync consumer context done.")

			return
		case received, ok := <-pubsub.Channel():
			if !ok {
				log.Warn().Msg("Sync channel closed, live sync stopped")

				return
			}

			msg, err := decodeMessage([]byte(received.Payload))
			if err != nil {
				log.Error().Err(err).Msg("Dropping malformed sync message")

				continue
			}

			if msg.Origin == b.origin {
				continue
			}

			log.Info().
				Str("kind", string(msg.Kind)).
				Str("staff", msg.StaffName).
				Msg("Received sync message")

			handler(ctx, msg)
		}
	}
}

// pollLoop is the fallback ingestion adapter: it watches snapshot
// revisions for writes by other instances, covering instances started
// after a broadcast or any broadcast lost while Redis was down. Duplicate
// delivery with consumeLoop is expected; the handler is idempotent.
func (b *redisBus) pollLoop(ctx context.Context, handler Handler) {
	interval := time.Duration(b.cfg.Sync.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	// Current revisions are this instance's startup state, already loaded.
	lastSeen, err := b.snapshots.Revisions(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read snapshot revisions, poller starts blind")
		lastSeen = map[string]snapshot.Revision{}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Sync poller context done.")

			return
		case <-ticker.C:
			b.pollOnce(ctx, handler, lastSeen)
		}
	}
}

func (b *redisBus) pollOnce(ctx context.Context, handler Handler, lastSeen map[string]snapshot.Revision) {
	revisions, err := b.snapshots.Revisions(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to poll snapshot revisions")

		return
	}

	for key, kind := range keyKinds {
		rev, ok := revisions[key]
		if !ok {
			continue
		}

		previous, seen := lastSeen[key]
		if seen && !rev.ModifiedAt.After(previous.ModifiedAt) {
			continue
		}

		lastSeen[key] = rev

		if rev.ModifiedBy == b.origin {
			continue
		}

		var raw json.RawMessage
		found, err := b.snapshots.Load(ctx, key, &raw)
		if err != nil || !found {
			log.Warn().Err(err).Str("key", key).Msg("failed to load changed snapshot")

			continue
		}

		log.Info().Str("kind", string(kind)).Msg("Picked up snapshot change from sibling instance")

		handler(ctx, Message{
			Kind:       kind,
			Collection: raw,
			StaffName:  rev.ModifiedBy,
			Origin:     rev.ModifiedBy,
		})
	}
}
