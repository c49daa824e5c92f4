package syncbus

//go:generate go run go.uber.org/mock/mockgen -source=./bus.go -destination=./mocks/bus_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"luxeroom/config"
	"luxeroom/infras/otel"
	"luxeroom/internal/snapshot"
	"luxeroom/shared/constant"

	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Kind string

const (
	KindRooms    Kind = "rooms"
	KindBookings Kind = "bookings"
	KindActivity Kind = "activity"
)

// Message is the wire payload of one collection replacement. Collection is
// the full serialized collection, never a delta; Origin identifies the
// publishing instance so a subscriber can drop its own echoes.
type Message struct {
	Kind       Kind            `json:"kind"`
	Collection json.RawMessage `json:"collection"`
	StaffName  string          `json:"staffName"`
	Origin     string          `json:"origin"`
}

// Handler consumes one inbound message. Both ingestion paths (live pub/sub
// and the snapshot poller) can deliver the same logical update, so a
// handler must be idempotent.
type Handler func(ctx context.Context, msg Message)

// Bus propagates full-collection replacements to sibling instances,
// best-effort and at-most-once. Publish never returns an error: when the
// broker is unreachable sync degrades to the snapshot poller and the
// mutation that triggered the publish must still succeed.
type Bus interface {
	Publish(ctx context.Context, kind Kind, collection any, staffName string)
	Start(ctx context.Context, handler Handler)
	Origin() string
}

type redisBus struct {
	client    *goRedis.Client
	snapshots snapshot.Store
	cfg       *config.Config
	otel      otel.Otel
	origin    string
}

func New(client *goRedis.Client, snapshots snapshot.Store, cfg *config.Config, ot otel.Otel) Bus {
	return &redisBus{
		client:    client,
		snapshots: snapshots,
		cfg:       cfg,
		otel:      ot,
		origin:    uuid.New().String(),
	}
}

func (b *redisBus) Origin() string {
	return b.origin
}

func (b *redisBus) Publish(ctx context.Context, kind Kind, collection any, staffName string) {
	if !b.cfg.Sync.Enable {
		return
	}

	ctx, scope := b.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+".Publish")
	defer scope.End()

	scope.SetAttribute("sync.kind", string(kind))

	payload, err := encodeMessage(kind, collection, staffName, b.origin)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to encode sync message")

		return
	}

	if err := b.client.Publish(ctx, b.cfg.Sync.Channel, payload).Err(); err != nil {
		// Degraded mode: siblings pick the change up from the snapshot
		// poller instead.
		scope.TraceError(err)
		log.Warn().Err(err).Str("kind", string(kind)).Msg("sync broadcast unavailable, relying on snapshot polling")
	}
}

func (b *redisBus) Start(ctx context.Context, handler Handler) {
	if !b.cfg.Sync.Enable {
		log.Info().Msg("Sync disabled, running standalone")

		return
	}

	go b.consumeLoop(ctx, handler)
	go b.pollLoop(ctx, handler)
}

func encodeMessage(kind Kind, collection any, staffName, origin string) ([]byte, error) {
	raw, err := json.Marshal(collection)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection: %w", err)
	}

	payload, err := json.Marshal(Message{
		Kind:       kind,
		Collection: raw,
		StaffName:  staffName,
		Origin:     origin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync message: %w", err)
	}

	return payload, nil
}

func decodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, fmt.Errorf("failed to unmarshal sync message: %w", err)
	}

	return msg, nil
}
