package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luxeroom/config"
	"luxeroom/infras/gemini"
	"luxeroom/infras/otel"
	activityModel "luxeroom/internal/domains/activity/model"
	activityService "luxeroom/internal/domains/activity/service"
	"luxeroom/internal/domains/booking/model"
	"luxeroom/internal/domains/booking/model/dto"
	"luxeroom/internal/snapshot"
	"luxeroom/internal/state"
	"luxeroom/internal/syncbus"
	"luxeroom/shared"
	"luxeroom/shared/cache"
	"luxeroom/shared/constant"
	"luxeroom/shared/failure"
	"luxeroom/shared/idgen"
	"luxeroom/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheDraftNote = "booking:draft"
)

type Booking interface {
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Occupancy(ctx context.Context, roomID, date string) (dto.OccupancyResponse, error)
	DraftNote(ctx context.Context, req dto.DraftNoteRequest) (dto.DraftNoteResponse, error)
}

type serviceImpl struct {
	state     *state.Store
	snapshots snapshot.Store
	bus       syncbus.Bus
	activity  activityService.Activity
	drafter   gemini.Drafter
	ids       idgen.Generator
	cache     cache.RedisCache
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	st *state.Store,
	snapshots snapshot.Store,
	bus syncbus.Bus,
	activity activityService.Activity,
	drafter gemini.Drafter,
	ids idgen.Generator,
	redisCache cache.RedisCache,
	cfg *config.Config,
	ot otel.Otel,
) Booking {
	return &serviceImpl{
		state:     st,
		snapshots: snapshots,
		bus:       bus,
		activity:  activity,
		drafter:   drafter,
		ids:       ids,
		cache:     redisCache,
		cfg:       cfg,
		otel:      ot,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()

	res.FromModels(s.state.Bookings())

	return res, nil
}

// Create validates and appends a booking, then persists and broadcasts the
// grown collection. Overlapping stays on the same room are accepted; the
// calendar resolves them by insertion order at display time.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	staffID, staffName, err := shared.StaffFromContext(ctx)
	if err != nil {
		return res, err
	}

	room, ok := s.state.FindRoom(req.RoomID)
	if !ok {
		return res, failure.BadRequestFromString("room does not exist") //nolint:wrapcheck
	}

	start, err := req.Start()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking start date")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid start date: %v", err)) //nolint:wrapcheck
	}

	booking, err := model.New(s.ids.NewID(), req.RoomID, req.GuestName, req.Notes, start, req.Nights, staffID, staffName, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to build booking")

		return res, err
	}

	bookings := model.Append(s.state.Bookings(), booking)
	s.state.ReplaceBookings(bookings)

	if err := s.snapshots.Save(ctx, snapshot.KeyBookings, bookings, s.bus.Origin()); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to persist bookings, state stays in memory only")
	}

	s.bus.Publish(ctx, syncbus.KindBookings, bookings, staffName)

	s.activity.Record(ctx, activityModel.KindBooking,
		fmt.Sprintf("Booked %s for %s, %d night(s) from %s",
			room.Label(), booking.GuestName, booking.Nights(), booking.StartDate.Format(constant.DateFormat)),
		staffName)

	scope.AddEvent("Booking created by " + staffName)

	res.FromModel(booking)

	return res, nil
}

// Occupancy answers whether a room is taken on a calendar day, and by whom.
func (s *serviceImpl) Occupancy(ctx context.Context, roomID, date string) (res dto.OccupancyResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, ok := s.state.FindRoom(roomID); !ok {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	day, err := timezone.Parse(constant.DateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("date must match the %s format", constant.DateFormat)) //nolint:wrapcheck
	}

	res.RoomID = roomID
	res.Date = timezone.DayStart(day).Format(constant.DateFormat)

	booking, ok := model.FindCovering(s.state.Bookings(), roomID, day)
	if !ok {
		return res, nil
	}

	res.Booked = true
	res.CheckInDay = model.IsCheckInDay(booking, day)

	bookingRes := dto.BookingResponse{}
	bookingRes.FromModel(booking)
	res.Booking = &bookingRes

	return res, nil
}

// DraftNote generates a welcome note suggestion for the booking form. The
// request id makes retries idempotent: a duplicate click returns the cached
// draft instead of burning another generation call.
func (s *serviceImpl) DraftNote(ctx context.Context, req dto.DraftNoteRequest) (res dto.DraftNoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DraftNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, _, err = shared.StaffFromContext(ctx); err != nil {
		return res, err
	}

	room, ok := s.state.FindRoom(req.RoomID)
	if !ok {
		return res, failure.BadRequestFromString("room does not exist") //nolint:wrapcheck
	}

	res.RequestID = req.RequestID

	cacheKey := shared.BuildCacheKey(cacheDraftNote, req.RequestID)
	if err = s.cache.Get(ctx, cacheKey, &res.Note); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for draft note")

		return res, nil
	}

	note, err := s.drafter.DraftWelcomeNote(ctx, req.GuestName, req.Nights, room.Label())
	if err != nil {
		log.Error().Err(err).Msg("failed to draft welcome note")

		return res, err
	}

	res.Note = note

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, note, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save draft note to cache")
		}
	}()

	return res, nil
}
