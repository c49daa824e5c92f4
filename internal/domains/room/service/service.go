package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luxeroom/infras/otel"
	activityModel "luxeroom/internal/domains/activity/model"
	activityService "luxeroom/internal/domains/activity/service"
	bookingModel "luxeroom/internal/domains/booking/model"
	"luxeroom/internal/domains/room/model"
	"luxeroom/internal/domains/room/model/dto"
	"luxeroom/internal/snapshot"
	"luxeroom/internal/state"
	"luxeroom/internal/syncbus"
	"luxeroom/shared"
	"luxeroom/shared/constant"
	"luxeroom/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	ChangeStatus(ctx context.Context, roomID string, req dto.ChangeStatusRequest) (dto.RoomResponse, error)
	Reset(ctx context.Context) error
}

type serviceImpl struct {
	state     *state.Store
	snapshots snapshot.Store
	bus       syncbus.Bus
	activity  activityService.Activity
	otel      otel.Otel
}

func New(st *state.Store, snapshots snapshot.Store, bus syncbus.Bus, activity activityService.Activity, ot otel.Otel) Room {
	return &serviceImpl{
		state:     st,
		snapshots: snapshots,
		bus:       bus,
		activity:  activity,
		otel:      ot,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRooms")
	defer scope.End()

	res.FromModels(s.state.Rooms())

	return res, nil
}

// ChangeStatus moves one room to a new housekeeping status. The in-memory
// store is the commit point: once it is swapped the change has happened,
// and a failed snapshot write only degrades durability, never the request.
func (s *serviceImpl) ChangeStatus(ctx context.Context, roomID string, req dto.ChangeStatusRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeRoomStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, staffName, err := shared.StaffFromContext(ctx)
	if err != nil {
		return res, err
	}

	rooms, err := model.ChangeStatus(s.state.Rooms(), roomID, model.Status(req.Status), timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to change room status")

		return res, err
	}

	s.state.ReplaceRooms(rooms)

	if err := s.snapshots.Save(ctx, snapshot.KeyRooms, rooms, s.bus.Origin()); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to persist rooms, state stays in memory only")
	}

	s.bus.Publish(ctx, syncbus.KindRooms, rooms, staffName)

	room, _ := model.Find(rooms, roomID)
	s.activity.Record(ctx, activityModel.KindStatus,
		fmt.Sprintf("%s marked as %s", room.Label(), room.Status), staffName)

	res.FromModel(room)

	return res, nil
}

// Reset restores the seed inventory and wipes bookings and the activity
// log. It exists for the front desk to recover from a corrupted dataset.
func (s *serviceImpl) Reset(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, staffName, err := shared.StaffFromContext(ctx)
	if err != nil {
		return err
	}

	rooms := model.Seed()
	bookings := []bookingModel.Booking{}
	activity := []activityModel.Entry{}

	s.state.ReplaceRooms(rooms)
	s.state.ReplaceBookings(bookings)
	s.state.ReplaceActivity(activity)

	origin := s.bus.Origin()
	for key, collection := range map[string]any{
		snapshot.KeyRooms:    rooms,
		snapshot.KeyBookings: bookings,
		snapshot.KeyActivity: activity,
	} {
		if err := s.snapshots.Save(ctx, key, collection, origin); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Str("key", key).Msg("failed to persist reset collection")
		}
	}

	s.bus.Publish(ctx, syncbus.KindRooms, rooms, staffName)
	s.bus.Publish(ctx, syncbus.KindBookings, bookings, staffName)

	s.activity.Record(ctx, activityModel.KindSystem, "All data reset to defaults", staffName)

	log.Info().Str("staff", staffName).Msg("dataset reset to defaults")

	return nil
}
