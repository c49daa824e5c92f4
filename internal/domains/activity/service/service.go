package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"luxeroom/infras/otel"
	"luxeroom/internal/domains/activity/model"
	"luxeroom/internal/domains/activity/model/dto"
	"luxeroom/internal/snapshot"
	"luxeroom/internal/state"
	"luxeroom/internal/syncbus"
	"luxeroom/shared/constant"
	"luxeroom/shared/idgen"
	"luxeroom/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Activity interface {
	GetAll(ctx context.Context) (dto.GetActivityResponse, error)
	Record(ctx context.Context, kind model.Kind, message, staffName string)
}

type serviceImpl struct {
	state     *state.Store
	snapshots snapshot.Store
	bus       syncbus.Bus
	ids       idgen.Generator
	otel      otel.Otel
}

func New(st *state.Store, snapshots snapshot.Store, bus syncbus.Bus, ids idgen.Generator, ot otel.Otel) Activity {
	return &serviceImpl{
		state:     st,
		snapshots: snapshots,
		bus:       bus,
		ids:       ids,
		otel:      ot,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetActivityResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActivity")
	defer scope.End()

	res.FromModels(s.state.Activity())

	return res, nil
}

// Record appends one audit entry and propagates the updated log. It never
// fails the caller: losing an audit line must not fail the booking or
// status change that produced it.
func (s *serviceImpl) Record(ctx context.Context, kind model.Kind, message, staffName string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordActivity")
	defer scope.End()

	entry := model.New(s.ids.NewID(), message, staffName, kind, timezone.Now())
	activity := s.state.AppendActivity(entry)

	if err := s.snapshots.Save(ctx, snapshot.KeyActivity, activity, s.bus.Origin()); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to persist activity log, it stays in memory only")
	}

	s.bus.Publish(ctx, syncbus.KindActivity, activity, staffName)
}
