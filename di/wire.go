//go:build wireinject
// +build wireinject

package di

import (
	"luxeroom/config"
	"luxeroom/infras/gemini"
	"luxeroom/infras/jwt"
	"luxeroom/infras/otel"
	"luxeroom/infras/postgres"
	"luxeroom/infras/redis"
	"luxeroom/internal/snapshot"
	"luxeroom/internal/state"
	"luxeroom/internal/syncbus"
	"luxeroom/shared/cache"
	"luxeroom/shared/idgen"
	"luxeroom/transport/http"
	"luxeroom/transport/http/middleware"
	"luxeroom/transport/http/router"

	activityService "luxeroom/internal/domains/activity/service"
	authService "luxeroom/internal/domains/auth/service"
	bookingService "luxeroom/internal/domains/booking/service"
	roomService "luxeroom/internal/domains/room/service"

	activityHandler "luxeroom/internal/handlers/activity"
	authHandler "luxeroom/internal/handlers/auth"
	bookingHandler "luxeroom/internal/handlers/booking"
	roomHandler "luxeroom/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	gemini.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	idgen.New,
)

var stateAndSync = wire.NewSet(
	snapshot.New,
	state.NewFromSnapshots,
	state.NewApplier,
	syncbus.New,
)

var domains = wire.NewSet(
	authService.New,
	activityService.New,
	roomService.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	activityHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		stateAndSync,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
