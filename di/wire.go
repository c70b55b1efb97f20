//go:build wireinject
// +build wireinject

package di

import (
	"roomstay/config"
	"roomstay/infras/kafka"
	"roomstay/infras/message"
	"roomstay/infras/otel"
	"roomstay/infras/postgres"
	"roomstay/infras/redis"
	"roomstay/internal/events"
	"roomstay/shared/cache"
	"roomstay/transport/http"
	"roomstay/transport/http/middleware"
	"roomstay/transport/http/router"

	bookingRepository "roomstay/internal/domains/booking/repository"
	bookingService "roomstay/internal/domains/booking/service"
	roomRepository "roomstay/internal/domains/room/repository"
	roomService "roomstay/internal/domains/room/service"
	bookingHandler "roomstay/internal/handlers/booking"
	roomHandler "roomstay/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	message.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
