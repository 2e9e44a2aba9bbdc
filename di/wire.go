//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"sunstone/config"
	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/infras/redis"
	"sunstone/shared/cache"
	"sunstone/transport/http"
	"sunstone/transport/http/middleware"
	"sunstone/transport/http/router"

	bookingGateway "sunstone/internal/domains/booking/gateway"
	bookingService "sunstone/internal/domains/booking/service"
	contactGateway "sunstone/internal/domains/contact/gateway"
	contactService "sunstone/internal/domains/contact/service"
	dashboardGateway "sunstone/internal/domains/dashboard/gateway"
	dashboardService "sunstone/internal/domains/dashboard/service"
	galleryGateway "sunstone/internal/domains/gallery/gateway"
	galleryService "sunstone/internal/domains/gallery/service"
	offerGateway "sunstone/internal/domains/offer/gateway"
	offerService "sunstone/internal/domains/offer/service"
	roomGateway "sunstone/internal/domains/room/gateway"
	roomService "sunstone/internal/domains/room/service"
	sessionGateway "sunstone/internal/domains/session/gateway"
	sessionService "sunstone/internal/domains/session/service"
	settingsGateway "sunstone/internal/domains/settings/gateway"
	settingsService "sunstone/internal/domains/settings/service"

	authHandler "sunstone/internal/handlers/auth"
	bookingHandler "sunstone/internal/handlers/booking"
	contactHandler "sunstone/internal/handlers/contact"
	dashboardHandler "sunstone/internal/handlers/dashboard"
	galleryHandler "sunstone/internal/handlers/gallery"
	offerHandler "sunstone/internal/handlers/offer"
	pagesHandler "sunstone/internal/handlers/pages"
	roomHandler "sunstone/internal/handlers/room"
	settingsHandler "sunstone/internal/handlers/settings"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAccessGate,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var sessionDomain = wire.NewSet(
	sessionGateway.New,
	sessionService.New,
)

var bookingDomain = wire.NewSet(
	bookingGateway.New,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomGateway.New,
	roomService.New,
)

var galleryDomain = wire.NewSet(
	galleryGateway.New,
	galleryService.New,
)

var offerDomain = wire.NewSet(
	offerGateway.New,
	offerService.New,
)

var settingsDomain = wire.NewSet(
	settingsGateway.New,
	settingsService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardGateway.New,
	dashboardService.New,
)

var contactDomain = wire.NewSet(
	contactGateway.New,
	contactService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	bookingDomain,
	roomDomain,
	galleryDomain,
	offerDomain,
	settingsDomain,
	dashboardDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	roomHandler.New,
	galleryHandler.New,
	offerHandler.New,
	settingsHandler.New,
	dashboardHandler.New,
	contactHandler.New,
	pagesHandler.New,
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
