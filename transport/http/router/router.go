package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"sunstone/config"
	"sunstone/internal/handlers/auth"
	"sunstone/internal/handlers/booking"
	"sunstone/internal/handlers/contact"
	"sunstone/internal/handlers/dashboard"
	"sunstone/internal/handlers/gallery"
	"sunstone/internal/handlers/offer"
	"sunstone/internal/handlers/pages"
	"sunstone/internal/handlers/room"
	"sunstone/internal/handlers/settings"
	"sunstone/shared/constant"
	"sunstone/transport/http/middleware"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Booking   booking.Handler
	Room      room.Handler
	Gallery   gallery.Handler
	Offer     offer.Handler
	Settings  settings.Handler
	Dashboard dashboard.Handler
	Contact   contact.Handler
	Pages     pages.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AccessGate     middleware.AccessGate
}

func New(
	cfg *config.Config,
	domainHandlers DomainHandlers,
	appMiddleware middleware.AppMiddleware,
	accessGate middleware.AccessGate,
) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AccessGate:     accessGate,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.RequestID)
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RequestLog)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.AppMiddleware.RateLimit())

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.PublicRouter(routerGroup)
		r.DomainHandlers.Booking.PublicRouter(routerGroup)
		r.DomainHandlers.Gallery.PublicRouter(routerGroup)
		r.DomainHandlers.Offer.PublicRouter(routerGroup)
		r.DomainHandlers.Settings.PublicRouter(routerGroup)
		r.DomainHandlers.Contact.PublicRouter(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.AccessGate.Gate)

			r.DomainHandlers.Dashboard.AdminRouter(adminGroup)
			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.Room.AdminRouter(adminGroup)
			r.DomainHandlers.Gallery.AdminRouter(adminGroup)
			r.DomainHandlers.Offer.AdminRouter(adminGroup)
			r.DomainHandlers.Settings.AdminRouter(adminGroup)
		})
	})

	router.Route(constant.AdminPathPrefix, func(pagesGroup chi.Router) {
		pagesGroup.Route("/login", func(loginGroup chi.Router) {
			loginGroup.Use(r.AccessGate.RedirectIfAuthenticated)

			r.DomainHandlers.Pages.LoginRouter(loginGroup)
		})

		pagesGroup.Group(func(gatedGroup chi.Router) {
			gatedGroup.Use(r.AccessGate.Gate)

			r.DomainHandlers.Pages.AdminRouter(gatedGroup)
		})
	})
}
