package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/health", h.health)
	})

	router.Group(func(r chi.Router) {
		if h.settings.TokenSignKey != "" {
			r.Use(h.auth)
		}

		// the relay is long-lived and needs the raw connection
		r.Get("/ws", h.relay)

		r.Group(func(r chi.Router) {
			if h.settings.RequestTimeout > 0 {
				r.Use(middleware.Timeout(h.settings.RequestTimeout))
			}
			r.Use(withGZip)

			r.Get("/zones", h.listZones)
			r.Route("/gateways", func(r chi.Router) {
				r.Get("/", h.listGateways)
				r.Route("/{gwid}", func(r chi.Router) {
					r.Get("/", h.readGateway)
					r.Get("/history", h.history)
					r.Get("/zones", h.listGatewayZones)
					r.Get("/zones/{zoneid}", h.getZone)
					r.Get("/zones/{zoneid}/details", h.readZoneDetails)
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
