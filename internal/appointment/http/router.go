package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/petpalhq/petpal/internal/appointment/service"
	"github.com/petpalhq/petpal/internal/appointment/store"
	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/jwtx"
	"github.com/petpalhq/petpal/pkg/slogx"
)

const serviceName = "appointment-service"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	AppointmentService *service.AppointmentService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAppointments()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{AppointmentService: r.AppointmentService}

	r.Mux.Handle("GET /v1/appointments", r.secured(h.HandleList))
	r.Mux.Handle("GET /v1/appointments/pet/{petID}", r.secured(h.HandleListByPet))
	r.Mux.Handle("POST /v1/appointments", r.secured(h.HandleCreate))
	r.Mux.Handle("GET /v1/appointments/{id}", r.secured(h.HandleGet))
	r.Mux.Handle("PUT /v1/appointments/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/appointments/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(serviceName, r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(serviceName, r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
