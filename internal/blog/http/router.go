package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/scribe/internal/blog/service"
	"github.com/aussiebroadwan/scribe/internal/blog/store"
	"github.com/aussiebroadwan/scribe/pkg/httpx"
	"github.com/aussiebroadwan/scribe/pkg/jwtx"
	"github.com/aussiebroadwan/scribe/pkg/metricsx"
	"github.com/aussiebroadwan/scribe/pkg/slogx"

	_ "github.com/aussiebroadwan/scribe/api/blog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	PostService *service.PostService

	// Metrics, when set, instruments every route. MetricsHandler is mounted
	// on /metrics.
	Metrics        *metricsx.Collector
	MetricsHandler http.Handler
}

// RouterOptions are the global middleware settings.
type RouterOptions struct {
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	opts RouterOptions,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(opts.CORSAllowedOrigins),
		httpx.Timeout(opts.RequestTimeout),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBlogs()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Scribe Blogging API
//	@version		0.1.0
//	@description	Minimal blogging backend: register, log in, and manage your own posts with HS256 bearer tokens.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/scribe
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h on pattern, labelling metrics with the pattern itself.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	r.Mux.Handle(pattern, r.Metrics.Instrument(pattern, httpx.Chain(h, mws...)))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.handle("POST /register", http.HandlerFunc(h.HandleRegister))
	r.handle("POST /login", http.HandlerFunc(h.HandleLogin))
}

func (r *Router) registerBlogs() {
	h := &BlogsHandler{PostService: r.PostService}
	authn := httpx.AuthnMiddleware(r.verifier)

	r.handle("POST /api/blogs", http.HandlerFunc(h.HandleCreate), authn)
	r.handle("GET /api/blogs", http.HandlerFunc(h.HandleListMine), authn)
	r.handle("PUT /api/blogs/{id}", http.HandlerFunc(h.HandleUpdate), authn)
	r.handle("DELETE /api/blogs/{id}", http.HandlerFunc(h.HandleDelete), authn)

	// Reading a single post is public.
	r.handle("GET /api/blogs/{id}", http.HandlerFunc(h.HandleGet))
}

func (r *Router) registerSystem() {
	r.handle("GET /health", HealthHandler())
	r.handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))

	if r.MetricsHandler != nil {
		r.Mux.Handle("GET /metrics", r.MetricsHandler)
	}
}
