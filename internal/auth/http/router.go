package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/credhaus/credhaus/internal/auth/service"
	"github.com/credhaus/credhaus/internal/auth/store"
	"github.com/credhaus/credhaus/pkg/httpx"
	"github.com/credhaus/credhaus/pkg/jwtx"
	"github.com/credhaus/credhaus/pkg/slogx"

	_ "github.com/credhaus/credhaus/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
}

func NewRouter(
	signer jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSystem()

	// The bare root forwards to the interactive documentation.
	r.Mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/index.html", http.StatusTemporaryRedirect)
	})
	r.Mux.Handle("/docs/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Credhaus Credential Service API
//	@version		0.1.0
//	@description	Credential issuance service: account signup, password login with
//	@description	HMAC-signed JWT access/refresh tokens, bearer identity lookup, and
//	@description	atomic email+password resets.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
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

func (r *Router) registerAccounts() {
	r.Mux.Handle("POST /signup", &SignupHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /login", &LoginHandler{AuthService: r.AuthService})
	r.Mux.Handle("GET /me", &MeHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /reset_email", &ResetHandler{AuthService: r.AuthService})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
