// Package server assembles the HTTP router: global middleware, API routes, health, metrics
// and the Swagger UI.
package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/auth"
	"github.com/user/inventory-go/config"
	"github.com/user/inventory-go/db"
	_ "github.com/user/inventory-go/docs" // Generated Swagger docs
	"github.com/user/inventory-go/items"
	"github.com/user/inventory-go/logger"
	"github.com/user/inventory-go/metrics"
	"github.com/user/inventory-go/respond"
	"github.com/user/inventory-go/summary"
	"github.com/user/inventory-go/users"
)

// Deps is everything the router needs. Metrics and Gatherer are optional.
type Deps struct {
	Auth     *config.AuthConfig
	Log      *zap.Logger
	DB       db.Pinger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	AuthHandlers    *auth.Handlers
	UserHandlers    *users.UserHandlers
	ItemHandlers    *items.Handlers
	SummaryHandlers *summary.Handlers
}

// HealthResponse is the body of a successful GET /healthz.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// useMiddleware installs the shared stack. Metrics sit outside recoverer so a panic is still
// counted under the 500 it turns into.
func useMiddleware(r chi.Router, d Deps) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger(d.Log))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(recoverer(d.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// NewRouter builds the application's handler.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	useMiddleware(r, d)

	r.Get("/healthz", handleHealth(d.DB, d.Log))
	if d.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(d.Gatherer))
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth", d.AuthHandlers.HandleCredentials())

		r.Route("/users", func(r chi.Router) {
			r.Use(auth.JWTMiddleware(d.Auth, d.Log))
			r.Get("/me", d.UserHandlers.HandleGetUserProfile())
		})

		// Inventory routes are open unless AUTH_PROTECT_INVENTORY is set.
		r.Group(func(r chi.Router) {
			if d.Auth.ProtectInventory {
				r.Use(auth.JWTMiddleware(d.Auth, d.Log))
			}
			r.Route("/items", func(r chi.Router) {
				r.Get("/", d.ItemHandlers.HandleList())
				r.Post("/", d.ItemHandlers.HandleCreate())
				r.Put("/", d.ItemHandlers.HandleUpdate())
				r.Delete("/", d.ItemHandlers.HandleDelete())
				r.Get("/{id}", d.ItemHandlers.HandleGet())
			})
			r.Get("/summary", d.SummaryHandlers.HandleSummary())
		})
	})

	return r
}

// handleHealth godoc
// @Summary Liveness and database check
// @Tags Health
// @Produce json
// @Success 200 {object} server.HealthResponse
// @Failure 503 {object} apperror.ErrorResponse "Database unavailable"
// @Router /healthz [get]
func handleHealth(p db.Pinger, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context(), p); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			respond.JSON(w, http.StatusServiceUnavailable, apperror.ErrorResponse{Error: "Database unavailable."})
			return
		}
		respond.JSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// recoverer turns a handler panic into a logged 500 with the standard error body.
func recoverer(log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Error("Panic recovered",
					zap.String("panic", fmt.Sprint(rvr)),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				respond.Error(w, r, nil, apperror.NewInternalError("Server error occurred. Please try again later.", nil))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// NewHTTPServer wraps h with the server timeouts. WriteTimeout leaves room for a slow
// generation call on /api/summary.
func NewHTTPServer(port string, h http.Handler, generationTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: generationTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
