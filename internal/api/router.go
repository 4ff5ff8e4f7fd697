package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/earenas/taskboard/internal/api/handlers"
	"github.com/earenas/taskboard/internal/auth"
	"github.com/earenas/taskboard/internal/config"
	"github.com/earenas/taskboard/internal/monitoring"
	"github.com/earenas/taskboard/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, tokens *auth.TokenService, users services.UserServiceProvider, tasks services.TaskServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(monitoring.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, tokens)
	taskHandler := handlers.NewTaskHandler(tasks, cfg.MaxTaskContent)

	r.Handle("/metrics", promhttp.Handler())

	// Public endpoints
	r.Get("/help/", taskHandler.Help)
	r.Get("/login/", authHandler.LoginPage)
	r.Post("/login/", authHandler.Login)
	r.Get("/register/", authHandler.RegisterPage)
	r.Post("/register/", authHandler.Register)

	// Everything below requires an authenticated, active user.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens, users))

		r.Get("/logout/", authHandler.Logout)

		r.Get("/", taskHandler.List)
		r.Get("/get/{taskID}", taskHandler.Get)
		r.Get("/post/", taskHandler.Create)
		r.Get("/delete/{taskID}", taskHandler.Delete)
		r.Get("/change/{taskID}/", taskHandler.Change)
		r.Get("/switch/{taskID}/", taskHandler.Switch)
	})

	return r
}
