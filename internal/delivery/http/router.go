package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"blogpilot/internal/delivery/http/controllers"
	"blogpilot/internal/delivery/http/middleware"
	"blogpilot/internal/domain"
)

// RouterConfig carries the controllers and auth inputs for route setup.
type RouterConfig struct {
	Auth       *controllers.AuthController
	Customers  *controllers.CustomerController
	Workflow   *controllers.WorkflowController
	Confirm    *controllers.ConfirmController
	Verifier   domain.TokenVerifier
	CronSecret string
	Logger     *slog.Logger
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	admin := middleware.RequireAdmin(cfg.Verifier, cfg.Logger)
	cron := middleware.RequireCronSecret(cfg.CronSecret, cfg.Logger)

	// Public confirmation pages
	mux.HandleFunc("GET /confirm/{token}", cfg.Confirm.Show)
	mux.HandleFunc("POST /confirm/{token}", cfg.Confirm.Select)

	// Scheduler triggers
	mux.HandleFunc("GET /cron/daily-tasks", cron(cfg.Workflow.DailyTasks))
	mux.HandleFunc("POST /cron/generate-drafts", cron(cfg.Workflow.GenerateDrafts))

	// Auth
	mux.HandleFunc("POST /auth/login", cfg.Auth.Login)

	// Admin API
	mux.HandleFunc("POST /admin/customers", admin(cfg.Customers.Create))
	mux.HandleFunc("GET /admin/customers", admin(cfg.Customers.List))
	mux.HandleFunc("GET /admin/customers/{customerID}", admin(cfg.Customers.Get))
	mux.HandleFunc("PATCH /admin/customers/{customerID}", admin(cfg.Customers.Update))
	mux.HandleFunc("POST /admin/customers/{customerID}/activate", admin(cfg.Customers.SetActive))
	mux.HandleFunc("POST /admin/customers/{customerID}/token", admin(cfg.Customers.RotateToken))
	mux.HandleFunc("POST /admin/customers/{customerID}/drafts/generate", admin(cfg.Customers.GenerateDrafts))
	mux.HandleFunc("POST /admin/drafts/{draftID}/publish", admin(cfg.Customers.PublishDraft))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
