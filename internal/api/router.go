package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/api/handler"
	"github.com/loansewa/loansewa-web/internal/api/middleware"
	"github.com/loansewa/loansewa-web/internal/api/view"
	"github.com/loansewa/loansewa-web/internal/core/ports"
	"github.com/loansewa/loansewa-web/internal/infrastructure/config"
	"github.com/loansewa/loansewa-web/internal/infrastructure/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, api ports.LoanAPI, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.Must()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("loansewa"))

	// --- Dependencies ---
	sessions := session.NewManager(rdb, cfg.Session.Secret, cfg.Session.TTL, cfg.Session.RememberTTL)
	userGate := middleware.UserSession(sessions)
	adminGate := middleware.AdminSession(sessions)

	authHandler := handler.NewAuthHandler(api, sessions, log)
	loanHandler := handler.NewLoanHandler(api, log)
	dashboardHandler := handler.NewDashboardHandler(api, log)
	analyticsHandler := handler.NewAnalyticsHandler(api, log)
	improvementHandler := handler.NewImprovementHandler(api, log)
	adminAuthHandler := handler.NewAdminAuthHandler(api, sessions, log)
	adminHandler := handler.NewAdminHandler(api, log)
	healthHandler := handler.NewHealthHandler(rdb, api)

	// --- Public pages ---
	e.StaticFS("/static", view.StaticFS())
	e.GET("/", authHandler.Landing)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.POST("/logout", authHandler.Logout)
	e.GET("/logout", authHandler.Logout)

	// --- Borrower pages (user session required) ---
	user := e.Group("", userGate)
	user.GET("/dashboard", dashboardHandler.Dashboard)
	user.GET("/apply", loanHandler.ApplyPage)
	user.POST("/apply", loanHandler.Apply)
	user.GET("/analytics", analyticsHandler.Analytics)
	user.GET("/improve", improvementHandler.Improve)

	// --- Admin auth ---
	e.GET("/admin/login", adminAuthHandler.LoginPage)
	e.POST("/admin/login", adminAuthHandler.Login)
	e.GET("/admin/signup", adminAuthHandler.SignupPage)
	e.POST("/admin/signup", adminAuthHandler.Signup)
	e.POST("/admin/logout", adminAuthHandler.Logout)
	e.GET("/admin/logout", adminAuthHandler.Logout)

	// --- Admin panel (admin session required) ---
	admin := e.Group("/admin", adminGate)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/history", adminHandler.History)
	admin.GET("/insights", adminHandler.Insights)
	admin.GET("/settings", adminHandler.Settings)
	admin.POST("/applications/:id/approve", adminHandler.Approve)
	admin.POST("/applications/:id/reject", adminHandler.Reject)
	admin.POST("/users/:id/delete", adminHandler.DeleteUser)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – are dependencies up?

	return e
}
