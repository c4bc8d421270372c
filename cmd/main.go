package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"adamdesk/internal/analytics"
	"adamdesk/internal/config"
	"adamdesk/internal/handlers"
	"adamdesk/internal/logger"
	"adamdesk/internal/metrics"
	"adamdesk/internal/middleware"
	"adamdesk/internal/repositories"
	"adamdesk/internal/services"
	"adamdesk/internal/storage"
	"adamdesk/internal/web"
	"adamdesk/pkg/database"
)

const version = "0.1.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	settings := config.Load()

	zapLog, err := logger.New(&logger.Config{
		Level:       settings.LogLevel,
		Environment: settings.Env,
		ServiceName: "adamdesk",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	// The pool connects lazily. An unreachable database does not abort
	// startup: API queries surface errors per request while the dashboard
	// pages fall back to placeholder data.
	pool, err := database.NewPool(context.Background(), settings.DatabaseURL)
	if err != nil {
		zapLog.Fatal("invalid database configuration", zap.Error(err))
	}
	defer pool.Close()

	// Create repositories
	orgRepo := repositories.NewOrganizationRepo(pool)
	userRepo := repositories.NewUserRepo(pool)
	memberRepo := repositories.NewMemberRepo(pool)
	classRepo := repositories.NewClassSessionRepo(pool)
	bookingRepo := repositories.NewBookingRepo(pool)
	invoiceRepo := repositories.NewInvoiceRepo(pool)
	leadRepo := repositories.NewLeadRepo(pool)

	// Create services
	authSvc := services.NewAuthService(settings.SecretKey, settings.AccessTokenTTL())
	memberSvc := services.NewMemberService(memberRepo)
	classSvc := services.NewClassSessionService(classRepo)
	leadSvc := services.NewLeadService(leadRepo)
	bookingSvc := services.NewBookingService(bookingRepo)
	analyticsSvc := analytics.NewService(memberRepo, leadRepo, classRepo, invoiceRepo)

	// Schema bootstrap and demo seeding are best effort: a degraded store is
	// logged and the server still comes up serving fallback pages.
	if err := storage.Migrate(context.Background(), pool); err != nil {
		zapLog.Warn("schema bootstrap failed", zap.Error(err))
	} else if err := storage.SeedDemoData(context.Background(), pool, authSvc); err != nil {
		zapLog.Warn("demo seeding failed", zap.Error(err))
	}

	// Create handlers
	authHandlers := handlers.NewAuthHandlers(pool, userRepo, authSvc)
	memberHandlers := handlers.NewMemberHandlers(memberSvc)
	classHandlers := handlers.NewClassSessionHandlers(classSvc)
	leadHandlers := handlers.NewLeadHandlers(leadSvc)
	bookingHandlers := handlers.NewBookingHandlers(bookingSvc)
	dashboardHandlers := handlers.NewDashboardHandlers(analyticsSvc)

	renderer, err := web.NewRenderer(orgRepo, memberRepo, classRepo, leadRepo, invoiceRepo, zapLog)
	if err != nil {
		zapLog.Fatal("failed to build page renderer", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(logger.Middleware(zapLog))

	httpMetrics := metrics.NewHTTPMetrics("adamdesk", prometheus.DefaultRegisterer)
	e.Use(httpMetrics.Middleware())
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Health endpoints
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", func(c echo.Context) error {
		return handlers.ReadinessCheck(c, pool)
	})

	// Dashboard pages
	web.NewHandlers(renderer).Register(e)

	// API routes
	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)

	api.GET("/me", authHandlers.Me, middleware.JWTMiddleware(authSvc, userRepo))

	api.GET("/dashboard/:organization_id", dashboardHandlers.Dashboard)

	orgs := api.Group("/organizations/:organization_id")
	orgs.POST("/members", memberHandlers.CreateMember)
	orgs.GET("/members", memberHandlers.ListMembers)
	orgs.POST("/classes", classHandlers.CreateClass)
	orgs.GET("/classes", classHandlers.ListClasses)
	orgs.POST("/leads", leadHandlers.CreateLead)
	orgs.GET("/leads", leadHandlers.ListLeads)
	orgs.POST("/bookings", bookingHandlers.CreateBooking)
	orgs.GET("/bookings", bookingHandlers.ListBookings)

	zapLog.Info("starting AdamDesk server",
		zap.String("version", version),
		zap.String("port", settings.Port),
	)
	e.Logger.Fatal(e.Start(":" + settings.Port))
}
