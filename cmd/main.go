package main

import (
	"strconv"
	"time"

	"backoffice-service/internal/dashboard"
	"backoffice-service/internal/handler"
	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/screen"
	"backoffice-service/internal/session"
	"backoffice-service/pkg/config"
	"backoffice-service/pkg/logger"
	"backoffice-service/pkg/rentms"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (.env handled inside config.Load)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting backoffice-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port),
		zap.String("upstream", appConfig.Upstream.BaseURL))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Open the durable session store
	sessions, err := session.Open(appConfig.Session.Path, log)
	if err != nil {
		log.Fatal("Failed to open session store", zap.Error(err))
	}
	defer sessions.Close()
	log.Info("Session store opened", zap.String("path", appConfig.Session.Path))

	// Upstream API client: the session store supplies the bearer token, any
	// 401 tears the session down, every call feeds the upstream metrics.
	client := rentms.NewClient(appConfig.Upstream.BaseURL, appConfig.Upstream.Timeout, sessions, log)
	client.OnUnauthorized = func() {
		sessions.Clear()
		prometheus.SessionTeardownsTotal.Inc()
	}
	client.Observe = func(method, path string, status int, elapsed time.Duration) {
		prometheus.UpstreamRequestsTotal.WithLabelValues(method, path, statusLabel(status)).Inc()
		prometheus.UpstreamRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
	}

	// Screens
	hooks := screen.Hooks{
		OnRefresh: func(name, outcome string) {
			if name == screen.NameDashboard {
				prometheus.RecordDashboardLoad(outcome)
				return
			}
			prometheus.RecordScreenRefresh(name, outcome)
		},
		OnStale: func(string) {
			prometheus.UpstreamStaleDropsTotal.Inc()
		},
	}

	limit := appConfig.Query.DefaultLimit
	auxLimit := appConfig.Dashboard.PageLimit
	window := appConfig.Query.DebounceWindow

	tenantScreen := screen.NewTenants(client, limit, auxLimit, window, log, hooks)
	defer tenantScreen.Close()
	propertyScreen := screen.NewProperties(client, limit, window, log, hooks)
	defer propertyScreen.Close()
	maintenanceScreen := screen.NewMaintenance(client, limit, auxLimit, window, log, hooks)
	defer maintenanceScreen.Close()
	leaseScreen := screen.NewLeases(client, limit, auxLimit, window, log, hooks)
	defer leaseScreen.Close()

	aggregator := dashboard.NewAggregator(client, appConfig.Dashboard.PageLimit,
		appConfig.Dashboard.RevenueLimit, log)
	dashboardScreen := screen.NewDashboard(aggregator, log, hooks)

	// Handlers
	metrics := handler.Metrics{
		LoginAttempt: func() { prometheus.LoginAttemptsCounter.Inc() },
		LoginSuccess: func() { prometheus.LoginSuccessCounter.Inc() },
		Export:       prometheus.RecordExport,
	}

	authHandler := handler.NewAuthHandler(client, sessions, metrics)
	tenantHandler := handler.NewTenantHandler(client, tenantScreen, metrics)
	propertyHandler := handler.NewPropertyHandler(client, propertyScreen, metrics)
	maintenanceHandler := handler.NewMaintenanceHandler(client, maintenanceScreen, metrics)
	leaseHandler := handler.NewLeaseHandler(client, leaseScreen, metrics)
	dashboardHandler := handler.NewDashboardHandler(dashboardScreen)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Login stays outside the session guard
	e.POST("/api/auth/login", authHandler.Login)

	api := e.Group("/api", mid.SessionGuard(sessions))
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/profile", authHandler.Profile)

	api.GET("/dashboard", dashboardHandler.View)
	api.POST("/dashboard/refresh", dashboardHandler.Refresh)

	tenants := api.Group("/screens/tenants")
	tenants.GET("", tenantHandler.View)
	tenants.PUT("/query", tenantHandler.UpdateQuery)
	tenants.DELETE("/query", tenantHandler.ClearQuery)
	tenants.GET("/schema", tenantHandler.Schema)
	tenants.GET("/export", tenantHandler.Export)

	api.GET("/tenants/:id", tenantHandler.Get)
	api.POST("/tenants", tenantHandler.Create)
	api.PUT("/tenants/:id", tenantHandler.Update)
	api.DELETE("/tenants/:id", tenantHandler.Delete)

	properties := api.Group("/screens/properties")
	properties.GET("", propertyHandler.View)
	properties.PUT("/query", propertyHandler.UpdateQuery)
	properties.DELETE("/query", propertyHandler.ClearQuery)
	properties.GET("/schema", propertyHandler.Schema)
	properties.GET("/export", propertyHandler.Export)

	api.GET("/properties/:id", propertyHandler.Get)
	api.GET("/properties/:id/availability", propertyHandler.Availability)
	api.POST("/properties", propertyHandler.Create)
	api.PUT("/properties/:id", propertyHandler.Update)
	api.DELETE("/properties/:id", propertyHandler.Delete)

	maintenance := api.Group("/screens/maintenance")
	maintenance.GET("", maintenanceHandler.View)
	maintenance.PUT("/query", maintenanceHandler.UpdateQuery)
	maintenance.DELETE("/query", maintenanceHandler.ClearQuery)
	maintenance.GET("/schema", maintenanceHandler.Schema)
	maintenance.GET("/export", maintenanceHandler.Export)

	api.GET("/maintenance/:id", maintenanceHandler.Get)
	api.POST("/maintenance", maintenanceHandler.Create)
	api.PUT("/maintenance/:id", maintenanceHandler.Update)
	api.DELETE("/maintenance/:id", maintenanceHandler.Delete)

	leases := api.Group("/screens/leases")
	leases.GET("", leaseHandler.View)
	leases.PUT("/query", leaseHandler.UpdateQuery)
	leases.DELETE("/query", leaseHandler.ClearQuery)
	leases.GET("/schema", leaseHandler.Schema)
	leases.GET("/export", leaseHandler.Export)

	api.GET("/leases/:id", leaseHandler.Get)
	api.POST("/leases", leaseHandler.Create)
	api.PUT("/leases/:id", leaseHandler.Update)
	api.DELETE("/leases/:id", leaseHandler.Delete)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

// statusLabel maps a transport failure (status 0) to a stable label.
func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
