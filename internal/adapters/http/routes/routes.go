package routes

import (
	"boardeasy/internal/adapters/http/handlers"
	"boardeasy/internal/adapters/http/middleware"
	"boardeasy/internal/adapters/persistence/repositories"
	"boardeasy/internal/config"
	"boardeasy/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	landlordRepo := repositories.NewLandlordRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	tenantRepo := repositories.NewTenantRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	maintenanceRepo := repositories.NewMaintenanceRepository(db)

	// Initialize services
	authService := services.NewAuthService(landlordRepo, refreshTokenRepo, cfg)
	roomService := services.NewRoomService(roomRepo, tenantRepo)
	tenantService := services.NewTenantService(tenantRepo, roomRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, roomRepo)
	dashboardService := services.NewDashboardService(paymentService, roomRepo, tenantRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	roomHandler := handlers.NewRoomHandler(roomService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Public auth routes
	auth := apiV1.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a landlord session
	protected := apiV1.Use(middleware.AuthMiddleware(cfg))

	authProtected := protected.Group("/auth")
	authProtected.Post("/logout", authHandler.Logout)
	authProtected.Get("/me", authHandler.Me)
	authProtected.Put("/me", authHandler.UpdateMe)
	authProtected.Put("/me/password", authHandler.ChangePassword)

	rooms := protected.Group("/rooms")
	rooms.Get("/", roomHandler.ListRooms)
	rooms.Post("/", roomHandler.CreateRoom)
	rooms.Get("/:id", roomHandler.GetRoom)
	rooms.Put("/:id", roomHandler.UpdateRoom)
	rooms.Delete("/:id", roomHandler.DeleteRoom)

	tenants := protected.Group("/tenants")
	tenants.Get("/", tenantHandler.ListTenants)
	tenants.Post("/", tenantHandler.CreateTenant)
	tenants.Get("/:id", tenantHandler.GetTenant)
	tenants.Put("/:id", tenantHandler.UpdateTenant)
	tenants.Delete("/:id", tenantHandler.DeleteTenant)

	payments := protected.Group("/payments")
	payments.Get("/", paymentHandler.ListLedgers)
	payments.Get("/tenants/:tenantId", paymentHandler.GetTenantLedger)
	payments.Post("/tenants/:tenantId", paymentHandler.RecordPayment)
	payments.Put("/:id/status", paymentHandler.UpdateStatus)
	payments.Put("/:id", paymentHandler.UpdatePayment)
	payments.Delete("/:id", paymentHandler.DeletePayment)

	maintenance := protected.Group("/maintenance")
	maintenance.Get("/", maintenanceHandler.ListRequests)
	maintenance.Post("/", maintenanceHandler.CreateRequest)
	maintenance.Put("/:id", maintenanceHandler.UpdateRequest)
	maintenance.Delete("/:id", maintenanceHandler.DeleteRequest)

	protected.Get("/dashboard", dashboardHandler.GetDashboard)
}
