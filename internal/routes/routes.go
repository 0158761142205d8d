package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/IBilba/pet-a-vet/internal/audit"
	"github.com/IBilba/pet-a-vet/internal/config"
	"github.com/IBilba/pet-a-vet/internal/handlers"
	infraRepo "github.com/IBilba/pet-a-vet/internal/infra/repository"
	"github.com/IBilba/pet-a-vet/internal/middleware"
	"github.com/IBilba/pet-a-vet/internal/reports"
	"github.com/IBilba/pet-a-vet/internal/roles"
	"github.com/IBilba/pet-a-vet/internal/timezone"
	ucAppointment "github.com/IBilba/pet-a-vet/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cache *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ClinicTimezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	reportService := reports.NewService(reports.NewGormSource(db), cache, loc)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
		loc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db)
	petHandler := handlers.NewPetHandler(db)
	recordHandler := handlers.NewMedicalRecordHandler(db)
	productHandler := handlers.NewProductHandler(db)
	orderHandler := handlers.NewOrderHandler(db, auditDispatcher)
	subscriptionHandler := handlers.NewSubscriptionHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(db, loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/user/profile", profileHandler.Get)
			secured.PUT("/user/profile", profileHandler.Update)

			secured.GET("/dashboard", dashboardHandler.Get)

			// ------------------------------
			// PETS + MEDICAL RECORDS
			// ------------------------------
			secured.GET("/pets", petHandler.List)
			secured.POST("/pets", petHandler.Create)
			secured.GET("/pets/:id", petHandler.Get)
			secured.PUT("/pets/:id", petHandler.Update)
			secured.DELETE("/pets/:id", petHandler.Delete)

			secured.GET("/pets/:id/records", recordHandler.List)
			secured.POST("/pets/:id/records",
				middleware.RequirePermission(roles.PermWriteRecords),
				recordHandler.Create,
			)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments", appointmentHandler.Update)
			secured.DELETE("/appointments", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete",
				middleware.RequirePermission(roles.PermManageAppointments),
				appointmentHandler.Complete,
			)

			// ------------------------------
			// MARKETPLACE + WAREHOUSE
			// ------------------------------
			secured.GET("/products", productHandler.List)
			secured.POST("/products",
				middleware.RequirePermission(roles.PermManageInventory),
				productHandler.Create,
			)
			secured.PUT("/products/:id",
				middleware.RequirePermission(roles.PermManageInventory),
				productHandler.Update,
			)
			secured.GET("/products/low-stock",
				middleware.RequirePermission(roles.PermManageInventory),
				productHandler.LowStock,
			)

			// ------------------------------
			// ORDERS + SUBSCRIPTIONS
			// ------------------------------
			secured.POST("/orders", orderHandler.Create)
			secured.GET("/orders", orderHandler.List)
			secured.PUT("/orders/:id/status",
				middleware.RequirePermission(roles.PermManageOrders),
				orderHandler.UpdateStatus,
			)

			secured.GET("/subscriptions", subscriptionHandler.List)
			secured.POST("/subscriptions", subscriptionHandler.Create)
			secured.PATCH("/subscriptions/:id/cancel", subscriptionHandler.Cancel)

			// ------------------------------
			// STAFF + ADMIN
			// ------------------------------
			secured.GET("/customers",
				middleware.RequirePermission(roles.PermManageCustomers),
				customerHandler.List,
			)

			secured.GET("/reports",
				middleware.RequirePermission(roles.PermViewReports),
				reportHandler.Get,
			)

			secured.GET("/audit-logs",
				middleware.RequirePermission(roles.PermViewAuditLogs),
				auditLogsHandler.List,
			)
		}
	}
}
