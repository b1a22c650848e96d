package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/config"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/events"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/handlers"
	infraRepo "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/infra/repository"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, eventsD *events.Dispatcher, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		auditDispatcher,
		eventsD,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(appointmentRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(appointmentRepo)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/profile", publicHandler.Profile)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/availability-windows", availabilityHandler.Get)
			secured.PUT("/me/availability-windows", availabilityHandler.Update)

			secured.GET("/me/slots", appointmentHandler.Slots)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/upcoming", appointmentHandler.Upcoming)
			secured.GET("/me/appointments/stats", appointmentHandler.Stats)

			secured.PATCH("/me/appointments/:id", appointmentHandler.Patch)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
