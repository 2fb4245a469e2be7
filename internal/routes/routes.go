package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucBlock "github.com/BruksfildServices01/salon-scheduler/internal/usecase/calendarblock"
	ucReminder "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reminder"
	ucReservation "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reservation"
	ucService "github.com/BruksfildServices01/salon-scheduler/internal/usecase/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	calendarRepo := infraRepo.NewCalendarGormRepository(db)
	reminderRepo := infraRepo.NewReminderGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	catalog := cache.NewCatalog(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES: RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)

	confirmReservationUC := ucReservation.NewConfirmReservation(
		reservationRepo,
		auditDispatcher,
		cfg.ReminderLead(),
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
	)

	completeReservationUC := ucReservation.NewCompleteReservation(
		reservationRepo,
		auditDispatcher,
	)

	rescheduleReservationUC := ucReservation.NewRescheduleReservation(
		reservationRepo,
		auditDispatcher,
	)

	deactivateReservationUC := ucReservation.NewDeactivateReservation(
		reservationRepo,
		auditDispatcher,
	)

	listReservationsUC := ucReservation.NewListReservations(
		reservationRepo,
	)

	checkAvailabilityUC := ucReservation.NewCheckAvailability(
		reservationRepo,
	)

	// ======================================================
	// 🧠 USE CASES: CALENDAR / REMINDERS / SERVICES
	// ======================================================
	createBlockUC := ucBlock.NewCreateManualBlock(calendarRepo, auditDispatcher)
	removeBlockUC := ucBlock.NewRemoveManualBlock(calendarRepo, auditDispatcher)
	listBlocksUC := ucBlock.NewListBlocks(calendarRepo)

	dueRemindersUC := ucReminder.NewDueReminders(reminderRepo)
	ackReminderUC := ucReminder.NewAcknowledgeReminder(reminderRepo, auditDispatcher)

	deleteServiceUC := ucService.NewDeleteService(serviceRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, catalog, deleteServiceUC)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		confirmReservationUC,
		cancelReservationUC,
		completeReservationUC,
		rescheduleReservationUC,
		deactivateReservationUC,
		listReservationsUC,
		checkAvailabilityUC,
	)

	calendarHandler := handlers.NewCalendarHandler(
		createBlockUC,
		removeBlockUC,
		listBlocksUC,
	)

	reminderHandler := handlers.NewReminderHandler(dueRemindersUC, ackReminderUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/public/services", serviceHandler.PublicList)
		api.GET("/public/availability", reservationHandler.Availability)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// RESERVATIONS (CLIENTE)
			// ------------------------------
			secured.POST("/me/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", reservationHandler.MyReservations)
			secured.GET("/me/reservations/:id", reservationHandler.Get)
			secured.PATCH("/me/reservations/:id/cancel", reservationHandler.Cancel)
			secured.PATCH("/me/reservations/:id/reschedule", reservationHandler.Reschedule)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.GET("/reservations", reservationHandler.ListByDate)
				admin.GET("/reservations/:id", reservationHandler.Get)
				admin.DELETE("/reservations/:id", reservationHandler.Deactivate)
				admin.PATCH("/reservations/:id/confirm", reservationHandler.Confirm)
				admin.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
				admin.PATCH("/reservations/:id/complete", reservationHandler.Complete)
				admin.PATCH("/reservations/:id/reschedule", reservationHandler.Reschedule)

				admin.GET("/services", serviceHandler.List)
				admin.GET("/services/:id", serviceHandler.Get)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/calendar", calendarHandler.List)
				admin.POST("/calendar/blocks", calendarHandler.CreateBlock)
				admin.DELETE("/calendar/blocks/:id", calendarHandler.RemoveBlock)

				admin.GET("/reminders/due", reminderHandler.Due)
				admin.PATCH("/reminders/:id/ack", reminderHandler.Acknowledge)

				admin.GET("/audit-logs", auditLogsHandler.List)
				admin.GET("/audit-logs/deleted-services", auditLogsHandler.DeletedServices)
			}
		}
	}
}
