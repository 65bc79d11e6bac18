package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nordeim/Polaris-Family-Clinic/internal/audit"
	"github.com/nordeim/Polaris-Family-Clinic/internal/cache"
	"github.com/nordeim/Polaris-Family-Clinic/internal/config"
	"github.com/nordeim/Polaris-Family-Clinic/internal/handlers"
	infraRepo "github.com/nordeim/Polaris-Family-Clinic/internal/infra/repository"
	"github.com/nordeim/Polaris-Family-Clinic/internal/middleware"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
	"github.com/nordeim/Polaris-Family-Clinic/internal/storage"
	"github.com/nordeim/Polaris-Family-Clinic/internal/timezone"
	ucAppointment "github.com/nordeim/Polaris-Family-Clinic/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	settings *models.ClinicSettings,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(settings.Timezone)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db, loc)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	doctorCache := cache.NewDoctorCache(cfg)

	// Photo storage is optional infrastructure; the upload endpoint reports
	// itself unconfigured when it is absent.
	uploader, err := storage.NewUploader(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("doctor photo storage disabled")
		uploader = nil
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, settings)
	bookUC := ucAppointment.NewBook(appointmentRepo, auditDispatcher)
	listMineUC := ucAppointment.NewListForPatient(appointmentRepo)
	rosterUC := ucAppointment.NewListDayRoster(appointmentRepo, settings)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	doctorHandler := handlers.NewDoctorHandler(db, doctorCache)
	profileHandler := handlers.NewProfileHandler(db, cfg, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		bookUC,
		listMineUC,
	)

	staffHandler := handlers.NewStaffHandler(rosterUC, updateStatusUC)
	doctorPhotoHandler := handlers.NewDoctorPhotoHandler(db, uploader, doctorCache, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.GET("/slots", appointmentHandler.ListSlots)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PATIENT
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.GET("/profile", profileHandler.Get)
			me.PUT("/profile", profileHandler.Upsert)

			me.POST("/appointments", appointmentHandler.Book)
			me.GET("/appointments", appointmentHandler.ListMine)
		}

		// ------------------------------
		// STAFF
		// ------------------------------
		staff := api.Group("/staff")
		staff.Use(middleware.AuthMiddleware(cfg), middleware.RequireStaff(db))
		{
			staff.GET("/appointments", staffHandler.Roster)
			staff.PATCH("/appointments/:id/status", staffHandler.UpdateStatus)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/staff")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireStaff(db, "admin"))
		{
			admin.POST("/doctors/:id/photo", doctorPhotoHandler.Upload)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
