package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/session"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// Deps are the process singletons built by main. Redis and the
// dispatchers may be nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *redis.Client
	Audit  *audit.Dispatcher
	Notify *notify.Dispatcher
	Sender notify.Sender
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(d.Config))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	revoker := session.NewRevoker(d.Redis)

	sender := d.Sender
	if sender == nil {
		sender = notify.NewLogSender()
	}

	// ======================================================
	// 🧠 USE CASES (RESERVAS)
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	commitUC := ucBooking.NewCommitReservation(bookingRepo, d.Audit, d.Notify)
	cancelUC := ucBooking.NewCancelReservation(bookingRepo, d.Audit, d.Notify)
	listUC := ucBooking.NewListReservations(bookingRepo)
	reminderUC := ucBooking.NewSendReminder(bookingRepo, sender, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config, revoker, d.Audit)
	meHandler := handlers.NewMeHandler(d.DB)
	barbershopHandler := handlers.NewBarbershopHandler(bookingRepo, d.Audit)
	customerHandler := handlers.NewCustomerHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	publicHandler := handlers.NewPublicHandler(bookingRepo, availabilityUC, commitUC)
	reservationHandler := handlers.NewReservationHandler(
		bookingRepo,
		availabilityUC,
		listUC,
		cancelUC,
		reminderUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(d.Redis, d.Config.PublicRateLimit))
		{
			publicAPI.GET("/:slug", publicHandler.GetBarbershop)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/reservations", publicHandler.CreateReservation)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config, revoker))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			// ------------------------------
			// RESERVAS
			// ------------------------------
			secured.GET("/me/availability", reservationHandler.Availability)
			secured.GET("/me/reservations", reservationHandler.ListByDate)
			secured.GET("/me/reservations/upcoming", reservationHandler.Upcoming)
			secured.DELETE("/me/reservations/:id", reservationHandler.Cancel)
			secured.POST("/me/reservations/:id/reminder", reservationHandler.SendReminder)

			secured.GET("/me/customers", customerHandler.List)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
