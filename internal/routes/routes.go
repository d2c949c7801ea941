package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jithiee/FyndPro-Backend/internal/audit"
	"github.com/jithiee/FyndPro-Backend/internal/cache"
	"github.com/jithiee/FyndPro-Backend/internal/config"
	"github.com/jithiee/FyndPro-Backend/internal/handlers"
	infraRepo "github.com/jithiee/FyndPro-Backend/internal/infra/repository"
	"github.com/jithiee/FyndPro-Backend/internal/middleware"
	ucBooking "github.com/jithiee/FyndPro-Backend/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	candidateCache := cache.NewCandidateCache(rdb, cfg.NearbyTTL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	nearbyUC := ucBooking.NewNearbyEmployees(bookingRepo, candidateCache)
	getEmployeeUC := ucBooking.NewGetEmployee(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, cfg.Timezone)
	listClientUC := ucBooking.NewListClientBookings(bookingRepo)
	listEmployeeUC := ucBooking.NewListEmployeeBookings(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, candidateCache)
	bookingHandler := handlers.NewBookingHandler(
		nearbyUC,
		getEmployeeUC,
		createBookingUC,
		listClientUC,
		listEmployeeUC,
		updateStatusUC,
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
		// PUBLIC
		// ------------------------------
		api.GET("/bookings/employee/:user_id", bookingHandler.GetEmployee)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, db))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/location", meHandler.UpdateLocation)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			bookings := secured.Group("/bookings")
			bookings.GET("/nearby", bookingHandler.Nearby)
			bookings.POST("/create", bookingHandler.Create)
			bookings.GET("/client", bookingHandler.ClientBookings)
			bookings.GET("/employee", bookingHandler.EmployeeBookings)
			bookings.PATCH("/update/:book_id", bookingHandler.UpdateStatus)
		}
	}
}
