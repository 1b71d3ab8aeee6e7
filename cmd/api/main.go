package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"courtbook/internal/config"
	"courtbook/internal/database"
	"courtbook/internal/middleware"
	"courtbook/internal/modules/admin"
	"courtbook/internal/modules/auth"
	"courtbook/internal/modules/booking"
	"courtbook/internal/modules/catalog"
	"courtbook/internal/modules/notification"
	"courtbook/internal/modules/payment"
	jwtsvc "courtbook/internal/pkg/jwt"
	"courtbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}

	userRepo := repository.NewUserRepository(db)
	courtRepo := repository.NewCourtRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	auditRepo := repository.NewPaymentNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := notification.NewHub()
	defer hub.Close()
	notifService := notification.NewService(hub)
	notifHandler := notification.NewHandler(hub, j)

	authService := auth.NewService(userRepo, j, cfg)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(courtRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, courtRepo, notifService)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(bookingRepo, auditRepo, notifService, cfg.PayHere, log.Printf)
	paymentHandler := payment.NewHandler(paymentService, log.Printf)

	adminService := admin.NewService(userRepo, bookingRepo, auditRepo, notifService)
	adminHandler := admin.NewHandler(adminService, hub)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1)
		notifHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
		}

		// admin
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			catalogHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	log.Printf("listening addr=%s env=%s payhere_configured=%t", cfg.HTTPAddr, cfg.AppEnv, cfg.PayHere.Configured())
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
