package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/janebaby34221-collab/Superapp/configs"
	"github.com/janebaby34221-collab/Superapp/controllers"
	"github.com/janebaby34221-collab/Superapp/entity"
	"github.com/janebaby34221-collab/Superapp/middlewares"
	"github.com/janebaby34221-collab/Superapp/repository"
	"github.com/janebaby34221-collab/Superapp/services"
	"github.com/janebaby34221-collab/Superapp/ws"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. Everything hangs off the db handle and config passed in; no
// package-level state.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RateLimit(cfg.RateLimitMax, cfg.RateLimitWindow))

	health := func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) }
	r.GET("/health", health)
	r.GET("/healthz", health)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	rideRepo := repository.NewRideRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Ride-status feed
	hub := ws.NewRideHub()
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.SuperadminEmail)
	userSvc := services.NewUserService(userRepo, cfg.SuperadminEmail)
	vehicleSvc := services.NewVehicleService(vehicleRepo)
	rideSvc := services.NewRideService(rideRepo, vehicleRepo, hub)
	paymentSvc := services.NewPaymentService(db, paymentRepo, rideRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	vehicleCtrl := controllers.NewVehicleController(vehicleSvc)
	rideCtrl := controllers.NewRideController(rideSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)

	// Public
	r.POST("/register", authCtrl.Register)
	r.POST("/signup", authCtrl.Register)
	r.POST("/login", authCtrl.Login)

	// Any authenticated caller
	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/me", authCtrl.Me)
		auth.GET("/vehicles", vehicleCtrl.List)
		auth.GET("/nearby-vehicles", vehicleCtrl.Nearby)

		auth.POST("/rides", rideCtrl.Create)
		auth.GET("/rides", rideCtrl.ListMine)
		auth.GET("/rides/:id", rideCtrl.Detail)
		auth.PATCH("/rides/:id/status", rideCtrl.UpdateStatus)

		auth.POST("/payments", paymentCtrl.Create)
	}

	// Admin and up
	admin := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/users", userCtrl.List)
		admin.POST("/vehicles", vehicleCtrl.Create)
		admin.GET("/rides/all", rideCtrl.ListAll)
	}

	// Superadmin only
	super := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleSuperAdmin))
	{
		super.POST("/create-admin", userCtrl.CreateAdmin)
		super.PATCH("/users/:id/promote", userCtrl.Promote)
		super.DELETE("/users/:id", userCtrl.Delete)
	}

	// Live status feed
	r.GET("/ws/rides/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.Handler(rideSvc))
}
