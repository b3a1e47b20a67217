package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/port-russell/marina-api/internal/api/handler"
	"github.com/port-russell/marina-api/internal/api/middleware"
	"github.com/port-russell/marina-api/internal/core/service"
	mongodb "github.com/port-russell/marina-api/internal/infrastructure/db/mongo"
	redisdb "github.com/port-russell/marina-api/internal/infrastructure/db/redis"
)

// Options carries the router's tunables.
type Options struct {
	SessionSecret string
	SessionTTL    time.Duration
	TemplateDir   string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, opts Options, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marina"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	renderer, err := handler.NewRenderer(opts.TemplateDir)
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	catwayRepo := mongodb.NewCatwayRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)
	sessions := redisdb.NewSessionStore(rdb, opts.SessionTTL)

	userService := service.NewUserService(userRepo, log)
	catwayService := service.NewCatwayService(catwayRepo, log)
	reservationService := service.NewReservationService(reservationRepo, log)
	authService := service.NewAuthService(userRepo, sessions, log)

	authHandler := handler.NewAuthHandler(authService, opts.SessionSecret)
	userHandler := handler.NewUserHandler(userService)
	catwayHandler := handler.NewCatwayHandler(catwayService, reservationService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	dashboardHandler := handler.NewDashboardHandler(catwayService, reservationService)

	gate := middleware.RequireSession(sessions, opts.SessionSecret)

	// --- Entry page and auth routes (no gate) ---
	e.GET("/", dashboardHandler.Home)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/logout", authHandler.Logout)

	// --- Health probes and metrics (no gate) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Dashboard pages (gated) ---
	dashboard := e.Group("/dashboard", gate)
	dashboard.GET("", dashboardHandler.Overview)
	dashboard.GET("/catways", dashboardHandler.Catways)
	dashboard.GET("/catways/:id", dashboardHandler.CatwayDetails)
	dashboard.GET("/reservations", dashboardHandler.Reservations)

	// --- JSON API (gated) ---
	apiGroup := e.Group("/api", gate)

	users := apiGroup.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	catways := apiGroup.Group("/catways")
	catways.POST("", catwayHandler.Create)
	catways.GET("", catwayHandler.List)
	catways.GET("/:id", catwayHandler.Get)
	catways.PUT("/:id", catwayHandler.Update)
	catways.PATCH("/:id", catwayHandler.Patch)
	catways.DELETE("/:id", catwayHandler.Delete)
	catways.POST("/:id/reservations", catwayHandler.CreateReservation)
	catways.GET("/:id/reservations", catwayHandler.ListReservations)
	catways.GET("/:id/reservations/:idReservation", catwayHandler.GetReservation)
	catways.DELETE("/:id/reservations/:idReservation", catwayHandler.DeleteReservation)

	reservations := apiGroup.Group("/reservations")
	reservations.POST("", reservationHandler.Create)
	reservations.GET("", reservationHandler.List)
	reservations.GET("/:id", reservationHandler.Get)
	reservations.PUT("/:id", reservationHandler.Update)
	reservations.DELETE("/:id", reservationHandler.Delete)

	return e, nil
}
