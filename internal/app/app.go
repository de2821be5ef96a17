package app

import (
	"lifeflow-backend/internal/auth"
	"lifeflow-backend/internal/cards"
	"lifeflow-backend/internal/centers"
	"lifeflow-backend/internal/config"
	"lifeflow-backend/internal/database"
	"lifeflow-backend/internal/donations"
	"lifeflow-backend/internal/donors"
	"lifeflow-backend/internal/health"
	"lifeflow-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration, returning the DB and Redis handles for startup checks.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.RequestStats(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	healthHandlers := &health.Handlers{Rdb: rdb}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			healthHandlers.DB = sqlDB
		}
	}
	app.Get("/health", healthHandlers.JSON)

	authHandlers := &auth.Handlers{Rdb: rdb, Config: sessionCfg}
	if db != nil {
		authHandlers.Centers = &auth.GormCenterFinder{DB: db}
		authHandlers.Donors = &auth.GormDonorFinder{DB: db}
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/center/login", authHandlers.CenterLogin)
	authGroup.Post("/donor/login", authHandlers.DonorLogin)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	if db != nil {
		// Donation workflow (legacy Express wire shapes)
		donationHandlers := &donations.Handlers{
			Service: &donations.Service{DB: db, InitialStatus: cfg.InitialDonationStatus},
		}
		donationGroup := app.Group("/api/v1/donations")
		donationGroup.Post("/record", middleware.VerifyBloodCenter(), donationHandlers.RecordDonation)
		donationGroup.Get("/center/:centerId", middleware.VerifyBloodCenter(), donationHandlers.GetCenterDonations)
		donationGroup.Get("/donor/:donorId", middleware.VerifyAccess(), donationHandlers.GetDonorDonations)
		donationGroup.Put("/update/:donationId", middleware.VerifyBloodCenter(), donationHandlers.UpdateDonationStatus)

		// Blood centers
		centerHandlers := &centers.Handlers{Service: &centers.Service{DB: db}}
		centerGroup := app.Group("/api/v1/centers")
		centerGroup.Post("/register", centerHandlers.Register)
		centerGroup.Get("/", centerHandlers.ListActive)
		centerGroup.Get("/:centerId", centerHandlers.Get)
		centerGroup.Put("/:centerId", middleware.VerifyBloodCenter(), centerHandlers.Update)
		centerGroup.Patch("/:centerId/deactivate", middleware.VerifyBloodCenter(), centerHandlers.Deactivate)

		// Donors
		donorHandlers := &donors.Handlers{Service: &donors.Service{DB: db}}
		donorGroup := app.Group("/api/v1/donors")
		donorGroup.Post("/register", donorHandlers.Register)
		donorGroup.Get("/", middleware.VerifyBloodCenter(), donorHandlers.List)
		donorGroup.Get("/:donorId", middleware.VerifyAccess(), donorHandlers.Get)

		// Donor ID cards
		cardHandlers := &cards.Handlers{Service: &cards.Service{DB: db}}
		cardGroup := app.Group("/api/v1/cards")
		cardGroup.Post("/", middleware.VerifyBloodCenter(), cardHandlers.Issue)
		cardGroup.Get("/donor/:donorId", middleware.VerifyAccess(), cardHandlers.DonorCards)
		cardGroup.Patch("/:cardId/deactivate", middleware.VerifyBloodCenter(), cardHandlers.Deactivate)
	}

	return app, db, rdb, nil
}
