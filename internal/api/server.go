package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mplarena/registration_service/config"
	"github.com/mplarena/registration_service/infra/queue"
	"github.com/mplarena/registration_service/internal/api/rest/handlers"
	"github.com/mplarena/registration_service/internal/domain"
	"github.com/mplarena/registration_service/internal/helper"
	"github.com/mplarena/registration_service/internal/interfaces"
	"github.com/mplarena/registration_service/internal/repository"
	"github.com/mplarena/registration_service/internal/services"
	cld "github.com/mplarena/registration_service/pkg/cloudinary"
	"github.com/mplarena/registration_service/pkg/storage"
)

func StartServer(cfg config.Config) {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // four 5MB slots plus form fields
	})

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260829

	// lock and unlock on one connection; the lock is released as soon as
	// the migration is done, not held for the process lifetime
	migrateErr := db.Connection(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
			return err
		}
		defer func() {
			_ = tx.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
		}()
		return tx.AutoMigrate(&domain.Player{})
	})
	if migrateErr != nil {
		log.Fatalf("migration error: %v", migrateErr)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var uploader interfaces.Uploader
	if cfg.CloudinaryUrl != "" {
		cloud, err := cld.New()
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		uploader = cld.NewCloudinaryUploader(cloud)
		log.Println("attachments: cloudinary")
	} else {
		local, err := storage.NewLocalUploader(cfg.UploadDir)
		if err != nil {
			log.Fatalf("upload dir error: %v", err)
		}
		uploader = local
		// disk references resolve through the static route below
		app.Static("/uploads", cfg.UploadDir)
		log.Println("attachments: local disk at", cfg.UploadDir)
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repository ----------
	playerRepo := repository.NewPlayerRepository(db)

	// ---------- Service ----------
	regSvc := services.NewRegistrationService(
		playerRepo,
		uploader,
		kafkaProducer,
		authHelper,
		cfg.AdminUsername,
		cfg.AdminPassword,
		cfg.AdminPasswordHash,
	)

	// ---------- Handlers ----------
	regHandler := handlers.NewRegistrationHandler(regSvc)
	regHandler.SetupRoutes(app)

	adminHandler := handlers.NewAdminHandler(regSvc, authHelper)
	adminHandler.SetupRoutes(app, cfg.AdminAllowedIP)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
