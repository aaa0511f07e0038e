package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"realty_backend/internal/app/bootstrap"
	"realty_backend/internal/app/di"
	"realty_backend/internal/app/router"
	authadapters "realty_backend/internal/feature/auth/adapters"
	authhandler "realty_backend/internal/feature/auth/transport/handler"
	authusecase "realty_backend/internal/feature/auth/usecase"
	intakeadapters "realty_backend/internal/feature/intake/adapters"
	intakehandler "realty_backend/internal/feature/intake/transport/handler"
	intakeusecase "realty_backend/internal/feature/intake/usecase"
	listingsadapters "realty_backend/internal/feature/listings/adapters"
	listingshandler "realty_backend/internal/feature/listings/transport/handler"
	listingsusecase "realty_backend/internal/feature/listings/usecase"
	uploadsadapters "realty_backend/internal/feature/uploads/adapters"
	uploadsusecase "realty_backend/internal/feature/uploads/usecase"
	"realty_backend/internal/platform/db"
	infraredis "realty_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	database, err := db.ConnectWithRetry(db.LoadConfigFromEnv(), 60*time.Second, db.DefaultOpener)
	if err != nil {
		log.Fatal(err)
	}

	uploadRoot := os.Getenv("UPLOAD_DIR")
	if uploadRoot == "" {
		uploadRoot = "./uploads"
	}

	// Schema + first-run seeding, before any request is served.
	if err := bootstrap.Run(context.Background(), database, bootstrap.LoadSeedConfigFromEnv(), uploadRoot); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	// Redis (optional; sessions fall back to the database without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Using database-backed sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(database)
	propertyRepo := listingsadapters.NewPropertyGorm(database)
	intakeRepo := intakeadapters.NewIntakeGorm(database)
	fileStore := uploadsadapters.NewDiskStore(uploadRoot)
	sessionRepo := di.NewSessionRepository(rdb, database)

	// Database-backed sessions have no TTL eviction; sweep them periodically.
	// Redis-backed sessions expire on their own and the sweep is a no-op.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := sessionRepo.DeleteExpired(context.Background()); err != nil {
				log.Println("[WARN] Failed to delete expired sessions:", err)
			} else if n > 0 {
				log.Printf("[INFO] Deleted %d expired sessions", n)
			}
		}
	}()

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo)
	catalogUC := listingsusecase.NewCatalogUsecase(propertyRepo)
	ingestUC := uploadsusecase.NewIngestUsecase(fileStore, propertyRepo)
	adminUC := listingsusecase.NewAdminUsecase(propertyRepo, ingestUC, fileStore)
	intakeUC := intakeusecase.NewIntakeUsecase(intakeRepo, propertyRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	catalogH := listingshandler.NewCatalogHandler(catalogUC)
	adminH := listingshandler.NewAdminHandler(adminUC)
	intakeH := intakehandler.NewIntakeHandler(intakeUC, catalogUC)

	r := router.NewRouter(router.Deps{
		Auth:         authH,
		Catalog:      catalogH,
		Admin:        adminH,
		Intake:       intakeH,
		Sessions:     sessionRepo,
		TemplateGlob: "web/templates/*.html",
		UploadRoot:   uploadRoot,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
