package main

import (
	"log"
	"os"

	"github.com/NUGEP/NUGEP-Backend/src/db"
	"github.com/NUGEP/NUGEP-Backend/src/middleware"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/NUGEP/NUGEP-Backend/src/routes"
	"github.com/NUGEP/NUGEP-Backend/src/seed"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.SpaceModel{},
		&models.ExhibitionModel{},
		&models.ArtifactModel{},
		&models.CustomFieldModel{},
		&models.ExhibitionMembershipModel{},
		&models.MovementModel{},
		&models.AuditEntryModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	seed.Seed(db)

	// Token signing key
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	middleware.SetSecretKey(secret)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	auditService := services.NewAuditService(db)
	artifactService := services.NewArtifactService(db, auditService,
		os.Getenv("STRICT_REG_NUMBERS") == "true")
	lifecycleService := services.NewLifecycleService(db, auditService, artifactService)
	exhibitionService := services.NewExhibitionService(db, auditService, lifecycleService)
	spaceService := services.NewSpaceService(db, auditService)
	userService := services.NewUserService(db, auditService)

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupArtifactRoutes(router, artifactService, lifecycleService)
	routes.SetupExhibitionRoutes(router, exhibitionService)
	routes.SetupSpaceRoutes(router, spaceService)
	routes.SetupAuditRoutes(router, auditService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "NUGEP acervo API")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
