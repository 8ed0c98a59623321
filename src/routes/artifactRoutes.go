package routes

import (
	"github.com/NUGEP/NUGEP-Backend/src/controllers"
	"github.com/NUGEP/NUGEP-Backend/src/middleware"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupArtifactRoutes(router *gin.Engine, artifacts *services.ArtifactService, lifecycle *services.LifecycleService) {
	controller := controllers.NewArtifactController(artifacts)
	lifecycleController := controllers.NewLifecycleController(lifecycle)

	// Protected routes
	artifactGroup := router.Group("/artifacts")
	artifactGroup.Use(middleware.AuthMiddleware())
	{
		// CRUD
		artifactGroup.GET("", controller.GetAllArtifacts)
		artifactGroup.GET("/summaries", controller.GetArtifactSummaries)
		artifactGroup.GET("/:id", controller.GetArtifactByID)
		artifactGroup.POST("/", controller.CreateArtifact)
		artifactGroup.PUT("/:id", controller.UpdateArtifact)
		artifactGroup.DELETE("/:id", controller.ArchiveArtifact)

		// Movement ledger
		artifactGroup.GET("/:id/movements", lifecycleController.GetArtifactMovements)
		artifactGroup.POST("/:id/movements", lifecycleController.RecordMovement)

		// Exhibition enrollment
		artifactGroup.POST("/:id/exhibitions", lifecycleController.EnrollInExhibition)
		artifactGroup.DELETE("/:id/exhibitions/:name", lifecycleController.WithdrawFromExhibition)

		// Conservation queue (batch)
		artifactGroup.POST("/conservation", lifecycleController.SetConservationQueue)

		// Spreadsheet import/export
		artifactGroup.GET("/export/csv", controller.ExportCSV)
		artifactGroup.POST("/import/csv", controller.ImportCSV)
		artifactGroup.POST("/import/excel", controller.ImportExcel)
	}

	// Global movement ledger
	movementGroup := router.Group("/movements")
	movementGroup.Use(middleware.AuthMiddleware())
	{
		movementGroup.GET("", lifecycleController.GetAllMovements)
	}
}
