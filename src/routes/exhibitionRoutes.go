package routes

import (
	"github.com/NUGEP/NUGEP-Backend/src/controllers"
	"github.com/NUGEP/NUGEP-Backend/src/middleware"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupExhibitionRoutes(router *gin.Engine, service *services.ExhibitionService) {
	controller := controllers.NewExhibitionController(service)

	// Protected routes
	exhibitionGroup := router.Group("/exhibitions")
	exhibitionGroup.Use(middleware.AuthMiddleware())
	{
		exhibitionGroup.GET("", controller.GetAllExhibitions)
		exhibitionGroup.GET("/:id", controller.GetExhibitionByID)
		exhibitionGroup.POST("/", controller.CreateExhibition)
		exhibitionGroup.PUT("/:id", controller.UpdateExhibition)
		exhibitionGroup.DELETE("/:id", controller.DeleteExhibition)
	}
}
