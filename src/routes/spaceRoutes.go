package routes

import (
	"github.com/NUGEP/NUGEP-Backend/src/controllers"
	"github.com/NUGEP/NUGEP-Backend/src/middleware"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupSpaceRoutes(router *gin.Engine, service *services.SpaceService) {
	controller := controllers.NewSpaceController(service)

	// Protected routes
	spaceGroup := router.Group("/spaces")
	spaceGroup.Use(middleware.AuthMiddleware())
	{
		spaceGroup.GET("", controller.GetAllSpaces)
		spaceGroup.GET("/:id", controller.GetSpaceByID)
		spaceGroup.POST("/", controller.CreateSpace)
		spaceGroup.PUT("/:id", controller.UpdateSpace)
		spaceGroup.DELETE("/:id", controller.DeleteSpace)
	}
}
