package routes

import (
	"github.com/NUGEP/NUGEP-Backend/src/controllers"
	"github.com/NUGEP/NUGEP-Backend/src/middleware"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	controller := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", controller.AuthenticateUser)
	router.POST("/register", controller.CreateUser)

	// Protected routes
	userGroup := router.Group("/users")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("", controller.GetAllUsers)
		userGroup.DELETE("/:id", controller.DeleteUser)
	}
}
