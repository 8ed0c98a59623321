package routes

import (
	"github.com/NUGEP/NUGEP-Backend/src/controllers"
	"github.com/NUGEP/NUGEP-Backend/src/middleware"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAuditRoutes(router *gin.Engine, service *services.AuditService) {
	controller := controllers.NewAuditController(service)

	// Protected routes
	auditGroup := router.Group("/audit")
	auditGroup.Use(middleware.AuthMiddleware())
	{
		auditGroup.GET("", controller.GetAllEntries)
	}
}
