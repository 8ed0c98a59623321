package controllers

import (
	"net/http"

	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type AuditController struct {
	service *services.AuditService
}

func NewAuditController(service *services.AuditService) *AuditController {
	return &AuditController{service: service}
}

// GetAllEntries handles GET requests for the audit log, newest first
func (c *AuditController) GetAllEntries(ctx *gin.Context) {
	entries, err := c.service.GetAllEntries()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
