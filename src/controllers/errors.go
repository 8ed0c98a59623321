package controllers

import (
	"net/http"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsPermission(err):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// actorFromContext rebuilds the operator identity set by the auth middleware.
func actorFromContext(ctx *gin.Context) models.Actor {
	actor := models.Actor{Name: "Sistema", Role: "System"}
	if name, ok := ctx.Get("actorName"); ok {
		if s, ok := name.(string); ok && s != "" {
			actor.Name = s
		}
	}
	if role, ok := ctx.Get("actorRole"); ok {
		if s, ok := role.(string); ok && s != "" {
			actor.Role = s
		}
	}
	return actor
}
