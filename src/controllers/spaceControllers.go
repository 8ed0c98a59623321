package controllers

import (
	"net/http"
	"strconv"

	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type SpaceController struct {
	service *services.SpaceService
}

func NewSpaceController(service *services.SpaceService) *SpaceController {
	return &SpaceController{service: service}
}

// GetAllSpaces handles GET requests to retrieve all space records
func (c *SpaceController) GetAllSpaces(ctx *gin.Context) {
	spaces, err := c.service.GetAllSpaces()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, spaces)
}

// GetSpaceByID handles GET requests to retrieve a space record by ID
func (c *SpaceController) GetSpaceByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	space, err := c.service.GetSpaceByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, space)
}

// CreateSpace handles POST requests to create a new space record
func (c *SpaceController) CreateSpace(ctx *gin.Context) {
	var space models.SpaceModel
	if err := ctx.ShouldBindJSON(&space); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateSpace(&space, actorFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateSpace handles PUT requests to update an existing space record
func (c *SpaceController) UpdateSpace(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	var updatedData models.SpaceModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := c.service.UpdateSpace(id, &updatedData, actorFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteSpace handles DELETE requests to remove a space record
func (c *SpaceController) DeleteSpace(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	if err := c.service.DeleteSpace(id, actorFromContext(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
