package controllers

import (
	"net/http"
	"strconv"

	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ExhibitionController struct {
	service *services.ExhibitionService
}

func NewExhibitionController(service *services.ExhibitionService) *ExhibitionController {
	return &ExhibitionController{service: service}
}

// GetAllExhibitions handles GET requests to retrieve all exhibition records
func (c *ExhibitionController) GetAllExhibitions(ctx *gin.Context) {
	exhibitions, err := c.service.GetAllExhibitions()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exhibitions)
}

// GetExhibitionByID handles GET requests to retrieve an exhibition record by ID
func (c *ExhibitionController) GetExhibitionByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exhibition ID"})
		return
	}

	exhibition, err := c.service.GetExhibitionByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exhibition)
}

// CreateExhibition handles POST requests to create a new exhibition record
func (c *ExhibitionController) CreateExhibition(ctx *gin.Context) {
	var exhibition models.ExhibitionModel
	if err := ctx.ShouldBindJSON(&exhibition); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateExhibition(&exhibition, actorFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateExhibition handles PUT requests to update an existing exhibition record
func (c *ExhibitionController) UpdateExhibition(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exhibition ID"})
		return
	}

	var updatedData models.ExhibitionModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := c.service.UpdateExhibition(id, &updatedData, actorFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteExhibition handles DELETE requests. The response reports the
// cascade: how many artifacts were reconciled and which ones failed and
// should be retried.
func (c *ExhibitionController) DeleteExhibition(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exhibition ID"})
		return
	}

	result, err := c.service.DeleteExhibition(id, actorFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if len(result.Failures) > 0 {
		ctx.JSON(http.StatusMultiStatus, result)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
