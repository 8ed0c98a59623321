package controllers

import (
	"net/http"
	"strconv"

	"github.com/NUGEP/NUGEP-Backend/src/dtos"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

// LifecycleController exposes the engine operations: movements, exhibition
// enrollment/withdrawal and the conservation queue.
type LifecycleController struct {
	service *services.LifecycleService
}

func NewLifecycleController(service *services.LifecycleService) *LifecycleController {
	return &LifecycleController{service: service}
}

// GetAllMovements handles GET requests for the global movement ledger
func (lc *LifecycleController) GetAllMovements(c *gin.Context) {
	movements, err := lc.service.GetAllMovements()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

// GetArtifactMovements handles GET requests for one artifact's ledger
func (lc *LifecycleController) GetArtifactMovements(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	movements, err := lc.service.GetMovementsByArtifactID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

// RecordMovement handles POST requests to append a movement to an artifact
func (lc *LifecycleController) RecordMovement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var movement models.MovementModel
	if err := c.ShouldBindJSON(&movement); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := lc.service.RecordMovement(id, &movement, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// EnrollInExhibition handles POST requests to add an artifact to an exhibition
func (lc *LifecycleController) EnrollInExhibition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var payload dtos.EnrollDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := lc.service.EnrollInExhibition(id, payload.ExhibitionID, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// WithdrawFromExhibition handles DELETE requests to remove an artifact's
// membership in the named exhibition
func (lc *LifecycleController) WithdrawFromExhibition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	name := c.Param("name")
	artifact, err := lc.service.WithdrawFromExhibition(id, name, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

// SetConservationQueue handles POST requests to tag a batch of artifacts
func (lc *LifecycleController) SetConservationQueue(c *gin.Context) {
	var payload dtos.ConservationQueueDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := lc.service.SetConservationQueue(payload.ArtifactIDs, payload.Queue, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
