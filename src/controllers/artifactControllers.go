package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ArtifactController struct {
	service *services.ArtifactService
}

func NewArtifactController(service *services.ArtifactService) *ArtifactController {
	return &ArtifactController{service: service}
}

func (ac *ArtifactController) GetAllArtifacts(c *gin.Context) {
	artifacts, err := ac.service.GetAllArtifacts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifacts)
}

// GetArtifactSummaries serves the dashboard listing; location, type and
// search are optional query filters.
func (ac *ArtifactController) GetArtifactSummaries(c *gin.Context) {
	summaries, err := ac.service.GetArtifactSummaries(
		c.Query("location"), c.Query("type"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (ac *ArtifactController) GetArtifactByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	artifact, err := ac.service.GetArtifactByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

func (ac *ArtifactController) CreateArtifact(c *gin.Context) {
	var artifact models.ArtifactModel
	if err := c.ShouldBindJSON(&artifact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.service.CreateArtifact(&artifact, actorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artifact)
}

func (ac *ArtifactController) UpdateArtifact(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var artifact models.ArtifactModel
	if err := c.ShouldBindJSON(&artifact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := ac.service.UpdateArtifact(id, &artifact, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ArchiveArtifact soft-deletes a record. Administrators only.
func (ac *ArtifactController) ArchiveArtifact(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := ac.service.ArchiveArtifact(id, actorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ficha arquivada"})
}

// ExportCSV streams the collection spreadsheet.
func (ac *ArtifactController) ExportCSV(c *gin.Context) {
	filename := fmt.Sprintf("nugep_acervo_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := ac.service.ExportCSV(c.Writer, actorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}
}

func (ac *ArtifactController) ImportCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := ac.service.ImportCSV(file, actorFromContext(c))
	if err != nil {
		if result != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "details": result.Errors})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ac *ArtifactController) ImportExcel(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := ac.service.ImportArtifactsFromExcel(file, actorFromContext(c))
	if err != nil {
		if result != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "details": result.Errors})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
