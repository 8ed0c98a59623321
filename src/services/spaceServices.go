package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"gorm.io/gorm"
)

type SpaceService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewSpaceService creates a new instance of SpaceService
func NewSpaceService(db *gorm.DB, audit *AuditService) *SpaceService {
	return &SpaceService{db: db, audit: audit}
}

// GetAllSpaces retrieves all Space records from the database
func (s *SpaceService) GetAllSpaces() ([]models.SpaceModel, error) {
	var spaces []models.SpaceModel
	result := s.db.Order("name ASC").Find(&spaces)
	if result.Error != nil {
		return nil, apperrors.Persistence("list spaces", result.Error)
	}
	return spaces, nil
}

// GetSpaceByID retrieves a Space record by its ID
func (s *SpaceService) GetSpaceByID(id int) (*models.SpaceModel, error) {
	var space models.SpaceModel
	result := s.db.First(&space, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("space", id)
	}
	if result.Error != nil {
		return nil, apperrors.Persistence("load space", result.Error)
	}
	return &space, nil
}

// CreateSpace creates a new Space record in the database
func (s *SpaceService) CreateSpace(space *models.SpaceModel, actor models.Actor) (*models.SpaceModel, error) {
	if strings.TrimSpace(space.Name) == "" {
		return nil, apperrors.Validation("o nome do espaço é obrigatório")
	}

	var count int64
	if err := s.db.Model(&models.SpaceModel{}).Where("name = ?", space.Name).Count(&count).Error; err != nil {
		return nil, apperrors.Persistence("check space name", err)
	}
	if count > 0 {
		return nil, apperrors.Validation("já existe um espaço chamado %q", space.Name)
	}

	if err := s.db.Create(space).Error; err != nil {
		return nil, apperrors.Persistence("create space", err)
	}
	s.audit.Record(actor, models.ActionSpace, fmt.Sprintf("Criou espaço: %s", space.Name))
	return space, nil
}

// UpdateSpace updates an existing Space record in the database
func (s *SpaceService) UpdateSpace(id int, updated *models.SpaceModel, actor models.Actor) (*models.SpaceModel, error) {
	space, err := s.GetSpaceByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(space).Updates(updated).Error; err != nil {
		return nil, apperrors.Persistence("update space", err)
	}
	s.audit.Record(actor, models.ActionSpace, fmt.Sprintf("Editou espaço: %s", space.Name))
	return space, nil
}

// DeleteSpace removes a Space record from the database
func (s *SpaceService) DeleteSpace(id int, actor models.Actor) error {
	space, err := s.GetSpaceByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.SpaceModel{}, id).Error; err != nil {
		return apperrors.Persistence("delete space", err)
	}
	s.audit.Record(actor, models.ActionSpace, fmt.Sprintf("Removeu espaço: %s", space.Name))
	return nil
}
