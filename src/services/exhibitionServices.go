package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"gorm.io/gorm"
)

type ExhibitionService struct {
	db        *gorm.DB
	audit     *AuditService
	lifecycle *LifecycleService
}

// NewExhibitionService creates a new instance of ExhibitionService
func NewExhibitionService(db *gorm.DB, audit *AuditService, lifecycle *LifecycleService) *ExhibitionService {
	return &ExhibitionService{db: db, audit: audit, lifecycle: lifecycle}
}

// GetAllExhibitions retrieves all Exhibition records from the database
func (s *ExhibitionService) GetAllExhibitions() ([]models.ExhibitionModel, error) {
	var exhibitions []models.ExhibitionModel
	result := s.db.Order("start_date DESC").Find(&exhibitions)
	if result.Error != nil {
		return nil, apperrors.Persistence("list exhibitions", result.Error)
	}
	return exhibitions, nil
}

// GetExhibitionByID retrieves an Exhibition record by its ID
func (s *ExhibitionService) GetExhibitionByID(id int) (*models.ExhibitionModel, error) {
	var exhibition models.ExhibitionModel
	result := s.db.First(&exhibition, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("exhibition", id)
	}
	if result.Error != nil {
		return nil, apperrors.Persistence("load exhibition", result.Error)
	}
	return &exhibition, nil
}

// CreateExhibition creates a new Exhibition record in the database
func (s *ExhibitionService) CreateExhibition(exhibition *models.ExhibitionModel, actor models.Actor) (*models.ExhibitionModel, error) {
	if err := validateExhibition(exhibition); err != nil {
		return nil, err
	}
	if err := s.db.Create(exhibition).Error; err != nil {
		return nil, apperrors.Persistence("create exhibition", err)
	}
	s.audit.Record(actor, models.ActionExhibition, fmt.Sprintf("Criou exposição: %s", exhibition.Name))
	return exhibition, nil
}

// UpdateExhibition updates an existing Exhibition record. Memberships are
// denormalized copies, so past enrollments keep the data they were made with.
func (s *ExhibitionService) UpdateExhibition(id int, updated *models.ExhibitionModel, actor models.Actor) (*models.ExhibitionModel, error) {
	if err := validateExhibition(updated); err != nil {
		return nil, err
	}

	exhibition, err := s.GetExhibitionByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(exhibition).Updates(updated).Error; err != nil {
		return nil, apperrors.Persistence("update exhibition", err)
	}

	s.audit.Record(actor, models.ActionExhibition, fmt.Sprintf("Editou exposição: %s", exhibition.Name))
	return exhibition, nil
}

// DeleteExhibition removes the exhibition and reconciles every artifact that
// cites it, through the lifecycle cascade.
func (s *ExhibitionService) DeleteExhibition(id int, actor models.Actor) (*CascadeResult, error) {
	exhibition, err := s.GetExhibitionByID(id)
	if err != nil {
		return nil, err
	}
	return s.lifecycle.DeleteExhibition(exhibition.ID, exhibition.Name, actor)
}

func validateExhibition(exhibition *models.ExhibitionModel) error {
	if strings.TrimSpace(exhibition.Name) == "" {
		return apperrors.Validation("o nome da exposição é obrigatório")
	}
	if strings.TrimSpace(exhibition.Location) == "" {
		return apperrors.Validation("a localização da exposição é obrigatória")
	}
	if exhibition.StartDate.IsZero() || exhibition.EndDate.IsZero() {
		return apperrors.Validation("as datas de início e fim são obrigatórias")
	}
	if exhibition.EndDate.Before(exhibition.StartDate) {
		return apperrors.Validation("a data de fim não pode ser anterior à de início")
	}
	return nil
}
