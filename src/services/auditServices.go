package services

import (
	"log"
	"time"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"gorm.io/gorm"
)

type AuditService struct {
	db *gorm.DB
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Record appends one audit entry. It is called after the underlying mutation
// has committed, so a failed mutation never produces an entry. An audit write
// failure is logged but does not fail the already-committed operation.
func (s *AuditService) Record(actor models.Actor, action, details string) {
	entry := models.AuditEntryModel{
		Timestamp: time.Now(),
		ActorName: actor.Name,
		ActorRole: actor.Role,
		Action:    action,
		Details:   details,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("audit: failed to record %s entry: %v\n", action, err)
	}
}

// GetAllEntries retrieves the audit log, newest first. Ties on timestamp are
// broken by arrival order at the log.
func (s *AuditService) GetAllEntries() ([]models.AuditEntryModel, error) {
	var entries []models.AuditEntryModel
	result := s.db.Order("timestamp DESC, id DESC").Find(&entries)
	if result.Error != nil {
		return nil, apperrors.Persistence("list audit entries", result.Error)
	}
	return entries, nil
}
