package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/dtos"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type ArtifactService struct {
	db    *gorm.DB
	audit *AuditService
	cache map[string]*CacheEntry
	mutex sync.RWMutex

	// strictRegNumbers rejects duplicate registration numbers. Off by
	// default: the observed behavior allows duplicates.
	strictRegNumbers bool
}

func NewArtifactService(db *gorm.DB, audit *AuditService, strictRegNumbers bool) *ArtifactService {
	service := &ArtifactService{
		db:               db,
		audit:            audit,
		cache:            make(map[string]*CacheEntry),
		strictRegNumbers: strictRegNumbers,
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *ArtifactService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *ArtifactService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *ArtifactService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *ArtifactService) invalidateCache(pattern string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		if strings.HasPrefix(key, pattern) {
			delete(s.cache, key)
		}
	}
}

// InvalidateArtifactCache drops every cached view of one artifact. The
// lifecycle service calls this after rewriting derived state.
func (s *ArtifactService) InvalidateArtifactCache(id int) {
	s.invalidateCache(fmt.Sprintf("artifact_%d", id))
	s.invalidateCache("all_artifacts")
	s.invalidateCache("artifact_summaries")
}

// ======================= QUERIES =======================

func (s *ArtifactService) GetAllArtifacts() ([]models.ArtifactModel, error) {
	cacheKey := "all_artifacts"

	if cached, found := s.getCache(cacheKey); found {
		return cached.([]models.ArtifactModel), nil
	}

	var artifacts []models.ArtifactModel
	err := s.db.
		Preload("CustomFields").
		Preload("ExhibitionHistory").
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, id DESC")
		}).
		Find(&artifacts).Error
	if err != nil {
		return nil, apperrors.Persistence("list artifacts", err)
	}

	// Save to cache for 5 minutes
	s.setCache(cacheKey, artifacts, 5*time.Minute)

	return artifacts, nil
}

func (s *ArtifactService) GetArtifactByID(id int) (*models.ArtifactModel, error) {
	cacheKey := fmt.Sprintf("artifact_%d", id)

	if cached, found := s.getCache(cacheKey); found {
		artifact := cached.(models.ArtifactModel)
		return &artifact, nil
	}

	var artifact models.ArtifactModel
	err := s.db.
		Preload("CustomFields").
		Preload("ExhibitionHistory").
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, id DESC")
		}).
		Preload("RelatedTo").
		First(&artifact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("artifact", id)
	}
	if err != nil {
		return nil, apperrors.Persistence("load artifact", err)
	}

	// Save to cache for 10 minutes
	s.setCache(cacheKey, artifact, 10*time.Minute)

	return &artifact, nil
}

// GetArtifactSummaries returns the lightweight listing used by dashboards,
// optionally filtered by location, type and a title/regNumber search term.
func (s *ArtifactService) GetArtifactSummaries(location, artifactType, search string) ([]dtos.ArtifactSummaryDTO, error) {
	cacheKey := fmt.Sprintf("artifact_summaries_%s_%s_%s", location, artifactType, search)

	if cached, found := s.getCache(cacheKey); found {
		return cached.([]dtos.ArtifactSummaryDTO), nil
	}

	query := s.db.Model(&models.ArtifactModel{})
	if location != "" {
		query = query.Where("location = ?", location)
	}
	if artifactType != "" {
		query = query.Where("type = ?", artifactType)
	}
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(reg_number) LIKE ?", term, term)
	}

	var rows []models.ArtifactModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, apperrors.Persistence("list artifact summaries", err)
	}

	summaries := make([]dtos.ArtifactSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dtos.ArtifactSummaryDTO{
			ID:                row.ID,
			RegNumber:         row.RegNumber,
			Title:             row.Title,
			Artist:            row.Artist,
			Year:              row.Year,
			Type:              row.Type,
			Status:            row.Status,
			Location:          row.Location,
			CurrentExhibition: row.CurrentExhibition,
			ConservationQueue: row.ConservationQueue,
		})
	}

	s.setCache(cacheKey, summaries, 5*time.Minute)

	return summaries, nil
}

// ======================= MUTATIONS =======================

// CreateArtifact catalogs a new artifact: fresh identity, empty histories,
// and the initial entry movement into its declared location.
func (s *ArtifactService) CreateArtifact(artifact *models.ArtifactModel, actor models.Actor) error {
	if strings.TrimSpace(artifact.Title) == "" {
		return apperrors.Validation("o título é obrigatório")
	}
	if strings.TrimSpace(artifact.RegNumber) == "" {
		return apperrors.Validation("o número de registro é obrigatório")
	}
	if err := s.checkRegNumber(artifact.RegNumber, 0); err != nil {
		return err
	}

	if artifact.Location == "" {
		artifact.Location = models.DefaultHomeLocation
	}
	if artifact.HomeLocation == "" {
		artifact.HomeLocation = artifact.Location
	}
	if artifact.Status == "" {
		artifact.Status = models.StatusStored
	}
	artifact.CreatedBy = actor.Name
	artifact.ExhibitionHistory = nil
	artifact.Movements = []models.MovementModel{{
		Date:        truncateToDay(time.Now()),
		Type:        models.MovementInitialEntry,
		From:        models.LocationExternal,
		To:          artifact.Location,
		Responsible: actor.Name,
	}}

	if err := s.db.Create(artifact).Error; err != nil {
		return apperrors.Persistence("create artifact", err)
	}

	s.invalidateCache("all_artifacts")
	s.invalidateCache("artifact_summaries")
	s.audit.Record(actor, models.ActionCatalog, fmt.Sprintf("Nova ficha: %s", artifact.Title))

	return nil
}

// UpdateArtifact edits descriptive fields. Derived fields (status, location,
// current exhibition) stay owned by the lifecycle service and are never
// written here.
func (s *ArtifactService) UpdateArtifact(id int, updated *models.ArtifactModel, actor models.Actor) (*models.ArtifactModel, error) {
	if strings.TrimSpace(updated.Title) == "" {
		return nil, apperrors.Validation("o título é obrigatório")
	}
	if strings.TrimSpace(updated.RegNumber) == "" {
		return nil, apperrors.Validation("o número de registro é obrigatório")
	}
	if err := s.checkRegNumber(updated.RegNumber, id); err != nil {
		return nil, err
	}

	var artifact models.ArtifactModel
	if err := s.db.First(&artifact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("artifact", id)
		}
		return nil, apperrors.Persistence("load artifact", err)
	}

	descriptive := map[string]interface{}{
		"reg_number":    updated.RegNumber,
		"title":         updated.Title,
		"artist":        updated.Artist,
		"year":          updated.Year,
		"type":          updated.Type,
		"condition":     updated.Condition,
		"description":   updated.Description,
		"observations":  updated.Observations,
		"provenance":    updated.Provenance,
		"copyright":     updated.Copyright,
		"audio_desc":    updated.AudioDesc,
		"image":         updated.Image,
		"related_to_id": updated.RelatedToID,
	}
	if updated.HomeLocation != "" {
		descriptive["home_location"] = updated.HomeLocation
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&artifact).Updates(descriptive).Error; err != nil {
			return err
		}
		if updated.CustomFields != nil {
			if err := tx.Where("artifact_id = ?", id).Delete(&models.CustomFieldModel{}).Error; err != nil {
				return err
			}
			for i := range updated.CustomFields {
				updated.CustomFields[i].ID = 0
				updated.CustomFields[i].ArtifactID = id
			}
			if len(updated.CustomFields) > 0 {
				if err := tx.Create(&updated.CustomFields).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Persistence("update artifact", err)
	}

	s.InvalidateArtifactCache(id)
	s.audit.Record(actor, models.ActionEdit, fmt.Sprintf("Editou ficha: %s", artifact.Title))

	return s.GetArtifactByID(id)
}

// ArchiveArtifact soft-deletes an artifact. Only administrators may archive;
// records are never physically purged.
func (s *ArtifactService) ArchiveArtifact(id int, actor models.Actor) error {
	if actor.Role != models.RoleAdministrator {
		return apperrors.Permission("apenas administradores podem arquivar fichas")
	}

	var artifact models.ArtifactModel
	if err := s.db.First(&artifact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("artifact", id)
		}
		return apperrors.Persistence("load artifact", err)
	}

	if err := s.db.Delete(&artifact).Error; err != nil {
		return apperrors.Persistence("archive artifact", err)
	}

	s.InvalidateArtifactCache(id)
	s.audit.Record(actor, models.ActionArchive, fmt.Sprintf("Arquivou: %s", artifact.Title))

	return nil
}

func (s *ArtifactService) checkRegNumber(regNumber string, excludeID int) error {
	if !s.strictRegNumbers {
		return nil
	}
	var count int64
	query := s.db.Model(&models.ArtifactModel{}).Where("reg_number = ?", regNumber)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Persistence("check registration number", err)
	}
	if count > 0 {
		return apperrors.Validation("número de registro %s já existe", regNumber)
	}
	return nil
}
