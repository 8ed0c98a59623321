package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"gorm.io/gorm"
)

// LifecycleService owns every write to an artifact's derived state. Each
// operation is a single read-modify-write on one artifact: the payload is
// computed from the just-read state plus the operation's inputs, inside one
// transaction, so a retry is idempotent.
type LifecycleService struct {
	db        *gorm.DB
	audit     *AuditService
	artifacts *ArtifactService // cache invalidation after derived-state rewrites
}

// NewLifecycleService creates a new instance of LifecycleService
func NewLifecycleService(db *gorm.DB, audit *AuditService, artifacts *ArtifactService) *LifecycleService {
	return &LifecycleService{db: db, audit: audit, artifacts: artifacts}
}

// EnrollResult carries the updated artifact plus a user-visible warning for
// the no-op cases (duplicate membership, lapsed exhibition, external guard).
type EnrollResult struct {
	Artifact *models.ArtifactModel `json:"artifact"`
	Warning  string                `json:"warning,omitempty"`
}

// ConservationResult reports a bulk queue update.
type ConservationResult struct {
	Updated  int      `json:"updated"`
	Failures []string `json:"failures,omitempty"`
}

// CascadeResult reports an exhibition deletion fan-out. Failures name the
// artifacts left unreconciled; re-running the deletion retries only those.
type CascadeResult struct {
	Deleted    bool     `json:"deleted"`
	Reconciled int      `json:"reconciled"`
	Failures   []string `json:"failures,omitempty"`
}

func (s *LifecycleService) loadArtifact(tx *gorm.DB, id int) (*models.ArtifactModel, error) {
	var artifact models.ArtifactModel
	err := tx.
		Preload("ExhibitionHistory").
		First(&artifact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("artifact", id)
	}
	if err != nil {
		return nil, apperrors.Persistence("load artifact", err)
	}
	return &artifact, nil
}

// EnrollInExhibition appends a membership to the artifact's exhibition
// history and re-derives its state. A duplicate membership is a warning,
// not an error, and writes nothing. A lapsed exhibition is recorded for
// history but changes no state. While the artifact sits at External the
// history is recorded without re-derivation.
func (s *LifecycleService) EnrollInExhibition(artifactID, exhibitionID int, actor models.Actor) (*EnrollResult, error) {
	var exhibition models.ExhibitionModel
	if err := s.db.First(&exhibition, exhibitionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("exhibition", exhibitionID)
		}
		return nil, apperrors.Persistence("load exhibition", err)
	}

	now := time.Now()
	warning := ""
	wrote := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		artifact, err := s.loadArtifact(tx, artifactID)
		if err != nil {
			return err
		}

		for _, membership := range artifact.ExhibitionHistory {
			if membership.Name == exhibition.Name {
				warning = fmt.Sprintf("a obra já está vinculada à exposição %q", exhibition.Name)
				return nil
			}
		}

		membership := models.ExhibitionMembershipModel{
			ArtifactID:   artifact.ID,
			ExhibitionID: exhibition.ID,
			Name:         exhibition.Name,
			StartDate:    exhibition.StartDate,
			EndDate:      exhibition.EndDate,
			Location:     exhibition.Location,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return apperrors.Persistence("append membership", err)
		}
		wrote = true

		if truncateToDay(exhibition.EndDate).Before(truncateToDay(now)) {
			warning = fmt.Sprintf("a exposição %q já encerrou; vínculo registrado apenas no histórico", exhibition.Name)
			return nil
		}
		if artifact.Location == models.LocationExternal {
			warning = "obra em localização externa; estado não rederivado"
			return nil
		}

		artifact.ExhibitionHistory = append(artifact.ExhibitionHistory, membership)
		derived := DeriveStatus(artifact, now)

		switch {
		case artifact.Status == models.StatusStored && derived.Status == models.StatusOnDisplay:
			if err := s.appendMovement(tx, artifact, models.MovementExhibitionMount, derived.Location, actor); err != nil {
				return err
			}
		case artifact.Status == models.StatusOnDisplay && derived.Location != artifact.Location:
			if err := s.appendMovement(tx, artifact, models.MovementExhibitionTransit, derived.Location, actor); err != nil {
				return err
			}
		}

		return s.applyDerived(tx, artifact, derived)
	})
	if err != nil {
		return nil, err
	}

	s.artifacts.InvalidateArtifactCache(artifactID)
	// A rejected duplicate wrote nothing and produces no audit entry.
	if wrote {
		s.audit.Record(actor, models.ActionExhibition,
			fmt.Sprintf("Adicionou obra %d à exposição %s", artifactID, exhibition.Name))
	}

	artifact, err := s.artifacts.GetArtifactByID(artifactID)
	if err != nil {
		return nil, err
	}
	return &EnrollResult{Artifact: artifact, Warning: warning}, nil
}

// WithdrawFromExhibition removes the named membership and re-derives the
// artifact's state, appending the return movement when the artifact comes
// off display.
func (s *LifecycleService) WithdrawFromExhibition(artifactID int, exhibitionName string, actor models.Actor) (*models.ArtifactModel, error) {
	changed, err := s.removeExhibitionFromArtifact(artifactID, exhibitionName, false, actor)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, apperrors.NotFound("membership", exhibitionName)
	}

	s.artifacts.InvalidateArtifactCache(artifactID)
	s.audit.Record(actor, models.ActionExhibition,
		fmt.Sprintf("Removeu obra %d da exposição %s", artifactID, exhibitionName))

	return s.artifacts.GetArtifactByID(artifactID)
}

// RecordMovement appends a movement and applies its status/location policy.
// The ledger records operator intent: the movement row is written verbatim,
// with the resolved destination, even when the policy leaves state alone.
func (s *LifecycleService) RecordMovement(artifactID int, movement *models.MovementModel, actor models.Actor) (*models.MovementModel, error) {
	if strings.TrimSpace(movement.Type) == "" {
		return nil, apperrors.Validation("o tipo de movimentação é obrigatório")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		artifact, err := s.loadArtifact(tx, artifactID)
		if err != nil {
			return err
		}

		status, location := movementPolicy(artifact, movement.Type, movement.To)

		movement.ID = 0
		movement.ArtifactID = artifact.ID
		if movement.From == "" {
			movement.From = artifact.Location
		}
		if movement.Date.IsZero() {
			movement.Date = truncateToDay(time.Now())
		}
		movement.To = location
		if movement.Responsible == "" {
			movement.Responsible = actor.Name
		}
		if err := tx.Create(movement).Error; err != nil {
			return apperrors.Persistence("append movement", err)
		}

		updates := map[string]interface{}{
			"status":   status,
			"location": location,
		}
		if err := tx.Model(artifact).Updates(updates).Error; err != nil {
			return apperrors.Persistence("update artifact state", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.artifacts.InvalidateArtifactCache(artifactID)
	s.audit.Record(actor, models.ActionMovement,
		fmt.Sprintf("%s da obra ID %d", movement.Type, artifactID))

	return movement, nil
}

// GetMovementsByArtifactID retrieves an artifact's ledger, newest first.
func (s *LifecycleService) GetMovementsByArtifactID(artifactID int) ([]models.MovementModel, error) {
	if _, err := s.loadArtifact(s.db, artifactID); err != nil {
		return nil, err
	}
	var movements []models.MovementModel
	err := s.db.
		Where("artifact_id = ?", artifactID).
		Order("date DESC, id DESC").
		Find(&movements).Error
	if err != nil {
		return nil, apperrors.Persistence("list movements", err)
	}
	return movements, nil
}

// GetAllMovements retrieves every ledger entry, newest first.
func (s *LifecycleService) GetAllMovements() ([]models.MovementModel, error) {
	var movements []models.MovementModel
	err := s.db.Order("date DESC, id DESC").Find(&movements).Error
	if err != nil {
		return nil, apperrors.Persistence("list movements", err)
	}
	return movements, nil
}

// SetConservationQueue tags each artifact with the queue. "Em Tratamento"
// also forces the status to InRestoration. Clearing the tag does not revert
// the status; a corrective movement does that. Each artifact is an
// independent write; failures are collected, not fatal.
func (s *LifecycleService) SetConservationQueue(ids []int, queue *string, actor models.Actor) (*ConservationResult, error) {
	if len(ids) == 0 {
		return nil, apperrors.Validation("selecione pelo menos uma obra")
	}
	if queue != nil {
		switch *queue {
		case models.QueueUrgent, models.QueueInTreatment, models.QueueHygiene:
		default:
			return nil, apperrors.Validation("fila de conservação inválida: %q", *queue)
		}
	}

	result := &ConservationResult{}
	for _, id := range ids {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			var artifact models.ArtifactModel
			if err := tx.First(&artifact, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("artifact", id)
				}
				return apperrors.Persistence("load artifact", err)
			}

			updates := map[string]interface{}{"conservation_queue": queue}
			if queue != nil && *queue == models.QueueInTreatment {
				updates["status"] = models.StatusInRestoration
			}
			if err := tx.Model(&artifact).Updates(updates).Error; err != nil {
				return apperrors.Persistence("update conservation queue", err)
			}
			return nil
		})
		if err != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("obra %d: %v", id, err))
			continue
		}
		s.artifacts.InvalidateArtifactCache(id)
		result.Updated++
	}

	if result.Updated > 0 {
		if queue != nil {
			s.audit.Record(actor, models.ActionConservation,
				fmt.Sprintf("Moveu %d obras para %s", result.Updated, *queue))
		} else {
			s.audit.Record(actor, models.ActionConservation,
				fmt.Sprintf("Removeu %d obras da fila de conservação", result.Updated))
		}
	}

	return result, nil
}

// DeleteExhibition removes the exhibition and strips its name from every
// artifact's history, re-deriving each one. The fan-out is not atomic:
// every artifact is an independent transaction and failures are reported
// for retry. Re-running against an already-deleted exhibition is a no-op
// and writes no further audit entries.
func (s *LifecycleService) DeleteExhibition(exhibitionID int, name string, actor models.Actor) (*CascadeResult, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("o nome da exposição é obrigatório")
	}

	var artifactIDs []int
	err := s.db.Model(&models.ExhibitionMembershipModel{}).
		Where("name = ?", name).
		Distinct().
		Pluck("artifact_id", &artifactIDs).Error
	if err != nil {
		return nil, apperrors.Persistence("list affected artifacts", err)
	}

	result := &CascadeResult{}
	for _, artifactID := range artifactIDs {
		changed, err := s.removeExhibitionFromArtifact(artifactID, name, true, actor)
		if err != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("obra %d: %v", artifactID, err))
			continue
		}
		if changed {
			s.artifacts.InvalidateArtifactCache(artifactID)
			result.Reconciled++
		}
	}

	// A failed fan-out keeps the exhibition row, so retrying the same
	// deletion reaches the leftover artifacts before the row goes away.
	if len(result.Failures) == 0 {
		del := s.db.Delete(&models.ExhibitionModel{}, exhibitionID)
		if del.Error != nil {
			return nil, apperrors.Persistence("delete exhibition", del.Error)
		}
		result.Deleted = del.RowsAffected > 0
	}

	if result.Deleted || result.Reconciled > 0 {
		s.audit.Record(actor, models.ActionExhibition,
			fmt.Sprintf("Excluiu exposição %s (%d obras reconciliadas)", name, result.Reconciled))
	}

	return result, nil
}

// removeExhibitionFromArtifact strips every membership with the given name
// from one artifact and re-derives its state, inside one transaction.
// Returns false without writing when the artifact has no such membership,
// which is what makes the deletion cascade idempotent. synthetic selects
// the movement type written when the artifact comes off display: the
// deleted-exhibition return instead of a regular dismount.
func (s *LifecycleService) removeExhibitionFromArtifact(artifactID int, exhibitionName string, synthetic bool, actor models.Actor) (bool, error) {
	changed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		artifact, err := s.loadArtifact(tx, artifactID)
		if err != nil {
			return err
		}

		remaining := artifact.ExhibitionHistory[:0:0]
		found := false
		for _, membership := range artifact.ExhibitionHistory {
			if membership.Name == exhibitionName {
				found = true
				continue
			}
			remaining = append(remaining, membership)
		}
		if !found {
			return nil
		}
		changed = true

		if err := tx.Where("artifact_id = ? AND name = ?", artifactID, exhibitionName).
			Delete(&models.ExhibitionMembershipModel{}).Error; err != nil {
			return apperrors.Persistence("remove membership", err)
		}

		if artifact.Location == models.LocationExternal {
			return nil
		}

		artifact.ExhibitionHistory = remaining
		derived := DeriveStatus(artifact, time.Now())

		if derived.Status != artifact.Status || derived.Location != artifact.Location {
			movementType := models.MovementExhibitionUnmount
			if synthetic {
				movementType = models.MovementExhibitionDeleted
			} else if derived.Status == models.StatusOnDisplay {
				movementType = models.MovementExhibitionTransit
			}
			if err := s.appendMovement(tx, artifact, movementType, derived.Location, actor); err != nil {
				return err
			}
		}

		return s.applyDerived(tx, artifact, derived)
	})
	return changed, err
}

func (s *LifecycleService) appendMovement(tx *gorm.DB, artifact *models.ArtifactModel, movementType, to string, actor models.Actor) error {
	movement := models.MovementModel{
		ArtifactID:  artifact.ID,
		Date:        truncateToDay(time.Now()),
		Type:        movementType,
		From:        artifact.Location,
		To:          to,
		Responsible: actor.Name,
	}
	if err := tx.Create(&movement).Error; err != nil {
		return apperrors.Persistence("append movement", err)
	}
	return nil
}

func (s *LifecycleService) applyDerived(tx *gorm.DB, artifact *models.ArtifactModel, derived DerivedState) error {
	updates := map[string]interface{}{
		"status":             derived.Status,
		"location":           derived.Location,
		"current_exhibition": derived.CurrentExhibition,
	}
	if err := tx.Model(artifact).Updates(updates).Error; err != nil {
		return apperrors.Persistence("update derived state", err)
	}
	return nil
}
