package services

import (
	"testing"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollPutsStoredArtifactOnDisplay(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")
	exhibition := env.seedExhibition(t, "Arte Moderna", "Galeria Principal", daysFromNow(-5), daysFromNow(5))

	result, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)
	assert.Empty(t, result.Warning)

	saved := result.Artifact
	assert.Equal(t, models.StatusOnDisplay, saved.Status)
	assert.Equal(t, "Galeria Principal", saved.Location)
	require.NotNil(t, saved.CurrentExhibition)
	assert.Equal(t, "Arte Moderna", *saved.CurrentExhibition)

	// Entrada Inicial plus the mount.
	require.Len(t, saved.Movements, 2)
	mount := saved.Movements[0]
	assert.Equal(t, models.MovementExhibitionMount, mount.Type)
	assert.Equal(t, "Reserva Técnica A", mount.From)
	assert.Equal(t, "Galeria Principal", mount.To)
}

func TestWithdrawReturnsArtifactHome(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")
	exhibition := env.seedExhibition(t, "Arte Moderna", "Galeria Principal", daysFromNow(-5), daysFromNow(5))

	_, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	saved, err := env.lifecycle.WithdrawFromExhibition(artifact.ID, "Arte Moderna", curatorActor)
	require.NoError(t, err)

	assert.Equal(t, models.StatusStored, saved.Status)
	assert.Equal(t, "Reserva Técnica A", saved.Location)
	assert.Nil(t, saved.CurrentExhibition)
	assert.Empty(t, saved.ExhibitionHistory)

	require.Len(t, saved.Movements, 3)
	unmount := saved.Movements[0]
	assert.Equal(t, models.MovementExhibitionUnmount, unmount.Type)
	assert.Equal(t, "Galeria Principal", unmount.From)
	assert.Equal(t, "Reserva Técnica A", unmount.To)
}

func TestWithdrawAtHomeSpaceStillWritesDismount(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Galeria Principal")
	exhibition := env.seedExhibition(t, "Na Própria Casa", "Galeria Principal", daysFromNow(-5), daysFromNow(5))

	_, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	saved, err := env.lifecycle.WithdrawFromExhibition(artifact.ID, "Na Própria Casa", curatorActor)
	require.NoError(t, err)

	assert.Equal(t, models.StatusStored, saved.Status)
	assert.Equal(t, "Galeria Principal", saved.Location)

	// The status flip is ledgered even though the location never changed.
	require.Len(t, saved.Movements, 3)
	unmount := saved.Movements[0]
	assert.Equal(t, models.MovementExhibitionUnmount, unmount.Type)
	assert.Equal(t, "Galeria Principal", unmount.From)
	assert.Equal(t, "Galeria Principal", unmount.To)
}

func TestWithdrawUnknownMembership(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")

	_, err := env.lifecycle.WithdrawFromExhibition(artifact.ID, "Inexistente", curatorActor)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestEnrollDuplicateIsWarningNotError(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")
	exhibition := env.seedExhibition(t, "Arte Moderna", "Galeria Principal", daysFromNow(-5), daysFromNow(5))

	_, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)
	auditBefore := env.auditCount(t, models.ActionExhibition)

	result, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Warning)
	assert.Len(t, result.Artifact.ExhibitionHistory, 1)
	assert.Equal(t, auditBefore, env.auditCount(t, models.ActionExhibition))
}

func TestEnrollLapsedExhibitionRecordsHistoryOnly(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")
	exhibition := env.seedExhibition(t, "Encerrada", "Sala 2", daysFromNow(-30), daysFromNow(-10))

	result, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Warning)
	assert.Len(t, result.Artifact.ExhibitionHistory, 1)
	assert.Equal(t, models.StatusStored, result.Artifact.Status)
	assert.Equal(t, "Reserva Técnica A", result.Artifact.Location)
	// History only: no mount movement.
	require.Len(t, result.Artifact.Movements, 1)
}

func TestEnrollWhileExternalSkipsDerivation(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")
	exhibition := env.seedExhibition(t, "Arte Moderna", "Galeria Principal", daysFromNow(-5), daysFromNow(5))

	_, err := env.lifecycle.RecordMovement(artifact.ID,
		&models.MovementModel{Type: models.MovementLoanOut}, curatorActor)
	require.NoError(t, err)

	result, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Warning)
	assert.Len(t, result.Artifact.ExhibitionHistory, 1)
	assert.Equal(t, models.StatusOnLoan, result.Artifact.Status)
	assert.Equal(t, models.LocationExternal, result.Artifact.Location)
}

func TestEnrollTransitBetweenExhibitions(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")
	first := env.seedExhibition(t, "Primeira", "Galeria Principal", daysFromNow(-5), daysFromNow(5))
	second := env.seedExhibition(t, "Segunda", "Sala 2", daysFromNow(-2), daysFromNow(8))

	_, err := env.lifecycle.EnrollInExhibition(artifact.ID, first.ID, curatorActor)
	require.NoError(t, err)

	result, err := env.lifecycle.EnrollInExhibition(artifact.ID, second.ID, curatorActor)
	require.NoError(t, err)

	saved := result.Artifact
	assert.Equal(t, models.StatusOnDisplay, saved.Status)
	assert.Equal(t, "Sala 2", saved.Location)
	assert.Equal(t, "Segunda", *saved.CurrentExhibition)

	transit := saved.Movements[0]
	assert.Equal(t, models.MovementExhibitionTransit, transit.Type)
	assert.Equal(t, "Galeria Principal", transit.From)
	assert.Equal(t, "Sala 2", transit.To)
}

func TestRecordMovementLoanOutDefaultsToExternal(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")

	movement, err := env.lifecycle.RecordMovement(artifact.ID,
		&models.MovementModel{Type: models.MovementLoanOut, Responsible: "A. Silva"}, curatorActor)
	require.NoError(t, err)

	assert.Equal(t, "Reserva Técnica A", movement.From)
	assert.Equal(t, models.LocationExternal, movement.To)
	assert.Equal(t, "A. Silva", movement.Responsible)
	assert.False(t, movement.Date.IsZero())

	saved := env.reload(t, artifact.ID)
	assert.Equal(t, models.StatusOnLoan, saved.Status)
	assert.Equal(t, models.LocationExternal, saved.Location)
}

func TestRecordMovementRestorationRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")

	_, err := env.lifecycle.RecordMovement(artifact.ID,
		&models.MovementModel{Type: models.MovementRestorationOut}, curatorActor)
	require.NoError(t, err)

	saved := env.reload(t, artifact.ID)
	assert.Equal(t, models.StatusInRestoration, saved.Status)
	assert.Equal(t, models.SpaceRestorationLab, saved.Location)

	_, err = env.lifecycle.RecordMovement(artifact.ID,
		&models.MovementModel{Type: models.MovementRestorationReturn, To: "Reserva Técnica A"}, curatorActor)
	require.NoError(t, err)

	saved = env.reload(t, artifact.ID)
	assert.Equal(t, models.StatusStored, saved.Status)
	assert.Equal(t, "Reserva Técnica A", saved.Location)
}

func TestRecordMovementRequiresType(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")

	_, err := env.lifecycle.RecordMovement(artifact.ID, &models.MovementModel{}, curatorActor)
	assert.True(t, apperrors.IsValidation(err))

	_, err = env.lifecycle.RecordMovement(9999,
		&models.MovementModel{Type: models.MovementInternalTransit}, curatorActor)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMovementLedgerOrdering(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")

	_, err := env.lifecycle.RecordMovement(artifact.ID,
		&models.MovementModel{Type: models.MovementInternalTransit, To: "Sala 2"}, curatorActor)
	require.NoError(t, err)
	_, err = env.lifecycle.RecordMovement(artifact.ID,
		&models.MovementModel{Type: models.MovementInternalTransit, To: "Reserva Técnica B"}, curatorActor)
	require.NoError(t, err)

	movements, err := env.lifecycle.GetMovementsByArtifactID(artifact.ID)
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.Equal(t, "Reserva Técnica B", movements[0].To)
	assert.Equal(t, models.MovementInitialEntry, movements[2].Type)

	all, err := env.lifecycle.GetAllMovements()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteExhibitionReconcilesArtifacts(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra Y", "Reserva Técnica A")
	exhibition := env.seedExhibition(t, "Efêmera", "Sala 2", daysFromNow(-5), daysFromNow(5))

	_, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	result, err := env.exhibitions.DeleteExhibition(exhibition.ID, curatorActor)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, 1, result.Reconciled)
	assert.Empty(t, result.Failures)

	saved := env.reload(t, artifact.ID)
	assert.Empty(t, saved.ExhibitionHistory)
	assert.Equal(t, models.StatusStored, saved.Status)
	assert.Equal(t, "Reserva Técnica A", saved.Location)

	returnMove := saved.Movements[0]
	assert.Equal(t, models.MovementExhibitionDeleted, returnMove.Type)
	assert.Equal(t, "Sala 2", returnMove.From)
	assert.Equal(t, "Reserva Técnica A", returnMove.To)
}

func TestDeleteExhibitionAtHomeSpaceWritesReturn(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra Y", "Sala 2")
	exhibition := env.seedExhibition(t, "Local", "Sala 2", daysFromNow(-5), daysFromNow(5))

	_, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	_, err = env.exhibitions.DeleteExhibition(exhibition.ID, curatorActor)
	require.NoError(t, err)

	saved := env.reload(t, artifact.ID)
	assert.Equal(t, models.StatusStored, saved.Status)
	require.Len(t, saved.Movements, 3)
	assert.Equal(t, models.MovementExhibitionDeleted, saved.Movements[0].Type)
}

func TestDeleteExhibitionKeepsRowWhileFailuresRemain(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra Y", "Reserva Técnica A")
	exhibition := env.seedExhibition(t, "Efêmera", "Sala 2", daysFromNow(-5), daysFromNow(5))

	_, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	// Membership row whose artifact is gone: the fan-out cannot reconcile it.
	orphan := models.ExhibitionMembershipModel{
		ArtifactID:   9999,
		ExhibitionID: exhibition.ID,
		Name:         exhibition.Name,
		StartDate:    exhibition.StartDate,
		EndDate:      exhibition.EndDate,
		Location:     exhibition.Location,
	}
	require.NoError(t, env.db.Create(&orphan).Error)

	result, err := env.exhibitions.DeleteExhibition(exhibition.ID, curatorActor)
	require.NoError(t, err)
	assert.False(t, result.Deleted)
	assert.Equal(t, 1, result.Reconciled)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "9999")

	// The row survives, so the same endpoint can retry the leftovers.
	_, err = env.exhibitions.GetExhibitionByID(exhibition.ID)
	require.NoError(t, err)

	require.NoError(t, env.db.Delete(&models.ExhibitionMembershipModel{}, orphan.ID).Error)

	retry, err := env.exhibitions.DeleteExhibition(exhibition.ID, curatorActor)
	require.NoError(t, err)
	assert.True(t, retry.Deleted)
	assert.Empty(t, retry.Failures)
}

func TestDeleteExhibitionIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra Y", "Reserva Técnica A")
	exhibition := env.seedExhibition(t, "Efêmera", "Sala 2", daysFromNow(-5), daysFromNow(5))

	_, err := env.lifecycle.EnrollInExhibition(artifact.ID, exhibition.ID, curatorActor)
	require.NoError(t, err)

	_, err = env.lifecycle.DeleteExhibition(exhibition.ID, exhibition.Name, curatorActor)
	require.NoError(t, err)

	auditBefore := env.auditCount(t, models.ActionExhibition)
	movementsBefore := env.movementCount(t, artifact.ID)

	result, err := env.lifecycle.DeleteExhibition(exhibition.ID, exhibition.Name, curatorActor)
	require.NoError(t, err)

	assert.False(t, result.Deleted)
	assert.Zero(t, result.Reconciled)
	assert.Equal(t, auditBefore, env.auditCount(t, models.ActionExhibition))
	assert.Equal(t, movementsBefore, env.movementCount(t, artifact.ID))
}

func TestConservationQueueInTreatmentForcesStatus(t *testing.T) {
	env := newTestEnv(t)
	first := env.seedArtifact(t, "Obra A", "Reserva Técnica A")
	second := env.seedArtifact(t, "Obra B", "Reserva Técnica A")

	queue := models.QueueInTreatment
	result, err := env.lifecycle.SetConservationQueue([]int{first.ID, second.ID}, &queue, curatorActor)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)
	assert.Empty(t, result.Failures)

	saved := env.reload(t, first.ID)
	require.NotNil(t, saved.ConservationQueue)
	assert.Equal(t, models.QueueInTreatment, *saved.ConservationQueue)
	assert.Equal(t, models.StatusInRestoration, saved.Status)
}

func TestConservationQueueClearKeepsStatus(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")

	queue := models.QueueInTreatment
	_, err := env.lifecycle.SetConservationQueue([]int{artifact.ID}, &queue, curatorActor)
	require.NoError(t, err)

	_, err = env.lifecycle.SetConservationQueue([]int{artifact.ID}, nil, curatorActor)
	require.NoError(t, err)

	saved := env.reload(t, artifact.ID)
	assert.Nil(t, saved.ConservationQueue)
	// Clearing the tag is not a restoration return.
	assert.Equal(t, models.StatusInRestoration, saved.Status)
}

func TestConservationQueueUrgentKeepsStatus(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")

	queue := models.QueueUrgent
	_, err := env.lifecycle.SetConservationQueue([]int{artifact.ID}, &queue, curatorActor)
	require.NoError(t, err)

	saved := env.reload(t, artifact.ID)
	assert.Equal(t, models.QueueUrgent, *saved.ConservationQueue)
	assert.Equal(t, models.StatusStored, saved.Status)
}

func TestConservationQueueCollectsFailures(t *testing.T) {
	env := newTestEnv(t)
	artifact := env.seedArtifact(t, "Obra A", "Reserva Técnica A")

	queue := models.QueueHygiene
	result, err := env.lifecycle.SetConservationQueue([]int{artifact.ID, 9999}, &queue, curatorActor)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "9999")
}

func TestConservationQueueValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.lifecycle.SetConservationQueue(nil, nil, curatorActor)
	assert.True(t, apperrors.IsValidation(err))

	bad := "Fila Imaginária"
	_, err = env.lifecycle.SetConservationQueue([]int{1}, &bad, curatorActor)
	assert.True(t, apperrors.IsValidation(err))
}
