package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	curatorActor = models.Actor{Name: "Maria Souza", Role: models.RoleCurator}
	adminActor   = models.Actor{Name: "Ana Lima", Role: models.RoleAdministrator}
)

// newTestDB opens a throwaway sqlite database. A file in t.TempDir is used
// instead of :memory: because gorm's connection pool would otherwise hand
// each connection its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "nugep_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.SpaceModel{},
		&models.ExhibitionModel{},
		&models.ArtifactModel{},
		&models.CustomFieldModel{},
		&models.ExhibitionMembershipModel{},
		&models.MovementModel{},
		&models.AuditEntryModel{},
	))
	return db
}

type testEnv struct {
	db          *gorm.DB
	audit       *AuditService
	artifacts   *ArtifactService
	lifecycle   *LifecycleService
	exhibitions *ExhibitionService
	spaces      *SpaceService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	audit := NewAuditService(db)
	artifacts := NewArtifactService(db, audit, false)
	lifecycle := NewLifecycleService(db, audit, artifacts)
	return &testEnv{
		db:          db,
		audit:       audit,
		artifacts:   artifacts,
		lifecycle:   lifecycle,
		exhibitions: NewExhibitionService(db, audit, lifecycle),
		spaces:      NewSpaceService(db, audit),
	}
}

// daysFromNow returns today plus the offset, truncated to midnight.
func daysFromNow(offset int) time.Time {
	return truncateToDay(time.Now().AddDate(0, 0, offset))
}

func (env *testEnv) seedArtifact(t *testing.T, title, home string) *models.ArtifactModel {
	t.Helper()

	artifact := &models.ArtifactModel{
		RegNumber: "REG-" + title,
		Title:     title,
		Location:  home,
	}
	require.NoError(t, env.artifacts.CreateArtifact(artifact, curatorActor))
	return artifact
}

func (env *testEnv) seedExhibition(t *testing.T, name, location string, start, end time.Time) *models.ExhibitionModel {
	t.Helper()

	exhibition := &models.ExhibitionModel{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Location:  location,
	}
	created, err := env.exhibitions.CreateExhibition(exhibition, curatorActor)
	require.NoError(t, err)
	return created
}

func (env *testEnv) reload(t *testing.T, id int) *models.ArtifactModel {
	t.Helper()

	artifact, err := env.artifacts.GetArtifactByID(id)
	require.NoError(t, err)
	return artifact
}

func (env *testEnv) auditCount(t *testing.T, action string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, env.db.Model(&models.AuditEntryModel{}).
		Where("action = ?", action).Count(&count).Error)
	return count
}

func (env *testEnv) movementCount(t *testing.T, artifactID int) int64 {
	t.Helper()

	var count int64
	require.NoError(t, env.db.Model(&models.MovementModel{}).
		Where("artifact_id = ?", artifactID).Count(&count).Error)
	return count
}
