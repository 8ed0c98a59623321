package models

import "time"

// Audit actions.
const (
	ActionLogin        = "LOGIN"
	ActionCatalog      = "CADASTRO"
	ActionEdit         = "EDICAO"
	ActionArchive      = "REMOCAO"
	ActionMovement     = "MOVIMENTACAO"
	ActionExhibition   = "EXPOSICAO"
	ActionConservation = "CONSERVACAO"
	ActionExport       = "EXPORT"
	ActionImport       = "IMPORT"
	ActionSpace        = "ESPACO"
)

// AuditEntryModel rows are append-only and never edited.
type AuditEntryModel struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	ActorName string    `json:"actorName" gorm:"type:varchar(120);not null"`
	ActorRole string    `json:"actorRole" gorm:"type:varchar(40)"`
	Action    string    `json:"action" gorm:"type:varchar(30);not null"`
	Details   string    `json:"details" gorm:"type:text"`
}
