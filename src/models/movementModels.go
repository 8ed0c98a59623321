package models

import "time"

// Movement types. The lifecycle policy matches on substrings ("Entrada",
// "Retorno", "Restauro", "Saída"), so operator-typed variants still land on
// the right status transition.
const (
	MovementInitialEntry      = "Entrada Inicial"
	MovementInternalTransit   = "Trânsito Interno"
	MovementLoanOut           = "Empréstimo (Saída)"
	MovementLoanIn            = "Empréstimo (Entrada)"
	MovementRestorationOut    = "Saída para Restauro"
	MovementRestorationReturn = "Retorno de Restauro"
	MovementExhibitionMount   = "Montagem Exposição"
	MovementExhibitionUnmount = "Desmontagem Exposição"
	MovementExhibitionTransit = "Trânsito Entre Exposições"
	MovementExhibitionDeleted = "Retorno de Exposição Excluída"
)

// MovementModel is one entry of an artifact's append-only ledger. Rows are
// immutable once written; the lifecycle service only ever appends.
type MovementModel struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ArtifactID   int       `json:"artifactId" gorm:"column:artifact_id;not null;index"`
	Date         time.Time `json:"date" gorm:"type:date;not null"`
	Type         string    `json:"type" gorm:"type:varchar(60);not null"`
	From         string    `json:"from" gorm:"column:from_location;type:varchar(120)"`
	To           string    `json:"to" gorm:"column:to_location;type:varchar(120)"`
	Responsible  string    `json:"responsible" gorm:"type:varchar(120)"`
	Observations *string   `json:"observations" gorm:"type:text"`
}
