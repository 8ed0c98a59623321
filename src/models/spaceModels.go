package models

type SpaceType string

const (
	SpaceGallery SpaceType = "Galeria"
	SpaceStorage SpaceType = "Reserva"
	SpaceLab     SpaceType = "Laboratório"
	SpaceArchive SpaceType = "Arquivo"
)

// SpaceRestorationLab is the default destination for outgoing restorations.
const SpaceRestorationLab = "Laboratório de Restauro"

type SpaceModel struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(120);not null;uniqueIndex"`
	Type        SpaceType `json:"type" gorm:"type:varchar(30);not null"`
	Responsible *string   `json:"responsible" gorm:"type:varchar(120)"`
}
