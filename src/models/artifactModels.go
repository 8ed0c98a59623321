package models

import (
	"time"

	"gorm.io/gorm"
)

// Lifecycle statuses. Status, Location and CurrentExhibition are derived
// fields owned by the lifecycle service; handlers never write them directly.
const (
	StatusStored        = "Stored"
	StatusOnDisplay     = "OnDisplay"
	StatusOnLoan        = "OnLoan"
	StatusInRestoration = "InRestoration"
)

// LocationExternal marks artifacts that left the building (loans, outgoing
// restorations). While an artifact sits here, exhibition-history mutations
// do not re-derive its status or location.
const LocationExternal = "External"

// DefaultHomeLocation is where artifacts return to when nothing else claims them.
const DefaultHomeLocation = "Reserva Técnica A"

// Conservation queue tags.
const (
	QueueUrgent      = "Urgente"
	QueueInTreatment = "Em Tratamento"
	QueueHygiene     = "Higienização"
)

type ArtifactModel struct {
	ID                int            `json:"id" gorm:"primaryKey;autoIncrement"`
	RegNumber         string         `json:"regNumber" gorm:"type:varchar(50);not null"`
	Title             string         `json:"title" gorm:"type:varchar(200);not null"`
	Artist            string         `json:"artist" gorm:"type:varchar(120)"`
	Year              string         `json:"year" gorm:"type:varchar(20)"`
	Type              string         `json:"type" gorm:"type:varchar(60)"`
	Status            string         `json:"status" gorm:"type:varchar(20);not null;default:Stored"`
	Location          string         `json:"location" gorm:"type:varchar(120)"`
	HomeLocation      string         `json:"homeLocation" gorm:"type:varchar(120)"`
	CurrentExhibition *string        `json:"currentExhibition" gorm:"type:varchar(200)"`
	ConservationQueue *string        `json:"conservationQueue" gorm:"type:varchar(40)"`
	Condition         *string        `json:"condition" gorm:"type:varchar(60)"`
	Description       *string        `json:"description" gorm:"type:text"`
	Observations      *string        `json:"observations" gorm:"type:text"`
	Provenance        *string        `json:"provenance" gorm:"type:text"`
	Copyright         *string        `json:"copyright" gorm:"type:varchar(120)"`
	AudioDesc         *string        `json:"audioDesc" gorm:"type:text"`
	Image             *string        `json:"image" gorm:"type:text"`
	RelatedToID       *int           `json:"relatedToId" gorm:"column:related_to_id"`
	RelatedTo         *ArtifactModel `json:"relatedTo,omitempty" gorm:"foreignKey:RelatedToID;references:ID"`
	CreatedBy         string         `json:"createdBy" gorm:"type:varchar(120)"`
	CreatedAt         time.Time      `json:"createdAt"`
	ArchivedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	CustomFields      []CustomFieldModel          `json:"customFields,omitempty" gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE"`
	ExhibitionHistory []ExhibitionMembershipModel `json:"exhibitionHistory,omitempty" gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE"`
	Movements         []MovementModel             `json:"movements,omitempty" gorm:"foreignKey:ArtifactID;constraint:OnDelete:CASCADE"`
}

// CustomFieldModel is a free label/value pair attached to an artifact record.
type CustomFieldModel struct {
	ID         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	ArtifactID int    `json:"artifactId" gorm:"column:artifact_id;not null;index"`
	Label      string `json:"label" gorm:"type:varchar(120);not null"`
	Value      string `json:"value" gorm:"type:text"`
}
