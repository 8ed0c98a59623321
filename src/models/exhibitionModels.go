package models

import "time"

type ExhibitionModel struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	StartDate time.Time `json:"startDate" gorm:"type:date;not null"`
	EndDate   time.Time `json:"endDate" gorm:"type:date;not null"`
	Location  string    `json:"location" gorm:"type:varchar(120);not null"`
	Curator   string    `json:"curator" gorm:"type:varchar(120)"`
}

// ExhibitionMembershipModel is a denormalized copy of the exhibition data at
// enrollment time, not a live foreign key. Deleting an exhibition strips
// matching rows by name and re-derives each affected artifact.
type ExhibitionMembershipModel struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ArtifactID   int       `json:"artifactId" gorm:"column:artifact_id;not null;index"`
	ExhibitionID int       `json:"exhibitionId" gorm:"column:exhibition_id"`
	Name         string    `json:"name" gorm:"type:varchar(200);not null"`
	StartDate    time.Time `json:"startDate" gorm:"type:date"`
	EndDate      time.Time `json:"endDate" gorm:"type:date"`
	Location     string    `json:"location" gorm:"type:varchar(120)"`
}
