package dtos

// ArtifactSummaryDTO is the lightweight listing row used by dashboards and
// the collection grid.
type ArtifactSummaryDTO struct {
	ID                int     `json:"id"`
	RegNumber         string  `json:"regNumber"`
	Title             string  `json:"title"`
	Artist            string  `json:"artist"`
	Year              string  `json:"year"`
	Type              string  `json:"type"`
	Status            string  `json:"status"`
	Location          string  `json:"location"`
	CurrentExhibition *string `json:"currentExhibition,omitempty"`
	ConservationQueue *string `json:"conservationQueue,omitempty"`
}

// ConservationQueueDTO is the bulk queue-assignment payload. A null queue
// clears the tag (without reverting status).
type ConservationQueueDTO struct {
	ArtifactIDs []int   `json:"artifactIds"`
	Queue       *string `json:"queue"`
}

// EnrollDTO selects the exhibition an artifact is enrolled into.
type EnrollDTO struct {
	ExhibitionID int `json:"exhibitionId"`
}
