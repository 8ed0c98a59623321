package services

import (
	"strings"
	"time"

	"github.com/NUGEP/NUGEP-Backend/src/models"
)

// DerivedState is the authoritative {status, location, currentExhibition}
// tuple computed from an artifact's exhibition history.
type DerivedState struct {
	Status            string
	Location          string
	CurrentExhibition *string
}

// DeriveStatus computes the derived state of an artifact as of the given
// date. A membership is current when its end date has not lapsed; when
// several qualify, the one appended last wins (highest row ID, which for
// unsaved rows degrades to slice order). Pure: never mutates the artifact
// and touches no storage.
func DeriveStatus(artifact *models.ArtifactModel, asOf time.Time) DerivedState {
	day := truncateToDay(asOf)

	var current *models.ExhibitionMembershipModel
	for i := range artifact.ExhibitionHistory {
		membership := &artifact.ExhibitionHistory[i]
		if truncateToDay(membership.EndDate).Before(day) {
			continue
		}
		if current == nil || membership.ID >= current.ID {
			current = membership
		}
	}

	if current != nil {
		name := current.Name
		return DerivedState{
			Status:            models.StatusOnDisplay,
			Location:          current.Location,
			CurrentExhibition: &name,
		}
	}

	home := artifact.HomeLocation
	if home == "" {
		home = models.DefaultHomeLocation
	}
	return DerivedState{Status: models.StatusStored, Location: home}
}

// movementPolicy resolves the status/location outcome of a movement type.
// An explicit destination always wins over the policy default. Return and
// entry types are checked before the others so that "Retorno de Restauro"
// and "Empréstimo (Entrada)" land back on Stored.
func movementPolicy(artifact *models.ArtifactModel, movementType, to string) (string, string) {
	status := artifact.Status
	location := artifact.Location

	switch {
	case strings.Contains(movementType, "Entrada") || strings.Contains(movementType, "Retorno"):
		status = models.StatusStored
		if to != "" {
			location = to
		}
	case strings.Contains(movementType, "Restauro"):
		status = models.StatusInRestoration
		location = models.SpaceRestorationLab
		if to != "" {
			location = to
		}
	case strings.Contains(movementType, "Saída"):
		status = models.StatusOnLoan
		location = models.LocationExternal
		if to != "" {
			location = to
		}
	default:
		// Internal transit: location follows the destination, status stays.
		if to != "" {
			location = to
		}
	}

	return status, location
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
