package domain

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationApplied  ApplicationStatus = "applied"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationApplied, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

type Application struct {
	ID            uuid.UUID         `json:"id"`
	OpportunityID uuid.UUID         `json:"opportunityId"`
	VolunteerID   uuid.UUID         `json:"volunteerId"`
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`

	// Filled by listings.
	OpportunityTitle string           `json:"opportunityTitle,omitempty"`
	Volunteer        *PublicVolunteer `json:"volunteer,omitempty"`
}
