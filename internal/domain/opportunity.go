package domain

import (
	"time"

	"github.com/google/uuid"
)

type OpportunityStatus string

const (
	OpportunityOpen   OpportunityStatus = "open"
	OpportunityClosed OpportunityStatus = "closed"
)

func (s OpportunityStatus) Valid() bool {
	return s == OpportunityOpen || s == OpportunityClosed
}

type Opportunity struct {
	ID             uuid.UUID         `json:"id"`
	NonprofitID    uuid.UUID         `json:"nonprofitId"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Location       string            `json:"location"`
	EstimatedHours int               `json:"estimatedHours"`
	Deadline       *time.Time        `json:"deadline"`
	Status         OpportunityStatus `json:"status"`
	SkillsRequired []string          `json:"skillsRequired"`
	Keywords       []string          `json:"keywords"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`

	// Poster is empty when the posting nonprofit no longer exists.
	Poster Poster `json:"nonprofit"`
}

type RankedOpportunity struct {
	Opportunity
	MatchScore int `json:"matchScore"`
}

type RankedVolunteer struct {
	PublicVolunteer
	MatchScore int `json:"matchScore"`
}
