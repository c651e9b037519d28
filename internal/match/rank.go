package match

import (
	"sort"

	"github.com/goserg/volunteerhub/internal/domain"
)

// RankOpportunities scores every open opportunity against the volunteer and
// orders them by score, newest first on equal score.
func (s Scorer) RankOpportunities(v domain.VolunteerProfile, opportunities []domain.Opportunity) []domain.RankedOpportunity {
	ranked := make([]domain.RankedOpportunity, 0, len(opportunities))
	for _, o := range opportunities {
		if o.Status != domain.OpportunityOpen {
			continue
		}
		ranked = append(ranked, domain.RankedOpportunity{
			Opportunity: o,
			MatchScore:  s.Score(o.SkillsRequired, v.Skills) + s.Score(o.Keywords, v.Interests),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return ranked
}

// RankVolunteers scores volunteers by skill overlap with the opportunity.
// Equal scores keep registration order, earliest first.
func (s Scorer) RankVolunteers(o domain.Opportunity, users []domain.User) []domain.RankedVolunteer {
	ranked := make([]domain.RankedVolunteer, 0, len(users))
	for _, u := range users {
		v, ok := u.Volunteer()
		if !ok {
			continue
		}
		public, _ := u.Public()
		ranked = append(ranked, domain.RankedVolunteer{
			PublicVolunteer: public,
			MatchScore:      s.Score(v.Skills, o.SkillsRequired),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return ranked
}
