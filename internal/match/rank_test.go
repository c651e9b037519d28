package match

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/volunteerhub/internal/domain"
)

func TestRankOpportunitiesExample(t *testing.T) {
	now := time.Now()
	volunteer := domain.VolunteerProfile{
		Skills:    []string{"python", "design"},
		Interests: []string{"education"},
	}
	o1 := domain.Opportunity{
		ID:             uuid.New(),
		Title:          "O1",
		Status:         domain.OpportunityOpen,
		SkillsRequired: []string{"python", "writing"},
		Keywords:       []string{"education", "outreach"},
		CreatedAt:      now.Add(-time.Hour),
	}
	o2 := domain.Opportunity{
		ID:             uuid.New(),
		Title:          "O2",
		Status:         domain.OpportunityOpen,
		SkillsRequired: []string{"design"},
		Keywords:       []string{},
		CreatedAt:      now,
	}

	ranked := NewScorer(Exact).RankOpportunities(volunteer, []domain.Opportunity{o2, o1})

	require.Len(t, ranked, 2)
	assert.Equal(t, "O1", ranked[0].Title)
	assert.Equal(t, 2, ranked[0].MatchScore)
	assert.Equal(t, "O2", ranked[1].Title)
	assert.Equal(t, 1, ranked[1].MatchScore)
}

func TestRankOpportunitiesOrdering(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	volunteer := domain.VolunteerProfile{
		Skills:    []string{"cooking"},
		Interests: []string{"food"},
	}
	opportunities := []domain.Opportunity{
		{ID: uuid.New(), Title: "old match", Status: domain.OpportunityOpen, SkillsRequired: []string{"cooking"}, CreatedAt: base},
		{ID: uuid.New(), Title: "closed match", Status: domain.OpportunityClosed, SkillsRequired: []string{"cooking"}, Keywords: []string{"food"}, CreatedAt: base},
		{ID: uuid.New(), Title: "no match old", Status: domain.OpportunityOpen, CreatedAt: base.Add(-time.Hour)},
		{ID: uuid.New(), Title: "new match", Status: domain.OpportunityOpen, Keywords: []string{"food"}, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), Title: "best", Status: domain.OpportunityOpen, SkillsRequired: []string{"cooking"}, Keywords: []string{"food"}, CreatedAt: base.Add(-2 * time.Hour)},
		{ID: uuid.New(), Title: "no match new", Status: domain.OpportunityOpen, CreatedAt: base.Add(2 * time.Hour)},
	}

	s := NewScorer(Exact)
	ranked := s.RankOpportunities(volunteer, opportunities)

	var titles []string
	for _, r := range ranked {
		assert.Equal(t, domain.OpportunityOpen, r.Status)
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"best", "new match", "old match", "no match new", "no match old"}, titles)
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		require.GreaterOrEqual(t, prev.MatchScore, cur.MatchScore)
		if prev.MatchScore == cur.MatchScore {
			require.False(t, prev.CreatedAt.Before(cur.CreatedAt))
		}
	}

	again := s.RankOpportunities(volunteer, opportunities)
	assert.Equal(t, ranked, again)
}

func TestRankOpportunitiesEmpty(t *testing.T) {
	ranked := NewScorer(Exact).RankOpportunities(domain.VolunteerProfile{}, nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRankVolunteers(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	opportunity := domain.Opportunity{
		SkillsRequired: []string{"python", "writing"},
	}
	volunteer := func(name string, createdAt time.Time, skills ...string) domain.User {
		return domain.User{
			Account: domain.Account{
				ID:        uuid.New(),
				Name:      name,
				Email:     name + "@example.com",
				CreatedAt: createdAt,
			},
			Profile: domain.VolunteerProfile{
				Skills: skills,
				Resume: "/uploads/resumes/" + name + ".pdf",
			},
		}
	}
	users := []domain.User{
		volunteer("late", base.Add(time.Hour), "python"),
		volunteer("none", base),
		{
			Account: domain.Account{ID: uuid.New(), Name: "org", CreatedAt: base},
			Profile: domain.NonprofitProfile{NeededSkills: []string{"python", "writing"}},
		},
		volunteer("both", base.Add(2*time.Hour), "writing", "python"),
		volunteer("early", base, "python", "cooking"),
	}

	ranked := NewScorer(Exact).RankVolunteers(opportunity, users)

	var names []string
	for _, r := range ranked {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"both", "early", "late", "none"}, names)
	assert.Equal(t, []int{2, 1, 1, 0}, []int{ranked[0].MatchScore, ranked[1].MatchScore, ranked[2].MatchScore, ranked[3].MatchScore})
}
