package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/volunteerhub/internal/config"
	"github.com/goserg/volunteerhub/internal/domain"
)

func testApp(t *testing.T) *app {
	t.Helper()
	cfg := config.Default()
	cfg.Auth.Secret = "cli-test-secret"
	cfg.Auth.BcryptCost = 4
	cfg.Storage.SqliteFile = filepath.Join(t.TempDir(), "cli.db")

	l := logrus.New()
	l.SetOutput(io.Discard)

	a, err := wire(cfg, l)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestLoadFixtures(t *testing.T) {
	f, err := LoadFixtures(filepath.Join("..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)
	require.Len(t, f.Users, 4)
	require.Len(t, f.Opportunities, 4)

	assert.Equal(t, domain.RoleNonprofit, f.Users[0].Role)
	assert.Equal(t, []string{"dogs", "walking"}, f.Users[2].Skills)
	require.NotNil(t, f.Opportunities[0].Deadline)
	assert.Equal(t, 2030, f.Opportunities[0].Deadline.Year())
	assert.Nil(t, f.Opportunities[1].Deadline)
	assert.Equal(t, domain.OpportunityClosed, f.Opportunities[3].Status)

	_, err = LoadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	a := testApp(t)
	f, err := LoadFixtures(filepath.Join("..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)

	report, err := seed(ctx, a, f)
	require.NoError(t, err)
	assert.Equal(t, seedReport{UsersCreated: 4, OpportunitiesCreated: 4}, report)

	report, err = seed(ctx, a, f)
	require.NoError(t, err)
	assert.Equal(t, seedReport{UsersExisting: 4, OpportunitiesExisting: 4}, report)

	alex, err := a.auth.Login(ctx, "alex@example.com", "volunteer-pass")
	require.NoError(t, err)
	ranked, err := a.service.RecommendedOpportunities(ctx, alex.Actor())
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Dog Walker", ranked[0].Title)
	assert.GreaterOrEqual(t, ranked[0].MatchScore, 2)
	assert.Equal(t, "Happy Paws Shelter", ranked[0].Poster.Name)

	var out bytes.Buffer
	renderOpportunities(&out, ranked)
	assert.Contains(t, out.String(), "Dog Walker")
	assert.Contains(t, out.String(), "Happy Paws Shelter")

	library, err := a.auth.Login(ctx, "hello@riverside-library.org", "library-pass")
	require.NoError(t, err)
	mine, err := a.service.MyOpportunities(ctx, library.Actor())
	require.NoError(t, err)
	require.Len(t, mine, 2)
	var tutorID uuid.UUID
	for _, o := range mine {
		if o.Title == "Homework Club Tutor" {
			tutorID = o.ID
		}
	}
	require.NotEqual(t, uuid.Nil, tutorID)
	volunteers, err := a.service.RecommendedVolunteers(ctx, library.Actor(), tutorID)
	require.NoError(t, err)
	require.Len(t, volunteers, 2)
	assert.Equal(t, "samlee", volunteers[0].Username)
	assert.Equal(t, 2, volunteers[0].MatchScore)
	assert.Equal(t, 0, volunteers[1].MatchScore)

	out.Reset()
	renderVolunteers(&out, volunteers)
	assert.Contains(t, out.String(), "samlee")
}

func TestSeedErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		fixtures Fixtures
	}{
		{
			name: "unknown poster",
			fixtures: Fixtures{Opportunities: []OpportunityFixture{{
				Poster: "nobody@example.com", Title: "Ghost", Description: "x",
			}}},
		},
		{
			name: "weak password",
			fixtures: Fixtures{Users: []UserFixture{{
				Role: domain.RoleVolunteer, Name: "Weak", Username: "weak", Email: "weak@example.com", Password: "123",
			}}},
		},
		{
			name: "volunteer posting",
			fixtures: Fixtures{
				Users: []UserFixture{{
					Role: domain.RoleVolunteer, Name: "Vol", Username: "vol", Email: "vol@example.com", Password: "secret-pass",
				}},
				Opportunities: []OpportunityFixture{{
					Poster: "vol@example.com", Title: "Nope", Description: "x",
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testApp(t)
			_, err := seed(ctx, a, tt.fixtures)
			assert.Error(t, err)
		})
	}
}

func TestWeakPasswordRollsBackUser(t *testing.T) {
	ctx := context.Background()
	a := testApp(t)
	weak := UserFixture{Role: domain.RoleVolunteer, Name: "Weak", Username: "weak", Email: "weak@example.com", Password: "123"}

	_, err := seed(ctx, a, Fixtures{Users: []UserFixture{weak}})
	require.Error(t, err)

	weak.Password = "strong-enough"
	report, err := seed(ctx, a, Fixtures{Users: []UserFixture{weak}})
	require.NoError(t, err)
	assert.Equal(t, 1, report.UsersCreated)
}
