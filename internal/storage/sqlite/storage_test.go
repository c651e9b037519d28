package sqlite

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/volunteerhub/internal/config"
	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	s, err := New(l, config.Storage{SqliteFile: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testNonprofit(name string, at time.Time) domain.User {
	return domain.User{
		Account: domain.Account{
			ID:        uuid.New(),
			Name:      name,
			Username:  name,
			Email:     name + "@example.org",
			CreatedAt: at,
			UpdatedAt: at,
		},
		Profile: domain.NonprofitProfile{
			NeededSkills:     []string{"tutoring"},
			OrganizationLogo: "logo.png",
		},
	}
}

func testVolunteer(name string, skills []string, at time.Time) domain.User {
	return domain.User{
		Account: domain.Account{
			ID:        uuid.New(),
			Name:      name,
			Username:  name,
			Email:     name + "@example.org",
			CreatedAt: at,
			UpdatedAt: at,
		},
		Profile: domain.VolunteerProfile{
			Skills:      skills,
			Interests:   []string{"animals"},
			Age:         17,
			School:      "Central High",
			Resume:      "resume.pdf",
			SocialLinks: []string{"https://example.org/me"},
		},
	}
}

func testOpportunity(nonprofitID uuid.UUID, title string, at time.Time) domain.Opportunity {
	return domain.Opportunity{
		ID:             uuid.New(),
		NonprofitID:    nonprofitID,
		Title:          title,
		Description:    "help kids read",
		Category:       "education",
		Location:       "Springfield",
		EstimatedHours: 4,
		Status:         domain.OpportunityOpen,
		SkillsRequired: []string{"tutoring", "reading"},
		Keywords:       []string{"help", "kids", "read"},
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	np := testNonprofit("shelter", baseTime)
	v1 := testVolunteer("alice", []string{"tutoring"}, baseTime.Add(time.Minute))
	v2 := testVolunteer("bob", nil, baseTime.Add(2*time.Minute))
	for _, u := range []domain.User{v2, np, v1} {
		require.NoError(t, s.CreateUser(ctx, u))
	}

	got, err := s.GetUser(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVolunteer, got.Role())
	vp, ok := got.Volunteer()
	require.True(t, ok)
	assert.Equal(t, []string{"tutoring"}, vp.Skills)
	assert.Equal(t, 17, vp.Age)
	assert.Equal(t, []string{"https://example.org/me"}, vp.SocialLinks)
	assert.True(t, got.CreatedAt.Equal(v1.CreatedAt))

	got, err = s.GetUser(ctx, v2.ID)
	require.NoError(t, err)
	vp, _ = got.Volunteer()
	assert.Equal(t, []string{}, vp.Skills)

	got, err = s.GetUser(ctx, np.ID)
	require.NoError(t, err)
	npp, ok := got.Nonprofit()
	require.True(t, ok)
	assert.Equal(t, "logo.png", npp.OrganizationLogo)

	_, err = s.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	volunteers, err := s.ListUsers(ctx, domain.RoleVolunteer)
	require.NoError(t, err)
	require.Len(t, volunteers, 2)
	assert.Equal(t, v1.ID, volunteers[0].ID)
	assert.Equal(t, v2.ID, volunteers[1].ID)

	some, err := s.GetUsers(ctx, []uuid.UUID{np.ID, v2.ID})
	require.NoError(t, err)
	assert.Len(t, some, 2)

	none, err := s.GetUsers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	dup := testVolunteer("alice", nil, baseTime)
	assert.ErrorIs(t, s.CreateUser(ctx, dup), storage.ErrAlreadyExists)

	v1.Name = "Alice Liddell"
	v1.Profile = domain.VolunteerProfile{Skills: []string{"painting"}}
	require.NoError(t, s.UpdateUser(ctx, v1))
	got, err = s.GetUser(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", got.Name)
	vp, _ = got.Volunteer()
	assert.Equal(t, []string{"painting"}, vp.Skills)

	missing := testVolunteer("ghost", nil, baseTime)
	assert.ErrorIs(t, s.UpdateUser(ctx, missing), storage.ErrNotFound)
}

func TestOpportunities(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	np := testNonprofit("shelter", baseTime)
	other := testNonprofit("library", baseTime)
	require.NoError(t, s.CreateUser(ctx, np))
	require.NoError(t, s.CreateUser(ctx, other))

	older := testOpportunity(np.ID, "older", baseTime)
	deadline := baseTime.Add(72 * time.Hour)
	older.Deadline = &deadline
	newer := testOpportunity(np.ID, "newer", baseTime.Add(time.Hour))
	closed := testOpportunity(other.ID, "closed", baseTime.Add(2*time.Hour))
	closed.Status = domain.OpportunityClosed
	closed.Category = "animals"
	for _, o := range []domain.Opportunity{older, newer, closed} {
		require.NoError(t, s.CreateOpportunity(ctx, o))
	}

	got, err := s.GetOpportunity(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.SkillsRequired, got.SkillsRequired)
	assert.Equal(t, older.Keywords, got.Keywords)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(deadline))

	_, err = s.GetOpportunity(ctx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	tests := []struct {
		name   string
		filter storage.OpportunityFilter
		want   []uuid.UUID
	}{
		{
			name: "all newest first",
			want: []uuid.UUID{closed.ID, newer.ID, older.ID},
		},
		{
			name:   "open only",
			filter: storage.OpportunityFilter{Status: domain.OpportunityOpen},
			want:   []uuid.UUID{newer.ID, older.ID},
		},
		{
			name:   "by category",
			filter: storage.OpportunityFilter{Category: "animals"},
			want:   []uuid.UUID{closed.ID},
		},
		{
			name:   "by nonprofit",
			filter: storage.OpportunityFilter{NonprofitID: np.ID},
			want:   []uuid.UUID{newer.ID, older.ID},
		},
		{
			name:   "no match",
			filter: storage.OpportunityFilter{NonprofitID: uuid.New()},
			want:   []uuid.UUID{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := s.ListOpportunities(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]uuid.UUID, 0, len(list))
			for _, o := range list {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	newer.Title = "renamed"
	newer.Status = domain.OpportunityClosed
	newer.NonprofitID = other.ID
	require.NoError(t, s.UpdateOpportunity(ctx, newer))
	got, err = s.GetOpportunity(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, domain.OpportunityClosed, got.Status)
	assert.Equal(t, np.ID, got.NonprofitID)

	assert.ErrorIs(t, s.UpdateOpportunity(ctx, testOpportunity(np.ID, "ghost", baseTime)), storage.ErrNotFound)
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	np := testNonprofit("shelter", baseTime)
	v := testVolunteer("alice", nil, baseTime)
	require.NoError(t, s.CreateUser(ctx, np))
	require.NoError(t, s.CreateUser(ctx, v))

	o1 := testOpportunity(np.ID, "one", baseTime)
	o2 := testOpportunity(np.ID, "two", baseTime.Add(time.Minute))
	require.NoError(t, s.CreateOpportunity(ctx, o1))
	require.NoError(t, s.CreateOpportunity(ctx, o2))

	a1 := domain.Application{ID: uuid.New(), OpportunityID: o1.ID, VolunteerID: v.ID, Status: domain.ApplicationApplied, CreatedAt: baseTime, UpdatedAt: baseTime}
	a2 := domain.Application{ID: uuid.New(), OpportunityID: o2.ID, VolunteerID: v.ID, Status: domain.ApplicationApplied, CreatedAt: baseTime, UpdatedAt: baseTime}
	require.NoError(t, s.CreateApplication(ctx, a1))
	require.NoError(t, s.CreateApplication(ctx, a2))

	require.NoError(t, s.DeleteOpportunity(ctx, o1.ID))
	_, err := s.GetApplication(ctx, a1.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.GetApplication(ctx, a2.ID)
	assert.NoError(t, err)
	assert.ErrorIs(t, s.DeleteOpportunity(ctx, o1.ID), storage.ErrNotFound)

	require.NoError(t, s.DeleteUser(ctx, np.ID))
	_, err = s.GetOpportunity(ctx, o2.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.GetApplication(ctx, a2.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, np.ID), storage.ErrNotFound)
}

func TestApplications(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	np := testNonprofit("shelter", baseTime)
	v1 := testVolunteer("alice", nil, baseTime)
	v2 := testVolunteer("bob", nil, baseTime)
	for _, u := range []domain.User{np, v1, v2} {
		require.NoError(t, s.CreateUser(ctx, u))
	}
	o := testOpportunity(np.ID, "one", baseTime)
	require.NoError(t, s.CreateOpportunity(ctx, o))

	a1 := domain.Application{ID: uuid.New(), OpportunityID: o.ID, VolunteerID: v1.ID, Status: domain.ApplicationApplied, CreatedAt: baseTime, UpdatedAt: baseTime}
	a2 := domain.Application{ID: uuid.New(), OpportunityID: o.ID, VolunteerID: v2.ID, Status: domain.ApplicationApplied, CreatedAt: baseTime.Add(time.Second), UpdatedAt: baseTime}
	require.NoError(t, s.CreateApplication(ctx, a1))
	require.NoError(t, s.CreateApplication(ctx, a2))

	again := a1
	again.ID = uuid.New()
	assert.ErrorIs(t, s.CreateApplication(ctx, again), storage.ErrAlreadyExists)

	list, err := s.ListApplications(ctx, storage.ApplicationFilter{OpportunityID: o.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)

	list, err = s.ListApplications(ctx, storage.ApplicationFilter{VolunteerID: v2.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a2.ID, list[0].ID)

	require.NoError(t, s.UpdateApplicationStatus(ctx, a1.ID, domain.ApplicationAccepted, baseTime.Add(time.Hour)))
	got, err := s.GetApplication(ctx, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationAccepted, got.Status)
	assert.True(t, got.UpdatedAt.Equal(baseTime.Add(time.Hour)))

	assert.ErrorIs(t, s.UpdateApplicationStatus(ctx, uuid.New(), domain.ApplicationRejected, baseTime), storage.ErrNotFound)

	require.NoError(t, s.DeleteApplication(ctx, a2.ID))
	assert.ErrorIs(t, s.DeleteApplication(ctx, a2.ID), storage.ErrNotFound)
}
