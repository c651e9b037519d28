package web

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/volunteerhub/internal/domain"
)

func Test_registerRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      registerRequest
		wantErrs int
	}{
		{
			name:     "volunteer",
			req:      registerRequest{Role: "volunteer", Email: "a@example.org", Password: "long enough"},
			wantErrs: 0,
		},
		{
			name:     "nonprofit",
			req:      registerRequest{Role: "nonprofit", Email: "a@example.org", Password: "long enough"},
			wantErrs: 0,
		},
		{
			name:     "unknown role",
			req:      registerRequest{Role: "admin", Email: "a@example.org", Password: "long enough"},
			wantErrs: 1,
		},
		{
			name:     "short password",
			req:      registerRequest{Role: "volunteer", Email: "a@example.org", Password: "123"},
			wantErrs: 1,
		},
		{
			name:     "everything wrong",
			req:      registerRequest{},
			wantErrs: 3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErrs == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Len(t, unwrap(err), tt.wantErrs)
		})
	}
}

func Test_registerRequest_toInput(t *testing.T) {
	req := registerRequest{
		Role:             "volunteer",
		Skills:           []string{"tutoring"},
		NeededSkills:     []string{"ignored"},
		OrganizationLogo: "ignored.png",
		Age:              16,
	}
	in := req.toInput()
	v, ok := in.Profile.(domain.VolunteerProfile)
	require.True(t, ok)
	assert.Equal(t, []string{"tutoring"}, v.Skills)
	assert.Equal(t, 16, v.Age)

	req.Role = "nonprofit"
	in = req.toInput()
	np, ok := in.Profile.(domain.NonprofitProfile)
	require.True(t, ok)
	assert.Equal(t, []string{"ignored"}, np.NeededSkills)
	assert.Equal(t, "ignored.png", np.OrganizationLogo)
}

func Test_loginRequest_Validate(t *testing.T) {
	assert.NoError(t, loginRequest{Email: "a@example.org", Password: "x"}.Validate())
	assert.Len(t, unwrap(loginRequest{}.Validate()), 2)
}

func Test_parseDeadline(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *time.Time
		wantErr bool
	}{
		{name: "empty", in: ""},
		{name: "date", in: "2030-01-15", want: ptr(time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339", in: "2030-01-15T10:00:00+02:00", want: ptr(time.Date(2030, 1, 15, 8, 0, 0, 0, time.UTC))},
		{name: "garbage", in: "soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDeadline(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func Test_convertUserFor(t *testing.T) {
	volunteer := domain.User{
		Account: domain.Account{Name: "Alice", Email: "a@example.org", MatchingProfile: "secret"},
		Profile: domain.VolunteerProfile{Resume: "cv.pdf", Skills: []string{"x"}},
	}
	full, ok := convertUserFor(volunteer, true).(userResponse)
	require.True(t, ok)
	assert.Equal(t, "a@example.org", full.Email)
	assert.Equal(t, "cv.pdf", full.Resume)

	public, ok := convertUserFor(volunteer, false).(publicVolunteerResponse)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, public.Skills)

	nonprofit := domain.User{
		Account: domain.Account{Name: "Shelter", Email: "s@example.org", MatchingProfile: "secret"},
		Profile: domain.NonprofitProfile{Website: "https://example.org"},
	}
	other, ok := convertUserFor(nonprofit, false).(userResponse)
	require.True(t, ok)
	assert.Empty(t, other.Email)
	assert.Empty(t, other.MatchingProfile)
	assert.Equal(t, "https://example.org", other.Website)
}

func ptr[T any](v T) *T {
	return &v
}

func Test_convertOpportunity_poster(t *testing.T) {
	tests := []struct {
		name       string
		poster     domain.Poster
		wantPoster bool
	}{
		{
			name:       "poster attached",
			poster:     domain.Poster{ID: uuid.New(), Name: "Shelter", Username: "shelter"},
			wantPoster: true,
		},
		{
			name:       "poster deleted",
			poster:     domain.Poster{},
			wantPoster: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := domain.Opportunity{ID: uuid.New(), Title: "Tutor", Poster: tt.poster}
			data, err := json.Marshal(convertOpportunity(o))
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(data, &got))
			require.Contains(t, got, "nonprofit")
			if !tt.wantPoster {
				assert.Nil(t, got["nonprofit"])
				return
			}
			poster, ok := got["nonprofit"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "shelter", poster["username"])
		})
	}
}
