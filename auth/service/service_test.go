package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/goserg/volunteerhub/auth/users"
	"github.com/goserg/volunteerhub/internal/domain"
)

type memStorage struct {
	users   map[uuid.UUID]users.User
	secrets map[uuid.UUID]users.Secret
}

func newMemStorage(list ...users.User) *memStorage {
	m := &memStorage{
		users:   map[uuid.UUID]users.User{},
		secrets: map[uuid.UUID]users.Secret{},
	}
	for _, u := range list {
		m.users[u.ID] = u
	}
	return m
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (users.User, error) {
	u, ok := m.users[id]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (m *memStorage) GetUserSecret(_ context.Context, email string) (users.User, users.Secret, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, m.secrets[u.ID], nil
		}
	}
	return users.User{}, users.Secret{}, sql.ErrNoRows
}

func (m *memStorage) SetSecret(_ context.Context, id uuid.UUID, secret users.Secret) error {
	if _, ok := m.users[id]; !ok {
		return sql.ErrNoRows
	}
	m.secrets[id] = secret
	return nil
}

func testConfig() Config {
	return Config{
		Secret:     "test-secret",
		Expiration: time.Hour,
		BcryptCost: bcrypt.MinCost,
		Rules: []Rule{
			{Name: "recommended", Path: "^/api/opportunities/recommended$", Method: []string{"GET"}, Allow: []string{"volunteer"}},
			{Name: "browse", Path: "^/api/opportunities(/[^/]+)?$", Method: []string{"GET"}, Allow: []string{"*"}},
			{Name: "manage", Path: "^/api/opportunities(/[^/]+)?$", Method: []string{"POST", "PUT", "DELETE"}, Allow: []string{"nonprofit"}},
		},
	}
}

func TestSignUpLogin(t *testing.T) {
	ctx := context.Background()
	u := users.User{ID: uuid.New(), Email: "a@example.org", Role: domain.RoleVolunteer}
	s, err := New(testConfig(), newMemStorage(u))
	require.NoError(t, err)

	assert.ErrorIs(t, s.SignUp(ctx, u.ID, "123"), ErrWeakPassword)
	require.NoError(t, s.SignUp(ctx, u.ID, "correct horse"))

	got, err := s.Login(ctx, "a@example.org", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = s.Login(ctx, " A@Example.ORG", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Login(ctx, "a@example.org", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, "nobody@example.org", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth(t *testing.T) {
	ctx := context.Background()
	volunteer := users.User{ID: uuid.New(), Role: domain.RoleVolunteer}
	nonprofit := users.User{ID: uuid.New(), Role: domain.RoleNonprofit}
	s, err := New(testConfig(), newMemStorage(volunteer, nonprofit))
	require.NoError(t, err)

	volunteerToken, _, err := s.GenerateToken(volunteer.ID)
	require.NoError(t, err)
	nonprofitToken, _, err := s.GenerateToken(nonprofit.ID)
	require.NoError(t, err)
	ghostToken, _, err := s.GenerateToken(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		method  string
		path    string
		wantID  uuid.UUID
		wantErr error
	}{
		{name: "guest browses", method: "GET", path: "/api/opportunities"},
		{name: "guest browses one", method: "GET", path: "/api/opportunities/123"},
		{name: "guest recommended", method: "GET", path: "/api/opportunities/recommended", wantErr: ErrNotAuthorized},
		{name: "volunteer recommended", token: volunteerToken, method: "GET", path: "/api/opportunities/recommended", wantID: volunteer.ID},
		{name: "nonprofit recommended", token: nonprofitToken, method: "GET", path: "/api/opportunities/recommended", wantErr: ErrForbidden},
		{name: "nonprofit creates", token: nonprofitToken, method: "POST", path: "/api/opportunities", wantID: nonprofit.ID},
		{name: "volunteer creates", token: volunteerToken, method: "POST", path: "/api/opportunities", wantErr: ErrForbidden},
		{name: "guest creates", method: "POST", path: "/api/opportunities", wantErr: ErrNotAuthorized},
		{name: "no rule", token: volunteerToken, method: "GET", path: "/api/secret", wantErr: ErrForbidden},
		{name: "garbage token", token: "garbage", method: "GET", path: "/api/opportunities", wantErr: ErrNotAuthorized},
		{name: "deleted user", token: ghostToken, method: "GET", path: "/api/opportunities", wantErr: ErrNotAuthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Auth(ctx, tt.token, tt.method, tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestAuthExpiredToken(t *testing.T) {
	u := users.User{ID: uuid.New(), Role: domain.RoleVolunteer}
	s, err := New(testConfig(), newMemStorage(u))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		Subject:   u.ID.String(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.Auth(context.Background(), signed, "GET", "/api/opportunities")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestNewBadRule(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = append(cfg.Rules, Rule{Name: "broken", Path: "(", Method: []string{"GET"}})
	_, err := New(cfg, newMemStorage())
	assert.Error(t, err)
}
