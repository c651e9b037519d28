package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"

	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/normalize"
	"github.com/goserg/volunteerhub/internal/storage"
)

const maxAge = 150

var usernameRegexp = regexp.MustCompile(`^[A-Za-z][\w.-]{2,31}$`)

type RegisterInput struct {
	Name            string
	Username        string
	Email           string
	Pronouns        string
	Location        string
	MatchingProfile string
	Profile         domain.Profile
}

// UserPatch changes only the fields that are set. Fields of the other role
// are ignored.
type UserPatch struct {
	Name            *string
	Username        *string
	Email           *string
	Pronouns        *string
	Location        *string
	MatchingProfile *string

	Skills        []string
	Interests     []string
	Age           *int
	School        *string
	Resume        *string
	VolunteerForm *string
	PitchVideoURL *string
	ProfilePhoto  *string
	SocialLinks   []string

	NeededSkills            []string
	NeededInterests         []string
	OrganizationDescription *string
	Website                 *string
	OrganizationLogo        *string
}

func validateUser(u domain.User) error {
	var err error
	if u.Name == "" {
		err = errors.Join(err, errors.New("name is required"))
	}
	if !usernameRegexp.MatchString(u.Username) {
		err = errors.Join(err, errors.New("username must start with a latin letter and contain 3 to 32 letters, digits, dots, dashes or underscores"))
	}
	if _, parseErr := mail.ParseAddress(u.Email); parseErr != nil || u.Email == "" {
		err = errors.Join(err, fmt.Errorf("invalid email %q", u.Email))
	}
	switch p := u.Profile.(type) {
	case domain.VolunteerProfile:
		if p.Age < 0 || p.Age > maxAge {
			err = errors.Join(err, fmt.Errorf("age must be between 0 and %d", maxAge))
		}
	case domain.NonprofitProfile:
	default:
		err = errors.Join(err, errors.New("role must be volunteer or nonprofit"))
	}
	return invalid(err)
}

func (s *Service) cleanProfile(p domain.Profile) domain.Profile {
	switch p := p.(type) {
	case domain.VolunteerProfile:
		p.Skills = normalize.Tags(s.sanitizeAll(p.Skills))
		p.Interests = normalize.Tags(s.sanitizeAll(p.Interests))
		p.School = s.sanitize(p.School)
		p.SocialLinks = normalize.Tags(s.sanitizeAll(p.SocialLinks))
		return p
	case domain.NonprofitProfile:
		p.NeededSkills = normalize.Tags(s.sanitizeAll(p.NeededSkills))
		p.NeededInterests = normalize.Tags(s.sanitizeAll(p.NeededInterests))
		p.OrganizationDescription = s.sanitize(p.OrganizationDescription)
		return p
	}
	return p
}

// Register creates the account with its profile. Credentials are stored
// separately by the auth service.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	now := s.now()
	u := domain.User{
		Account: domain.Account{
			ID:              uuid.New(),
			Name:            s.sanitize(in.Name),
			Username:        normalize.Name(in.Username),
			Email:           normalize.Name(in.Email),
			Pronouns:        s.sanitize(in.Pronouns),
			Location:        s.sanitize(in.Location),
			MatchingProfile: s.sanitize(in.MatchingProfile),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		Profile: s.cleanProfile(in.Profile),
	}
	if err := validateUser(u); err != nil {
		return domain.User{}, err
	}
	if err := s.storage.CreateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, storageErr("create user", err)
	}
	s.log.WithField("id", u.ID).WithField("role", u.Role()).Info("user registered")
	return u, nil
}

// GetUser returns the user and whether actor is looking at their own profile.
// Callers must show only the public projection when self is false.
func (s *Service) GetUser(ctx context.Context, actor domain.Actor, id uuid.UUID) (domain.User, bool, error) {
	u, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, false, storageErr("get user", err)
	}
	return u, actor.ID == id, nil
}

func (s *Service) ListVolunteers(ctx context.Context) ([]domain.PublicVolunteer, error) {
	list, err := s.storage.ListUsers(ctx, domain.RoleVolunteer)
	if err != nil {
		return nil, storageErr("list volunteers", err)
	}
	volunteers := make([]domain.PublicVolunteer, 0, len(list))
	for _, u := range list {
		if v, ok := u.Public(); ok {
			volunteers = append(volunteers, v)
		}
	}
	return volunteers, nil
}

// UpdateUser applies patch to the actor's own profile. Role never changes.
func (s *Service) UpdateUser(ctx context.Context, actor domain.Actor, id uuid.UUID, patch UserPatch) (domain.User, error) {
	if actor.ID != id {
		return domain.User{}, ErrForbidden
	}
	u, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, storageErr("get user", err)
	}

	setText := func(dst *string, v *string) {
		if v != nil {
			*dst = s.sanitize(*v)
		}
	}
	setText(&u.Name, patch.Name)
	setText(&u.Pronouns, patch.Pronouns)
	setText(&u.Location, patch.Location)
	setText(&u.MatchingProfile, patch.MatchingProfile)
	if patch.Username != nil {
		u.Username = normalize.Name(*patch.Username)
	}
	if patch.Email != nil {
		u.Email = normalize.Name(*patch.Email)
	}

	switch p := u.Profile.(type) {
	case domain.VolunteerProfile:
		if patch.Skills != nil {
			p.Skills = patch.Skills
		}
		if patch.Interests != nil {
			p.Interests = patch.Interests
		}
		if patch.SocialLinks != nil {
			p.SocialLinks = patch.SocialLinks
		}
		if patch.Age != nil {
			p.Age = *patch.Age
		}
		setText(&p.School, patch.School)
		setText(&p.Resume, patch.Resume)
		setText(&p.VolunteerForm, patch.VolunteerForm)
		setText(&p.PitchVideoURL, patch.PitchVideoURL)
		setText(&p.ProfilePhoto, patch.ProfilePhoto)
		u.Profile = s.cleanProfile(p)
	case domain.NonprofitProfile:
		if patch.NeededSkills != nil {
			p.NeededSkills = patch.NeededSkills
		}
		if patch.NeededInterests != nil {
			p.NeededInterests = patch.NeededInterests
		}
		setText(&p.OrganizationDescription, patch.OrganizationDescription)
		setText(&p.Website, patch.Website)
		setText(&p.OrganizationLogo, patch.OrganizationLogo)
		u.Profile = s.cleanProfile(p)
	}

	if err := validateUser(u); err != nil {
		return domain.User{}, err
	}
	u.UpdatedAt = s.now()
	if err := s.storage.UpdateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, storageErr("update user", err)
	}
	return u, nil
}

// DeleteUser removes the actor's account with its opportunities and
// applications.
func (s *Service) DeleteUser(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if actor.ID != id {
		return ErrForbidden
	}
	if err := s.storage.DeleteUser(ctx, id); err != nil {
		return storageErr("delete user", err)
	}
	if actor.Role == domain.RoleNonprofit {
		s.invalidate()
	}
	s.log.WithField("id", id).Info("user deleted")
	return nil
}
