package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleNonprofit Role = "nonprofit"
)

func (r Role) Valid() bool {
	return r == RoleVolunteer || r == RoleNonprofit
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

type Account struct {
	ID              uuid.UUID
	Name            string
	Username        string
	Email           string
	Pronouns        string
	Location        string
	MatchingProfile string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile holds the role specific part of a user. Only VolunteerProfile and
// NonprofitProfile implement it.
type Profile interface {
	Role() Role
	sealed()
}

type VolunteerProfile struct {
	Skills        []string
	Interests     []string
	Age           int
	School        string
	Resume        string
	VolunteerForm string
	PitchVideoURL string
	ProfilePhoto  string
	SocialLinks   []string
}

func (VolunteerProfile) Role() Role { return RoleVolunteer }
func (VolunteerProfile) sealed()    {}

type NonprofitProfile struct {
	NeededSkills            []string
	NeededInterests         []string
	OrganizationDescription string
	Website                 string
	OrganizationLogo        string
}

func (NonprofitProfile) Role() Role { return RoleNonprofit }
func (NonprofitProfile) sealed()    {}

type User struct {
	Account
	Profile Profile
}

func (u User) Role() Role {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

func (u User) Volunteer() (VolunteerProfile, bool) {
	p, ok := u.Profile.(VolunteerProfile)
	return p, ok
}

func (u User) Nonprofit() (NonprofitProfile, bool) {
	p, ok := u.Profile.(NonprofitProfile)
	return p, ok
}

// PublicVolunteer is the projection of a volunteer that may be shown to other users.
type PublicVolunteer struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Pronouns      string    `json:"pronouns"`
	Location      string    `json:"location"`
	School        string    `json:"school"`
	Age           int       `json:"age,omitempty"`
	Skills        []string  `json:"skills"`
	Interests     []string  `json:"interests"`
	PitchVideoURL string    `json:"pitchVideoUrl"`
	ProfilePhoto  string    `json:"profilePhoto"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Public returns the volunteer projection of u. ok is false for nonprofits.
func (u User) Public() (PublicVolunteer, bool) {
	v, ok := u.Volunteer()
	if !ok {
		return PublicVolunteer{}, false
	}
	return PublicVolunteer{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		Pronouns:      u.Pronouns,
		Location:      u.Location,
		School:        v.School,
		Age:           v.Age,
		Skills:        v.Skills,
		Interests:     v.Interests,
		PitchVideoURL: v.PitchVideoURL,
		ProfilePhoto:  v.ProfilePhoto,
		CreatedAt:     u.CreatedAt,
	}, true
}

// Poster is the part of a nonprofit attached to its opportunities.
type Poster struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Username         string    `json:"username"`
	OrganizationLogo string    `json:"organizationLogo"`
}

func (u User) Poster() Poster {
	p := Poster{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
	}
	if np, ok := u.Nonprofit(); ok {
		p.OrganizationLogo = np.OrganizationLogo
	}
	return p
}
