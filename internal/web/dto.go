package web

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	authservice "github.com/goserg/volunteerhub/auth/service"
	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/service"
)

const dateLayout = "2006-01-02"

type registerRequest struct {
	Name            string   `json:"name"`
	Pronouns        string   `json:"pronouns"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Role            string   `json:"role"`
	Location        string   `json:"location"`
	MatchingProfile string   `json:"matchingProfile"`
	Age             int      `json:"age"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	School          string   `json:"school"`
	Resume          string   `json:"resume"`
	VolunteerForm   string   `json:"volunteerForm"`
	PitchVideoURL   string   `json:"pitchVideoUrl"`
	ProfilePhoto    string   `json:"profilePhoto"`
	SocialLinks     []string `json:"socialLinks"`

	NeededSkills            []string `json:"neededSkills"`
	NeededInterests         []string `json:"neededInterests"`
	OrganizationDescription string   `json:"organizationDescription"`
	Website                 string   `json:"website"`
	OrganizationLogo        string   `json:"organizationLogo"`
}

var (
	ErrUnknownRole   = errors.New("role must be volunteer or nonprofit")
	ErrEmptyEmail    = errors.New("email must not be empty")
	ErrEmptyPassword = errors.New("password must not be empty")
)

func (r registerRequest) Validate() error {
	var err error
	if !domain.Role(r.Role).Valid() {
		err = errors.Join(err, ErrUnknownRole)
	}
	if r.Email == "" {
		err = errors.Join(err, ErrEmptyEmail)
	}
	err = errors.Join(err, authservice.ValidatePassword(r.Password))
	return err
}

// toInput keeps only the fields of the requested role.
func (r registerRequest) toInput() service.RegisterInput {
	in := service.RegisterInput{
		Name:            r.Name,
		Username:        r.Username,
		Email:           r.Email,
		Pronouns:        r.Pronouns,
		Location:        r.Location,
		MatchingProfile: r.MatchingProfile,
	}
	switch domain.Role(r.Role) {
	case domain.RoleVolunteer:
		in.Profile = domain.VolunteerProfile{
			Skills:        r.Skills,
			Interests:     r.Interests,
			Age:           r.Age,
			School:        r.School,
			Resume:        r.Resume,
			VolunteerForm: r.VolunteerForm,
			PitchVideoURL: r.PitchVideoURL,
			ProfilePhoto:  r.ProfilePhoto,
			SocialLinks:   r.SocialLinks,
		}
	case domain.RoleNonprofit:
		in.Profile = domain.NonprofitProfile{
			NeededSkills:            r.NeededSkills,
			NeededInterests:         r.NeededInterests,
			OrganizationDescription: r.OrganizationDescription,
			Website:                 r.Website,
			OrganizationLogo:        r.OrganizationLogo,
		}
	}
	return in
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	var err error
	if r.Email == "" {
		err = errors.Join(err, ErrEmptyEmail)
	}
	if r.Password == "" {
		err = errors.Join(err, ErrEmptyPassword)
	}
	return err
}

// userPatchRequest has no role or password, those are never changed here.
type userPatchRequest struct {
	Name            *string `json:"name"`
	Username        *string `json:"username"`
	Email           *string `json:"email"`
	Pronouns        *string `json:"pronouns"`
	Location        *string `json:"location"`
	MatchingProfile *string `json:"matchingProfile"`

	Skills        []string `json:"skills"`
	Interests     []string `json:"interests"`
	Age           *int     `json:"age"`
	School        *string  `json:"school"`
	Resume        *string  `json:"resume"`
	VolunteerForm *string  `json:"volunteerForm"`
	PitchVideoURL *string  `json:"pitchVideoUrl"`
	ProfilePhoto  *string  `json:"profilePhoto"`
	SocialLinks   []string `json:"socialLinks"`

	NeededSkills            []string `json:"neededSkills"`
	NeededInterests         []string `json:"neededInterests"`
	OrganizationDescription *string  `json:"organizationDescription"`
	Website                 *string  `json:"website"`
	OrganizationLogo        *string  `json:"organizationLogo"`
}

func (r userPatchRequest) toPatch() service.UserPatch {
	return service.UserPatch{
		Name:                    r.Name,
		Username:                r.Username,
		Email:                   r.Email,
		Pronouns:                r.Pronouns,
		Location:                r.Location,
		MatchingProfile:         r.MatchingProfile,
		Skills:                  r.Skills,
		Interests:               r.Interests,
		Age:                     r.Age,
		School:                  r.School,
		Resume:                  r.Resume,
		VolunteerForm:           r.VolunteerForm,
		PitchVideoURL:           r.PitchVideoURL,
		ProfilePhoto:            r.ProfilePhoto,
		SocialLinks:             r.SocialLinks,
		NeededSkills:            r.NeededSkills,
		NeededInterests:         r.NeededInterests,
		OrganizationDescription: r.OrganizationDescription,
		Website:                 r.Website,
		OrganizationLogo:        r.OrganizationLogo,
	}
}

type opportunityRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Location       string   `json:"location"`
	EstimatedHours int      `json:"estimatedHours"`
	Deadline       string   `json:"deadline"`
	Status         string   `json:"status"`
	SkillsRequired []string `json:"skillsRequired"`
}

func (r opportunityRequest) toInput() (service.OpportunityInput, error) {
	deadline, err := parseDeadline(r.Deadline)
	if err != nil {
		return service.OpportunityInput{}, err
	}
	return service.OpportunityInput{
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		Location:       r.Location,
		EstimatedHours: r.EstimatedHours,
		Deadline:       deadline,
		Status:         domain.OpportunityStatus(r.Status),
		SkillsRequired: r.SkillsRequired,
	}, nil
}

type opportunityPatchRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	Location       *string  `json:"location"`
	EstimatedHours *int     `json:"estimatedHours"`
	Deadline       *string  `json:"deadline"`
	Status         *string  `json:"status"`
	SkillsRequired []string `json:"skillsRequired"`
}

func (r opportunityPatchRequest) toPatch() (service.OpportunityPatch, error) {
	patch := service.OpportunityPatch{
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		Location:       r.Location,
		EstimatedHours: r.EstimatedHours,
		SkillsRequired: r.SkillsRequired,
	}
	if r.Deadline != nil {
		deadline, err := parseDeadline(*r.Deadline)
		if err != nil {
			return service.OpportunityPatch{}, err
		}
		patch.Deadline = deadline
	}
	if r.Status != nil {
		status := domain.OpportunityStatus(*r.Status)
		patch.Status = &status
	}
	return patch, nil
}

type reviewRequest struct {
	Status string `json:"status"`
}

// parseDeadline accepts RFC 3339 timestamps and plain dates.
func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid deadline %q, want RFC 3339 or %s", s, dateLayout)
}

type posterResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Username         string    `json:"username"`
	OrganizationLogo string    `json:"organizationLogo"`
}

type opportunityResponse struct {
	ID             uuid.UUID       `json:"id"`
	Nonprofit      *posterResponse `json:"nonprofit"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Location       string          `json:"location"`
	EstimatedHours int             `json:"estimatedHours"`
	Deadline       *time.Time      `json:"deadline"`
	Status         string          `json:"status"`
	SkillsRequired []string        `json:"skillsRequired"`
	Keywords       []string        `json:"keywords"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	MatchScore     *int            `json:"matchScore,omitempty"`
}

func convertOpportunity(o domain.Opportunity) opportunityResponse {
	r := opportunityResponse{
		ID:             o.ID,
		Title:          o.Title,
		Description:    o.Description,
		Category:       o.Category,
		Location:       o.Location,
		EstimatedHours: o.EstimatedHours,
		Deadline:       o.Deadline,
		Status:         string(o.Status),
		SkillsRequired: nonNil(o.SkillsRequired),
		Keywords:       nonNil(o.Keywords),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if o.Poster.ID != uuid.Nil {
		r.Nonprofit = &posterResponse{
			ID:               o.Poster.ID,
			Name:             o.Poster.Name,
			Username:         o.Poster.Username,
			OrganizationLogo: o.Poster.OrganizationLogo,
		}
	}
	return r
}

func convertOpportunities(list []domain.Opportunity) []opportunityResponse {
	out := make([]opportunityResponse, 0, len(list))
	for _, o := range list {
		out = append(out, convertOpportunity(o))
	}
	return out
}

func convertRankedOpportunities(list []domain.RankedOpportunity) []opportunityResponse {
	out := make([]opportunityResponse, 0, len(list))
	for _, o := range list {
		r := convertOpportunity(o.Opportunity)
		score := o.MatchScore
		r.MatchScore = &score
		out = append(out, r)
	}
	return out
}

type publicVolunteerResponse struct {
	ID            uuid.UUID `json:"id"`
	Role          string    `json:"role"`
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
	MatchScore    *int      `json:"matchScore,omitempty"`
}

func convertPublicVolunteer(v domain.PublicVolunteer) publicVolunteerResponse {
	return publicVolunteerResponse{
		ID:            v.ID,
		Role:          string(domain.RoleVolunteer),
		Name:          v.Name,
		Username:      v.Username,
		Pronouns:      v.Pronouns,
		Location:      v.Location,
		School:        v.School,
		Age:           v.Age,
		Skills:        nonNil(v.Skills),
		Interests:     nonNil(v.Interests),
		PitchVideoURL: v.PitchVideoURL,
		ProfilePhoto:  v.ProfilePhoto,
		CreatedAt:     v.CreatedAt,
	}
}

func convertPublicVolunteers(list []domain.PublicVolunteer) []publicVolunteerResponse {
	out := make([]publicVolunteerResponse, 0, len(list))
	for _, v := range list {
		out = append(out, convertPublicVolunteer(v))
	}
	return out
}

func convertRankedVolunteers(list []domain.RankedVolunteer) []publicVolunteerResponse {
	out := make([]publicVolunteerResponse, 0, len(list))
	for _, v := range list {
		r := convertPublicVolunteer(v.PublicVolunteer)
		score := v.MatchScore
		r.MatchScore = &score
		out = append(out, r)
	}
	return out
}

// userResponse is the full account. Role specific fields of the other role
// are omitted.
type userResponse struct {
	ID              uuid.UUID `json:"id"`
	Role            string    `json:"role"`
	Name            string    `json:"name"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	Pronouns        string    `json:"pronouns"`
	Location        string    `json:"location"`
	MatchingProfile string    `json:"matchingProfile,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Skills        []string `json:"skills,omitempty"`
	Interests     []string `json:"interests,omitempty"`
	Age           int      `json:"age,omitempty"`
	School        string   `json:"school,omitempty"`
	Resume        string   `json:"resume,omitempty"`
	VolunteerForm string   `json:"volunteerForm,omitempty"`
	PitchVideoURL string   `json:"pitchVideoUrl,omitempty"`
	ProfilePhoto  string   `json:"profilePhoto,omitempty"`
	SocialLinks   []string `json:"socialLinks,omitempty"`

	NeededSkills            []string `json:"neededSkills,omitempty"`
	NeededInterests         []string `json:"neededInterests,omitempty"`
	OrganizationDescription string   `json:"organizationDescription,omitempty"`
	Website                 string   `json:"website,omitempty"`
	OrganizationLogo        string   `json:"organizationLogo,omitempty"`
}

func convertUser(u domain.User) userResponse {
	r := userResponse{
		ID:              u.ID,
		Role:            string(u.Role()),
		Name:            u.Name,
		Username:        u.Username,
		Email:           u.Email,
		Pronouns:        u.Pronouns,
		Location:        u.Location,
		MatchingProfile: u.MatchingProfile,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
	switch p := u.Profile.(type) {
	case domain.VolunteerProfile:
		r.Skills = nonNil(p.Skills)
		r.Interests = nonNil(p.Interests)
		r.Age = p.Age
		r.School = p.School
		r.Resume = p.Resume
		r.VolunteerForm = p.VolunteerForm
		r.PitchVideoURL = p.PitchVideoURL
		r.ProfilePhoto = p.ProfilePhoto
		r.SocialLinks = nonNil(p.SocialLinks)
	case domain.NonprofitProfile:
		r.NeededSkills = nonNil(p.NeededSkills)
		r.NeededInterests = nonNil(p.NeededInterests)
		r.OrganizationDescription = p.OrganizationDescription
		r.Website = p.Website
		r.OrganizationLogo = p.OrganizationLogo
	}
	return r
}

// convertUserFor shows other users only what is public.
func convertUserFor(u domain.User, self bool) any {
	if self {
		return convertUser(u)
	}
	if v, ok := u.Public(); ok {
		return convertPublicVolunteer(v)
	}
	r := convertUser(u)
	r.Email = ""
	r.MatchingProfile = ""
	return r
}

type applicationResponse struct {
	ID               uuid.UUID                `json:"id"`
	OpportunityID    uuid.UUID                `json:"opportunityId"`
	OpportunityTitle string                   `json:"opportunityTitle,omitempty"`
	VolunteerID      uuid.UUID                `json:"volunteerId"`
	Volunteer        *publicVolunteerResponse `json:"volunteer,omitempty"`
	Status           string                   `json:"status"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

func convertApplication(a domain.Application) applicationResponse {
	r := applicationResponse{
		ID:               a.ID,
		OpportunityID:    a.OpportunityID,
		OpportunityTitle: a.OpportunityTitle,
		VolunteerID:      a.VolunteerID,
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if a.Volunteer != nil {
		v := convertPublicVolunteer(*a.Volunteer)
		r.Volunteer = &v
	}
	return r
}

func convertApplications(list []domain.Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, convertApplication(a))
	}
	return out
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
