package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/gen/model"
	"github.com/goserg/volunteerhub/internal/domain"
)

func encodeList(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return string(data)
}

func encodeListPtr(list []string) *string {
	s := encodeList(list)
	return &s
}

func decodeList(s string) ([]string, error) {
	list := []string{}
	if s == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, fmt.Errorf("decode list %q: %w", s, err)
	}
	return list, nil
}

func decodeListPtr(s *string) ([]string, error) {
	if s == nil {
		return []string{}, nil
	}
	return decodeList(*s)
}

func strPtr(s string) *string {
	return &s
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func convertOpportunityFromDomain(o domain.Opportunity) model.Opportunities {
	return model.Opportunities{
		ID:             o.ID.String(),
		NonprofitID:    o.NonprofitID.String(),
		Title:          o.Title,
		Description:    o.Description,
		Category:       o.Category,
		Location:       o.Location,
		EstimatedHours: int32(o.EstimatedHours),
		Deadline:       o.Deadline,
		Status:         string(o.Status),
		SkillsRequired: encodeList(o.SkillsRequired),
		Keywords:       encodeList(o.Keywords),
		CreatedAt:      o.CreatedAt.UTC(),
		UpdatedAt:      o.UpdatedAt.UTC(),
	}
}

func convertOpportunityToDomain(o model.Opportunities) (domain.Opportunity, error) {
	id, err := uuid.Parse(o.ID)
	if err != nil {
		return domain.Opportunity{}, err
	}
	nonprofitID, err := uuid.Parse(o.NonprofitID)
	if err != nil {
		return domain.Opportunity{}, err
	}
	skills, err := decodeList(o.SkillsRequired)
	if err != nil {
		return domain.Opportunity{}, err
	}
	keywords, err := decodeList(o.Keywords)
	if err != nil {
		return domain.Opportunity{}, err
	}
	return domain.Opportunity{
		ID:             id,
		NonprofitID:    nonprofitID,
		Title:          o.Title,
		Description:    o.Description,
		Category:       o.Category,
		Location:       o.Location,
		EstimatedHours: int(o.EstimatedHours),
		Deadline:       o.Deadline,
		Status:         domain.OpportunityStatus(o.Status),
		SkillsRequired: skills,
		Keywords:       keywords,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}, nil
}

func convertOpportunitiesToDomain(list []model.Opportunities) ([]domain.Opportunity, error) {
	converted := make([]domain.Opportunity, 0, len(list))
	for _, o := range list {
		c, err := convertOpportunityToDomain(o)
		if err != nil {
			return nil, err
		}
		converted = append(converted, c)
	}
	return converted, nil
}

func convertUserFromDomain(u domain.User) (model.Users, error) {
	m := model.Users{
		ID:              u.ID.String(),
		Role:            string(u.Role()),
		Name:            u.Name,
		Username:        u.Username,
		Email:           u.Email,
		Pronouns:        u.Pronouns,
		Location:        u.Location,
		MatchingProfile: u.MatchingProfile,
		CreatedAt:       u.CreatedAt.UTC(),
		UpdatedAt:       u.UpdatedAt.UTC(),
	}
	switch p := u.Profile.(type) {
	case domain.VolunteerProfile:
		age := int32(p.Age)
		m.Skills = encodeListPtr(p.Skills)
		m.Interests = encodeListPtr(p.Interests)
		m.Age = &age
		m.School = strPtr(p.School)
		m.Resume = strPtr(p.Resume)
		m.VolunteerForm = strPtr(p.VolunteerForm)
		m.PitchVideoURL = strPtr(p.PitchVideoURL)
		m.ProfilePhoto = strPtr(p.ProfilePhoto)
		m.SocialLinks = encodeListPtr(p.SocialLinks)
	case domain.NonprofitProfile:
		m.NeededSkills = encodeListPtr(p.NeededSkills)
		m.NeededInterests = encodeListPtr(p.NeededInterests)
		m.OrganizationDescription = strPtr(p.OrganizationDescription)
		m.Website = strPtr(p.Website)
		m.OrganizationLogo = strPtr(p.OrganizationLogo)
	default:
		return model.Users{}, fmt.Errorf("user %s has no profile", u.ID)
	}
	return m, nil
}

func convertUserToDomain(m model.Users) (domain.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		Account: domain.Account{
			ID:              id,
			Name:            m.Name,
			Username:        m.Username,
			Email:           m.Email,
			Pronouns:        m.Pronouns,
			Location:        m.Location,
			MatchingProfile: m.MatchingProfile,
			CreatedAt:       m.CreatedAt,
			UpdatedAt:       m.UpdatedAt,
		},
	}
	switch domain.Role(m.Role) {
	case domain.RoleVolunteer:
		p := domain.VolunteerProfile{
			School:        strVal(m.School),
			Resume:        strVal(m.Resume),
			VolunteerForm: strVal(m.VolunteerForm),
			PitchVideoURL: strVal(m.PitchVideoURL),
			ProfilePhoto:  strVal(m.ProfilePhoto),
		}
		if m.Age != nil {
			p.Age = int(*m.Age)
		}
		if p.Skills, err = decodeListPtr(m.Skills); err != nil {
			return domain.User{}, err
		}
		if p.Interests, err = decodeListPtr(m.Interests); err != nil {
			return domain.User{}, err
		}
		if p.SocialLinks, err = decodeListPtr(m.SocialLinks); err != nil {
			return domain.User{}, err
		}
		u.Profile = p
	case domain.RoleNonprofit:
		p := domain.NonprofitProfile{
			OrganizationDescription: strVal(m.OrganizationDescription),
			Website:                 strVal(m.Website),
			OrganizationLogo:        strVal(m.OrganizationLogo),
		}
		if p.NeededSkills, err = decodeListPtr(m.NeededSkills); err != nil {
			return domain.User{}, err
		}
		if p.NeededInterests, err = decodeListPtr(m.NeededInterests); err != nil {
			return domain.User{}, err
		}
		u.Profile = p
	default:
		return domain.User{}, fmt.Errorf("user %s has unknown role %q", m.ID, m.Role)
	}
	return u, nil
}

func convertUsersToDomain(list []model.Users) ([]domain.User, error) {
	converted := make([]domain.User, 0, len(list))
	for _, m := range list {
		u, err := convertUserToDomain(m)
		if err != nil {
			return nil, err
		}
		converted = append(converted, u)
	}
	return converted, nil
}

func convertApplicationFromDomain(a domain.Application) model.Applications {
	return model.Applications{
		ID:            a.ID.String(),
		OpportunityID: a.OpportunityID.String(),
		VolunteerID:   a.VolunteerID.String(),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt.UTC(),
		UpdatedAt:     a.UpdatedAt.UTC(),
	}
}

func convertApplicationToDomain(m model.Applications) (domain.Application, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return domain.Application{}, err
	}
	opportunityID, err := uuid.Parse(m.OpportunityID)
	if err != nil {
		return domain.Application{}, err
	}
	volunteerID, err := uuid.Parse(m.VolunteerID)
	if err != nil {
		return domain.Application{}, err
	}
	return domain.Application{
		ID:            id,
		OpportunityID: opportunityID,
		VolunteerID:   volunteerID,
		Status:        domain.ApplicationStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
