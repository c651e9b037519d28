package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/events"
	"github.com/goserg/volunteerhub/internal/keywords"
	"github.com/goserg/volunteerhub/internal/normalize"
	"github.com/goserg/volunteerhub/internal/storage"
)

const maxTitleLength = 200

type OpportunityInput struct {
	Title          string
	Description    string
	Category       string
	Location       string
	EstimatedHours int
	Deadline       *time.Time
	Status         domain.OpportunityStatus
	SkillsRequired []string
}

// OpportunityPatch changes only the fields that are set.
type OpportunityPatch struct {
	Title          *string
	Description    *string
	Category       *string
	Location       *string
	EstimatedHours *int
	Deadline       *time.Time
	Status         *domain.OpportunityStatus
	SkillsRequired []string
}

func validateOpportunity(o domain.Opportunity) error {
	var err error
	if o.Title == "" {
		err = errors.Join(err, errors.New("title is required"))
	}
	if len([]rune(o.Title)) > maxTitleLength {
		err = errors.Join(err, fmt.Errorf("title is longer than %d characters", maxTitleLength))
	}
	if o.Description == "" {
		err = errors.Join(err, errors.New("description is required"))
	}
	if o.EstimatedHours < 0 {
		err = errors.Join(err, errors.New("estimated hours must not be negative"))
	}
	if !o.Status.Valid() {
		err = errors.Join(err, fmt.Errorf("%w %q", ErrInvalidStatus, o.Status))
	}
	return invalid(err)
}

func (s *Service) extractKeywords(o domain.Opportunity) []string {
	return keywords.ExtractN(keywords.MatchText(o.Title, o.Description, o.Category, o.SkillsRequired), s.cfg.KeywordLimit)
}

func (s *Service) CreateOpportunity(ctx context.Context, actor domain.Actor, in OpportunityInput) (domain.Opportunity, error) {
	if actor.Role != domain.RoleNonprofit {
		return domain.Opportunity{}, ErrForbidden
	}
	now := s.now()
	o := domain.Opportunity{
		ID:             uuid.New(),
		NonprofitID:    actor.ID,
		Title:          s.sanitize(in.Title),
		Description:    s.sanitize(in.Description),
		Category:       s.sanitize(in.Category),
		Location:       s.sanitize(in.Location),
		EstimatedHours: in.EstimatedHours,
		Deadline:       in.Deadline,
		Status:         in.Status,
		SkillsRequired: normalize.Tags(s.sanitizeAll(in.SkillsRequired)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if o.Status == "" {
		o.Status = domain.OpportunityOpen
	}
	if err := validateOpportunity(o); err != nil {
		return domain.Opportunity{}, err
	}
	o.Keywords = s.extractKeywords(o)

	if err := s.storage.CreateOpportunity(ctx, o); err != nil {
		return domain.Opportunity{}, storageErr("create opportunity", err)
	}
	s.invalidate()
	s.log.WithField("id", o.ID).WithField("keywords", len(o.Keywords)).Debug("opportunity created")

	o, err := s.withPoster(ctx, o)
	if err != nil {
		return domain.Opportunity{}, err
	}
	s.publish(ctx, events.OpportunityCreated, o.ID, actor.ID, o)
	return o, nil
}

func (s *Service) GetOpportunity(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	o, err := s.storage.GetOpportunity(ctx, id)
	if err != nil {
		return domain.Opportunity{}, storageErr("get opportunity", err)
	}
	return s.withPoster(ctx, o)
}

// ListOpportunities returns opportunities newest first.
func (s *Service) ListOpportunities(ctx context.Context, filter storage.OpportunityFilter) ([]domain.Opportunity, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalid(fmt.Errorf("%w %q", ErrInvalidStatus, filter.Status))
	}
	list, err := s.storage.ListOpportunities(ctx, filter)
	if err != nil {
		return nil, storageErr("list opportunities", err)
	}
	if err := s.attachPosters(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) MyOpportunities(ctx context.Context, actor domain.Actor) ([]domain.Opportunity, error) {
	if actor.Role != domain.RoleNonprofit {
		return nil, ErrForbidden
	}
	return s.ListOpportunities(ctx, storage.OpportunityFilter{NonprofitID: actor.ID})
}

// ownOpportunity loads the opportunity and checks that actor posted it.
func (s *Service) ownOpportunity(ctx context.Context, actor domain.Actor, id uuid.UUID) (domain.Opportunity, error) {
	if actor.Role != domain.RoleNonprofit {
		return domain.Opportunity{}, ErrForbidden
	}
	o, err := s.storage.GetOpportunity(ctx, id)
	if err != nil {
		return domain.Opportunity{}, storageErr("get opportunity", err)
	}
	if o.NonprofitID != actor.ID {
		return domain.Opportunity{}, ErrForbidden
	}
	return o, nil
}

func (s *Service) UpdateOpportunity(ctx context.Context, actor domain.Actor, id uuid.UUID, patch OpportunityPatch) (domain.Opportunity, error) {
	o, err := s.ownOpportunity(ctx, actor, id)
	if err != nil {
		return domain.Opportunity{}, err
	}

	textChanged := false
	setText := func(dst *string, v *string) {
		if v == nil {
			return
		}
		clean := s.sanitize(*v)
		if clean != *dst {
			*dst = clean
			textChanged = true
		}
	}
	setText(&o.Title, patch.Title)
	setText(&o.Description, patch.Description)
	setText(&o.Category, patch.Category)
	if patch.Location != nil {
		o.Location = s.sanitize(*patch.Location)
	}
	if patch.EstimatedHours != nil {
		o.EstimatedHours = *patch.EstimatedHours
	}
	if patch.Deadline != nil {
		o.Deadline = patch.Deadline
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.SkillsRequired != nil {
		o.SkillsRequired = normalize.Tags(s.sanitizeAll(patch.SkillsRequired))
		textChanged = true
	}
	if err := validateOpportunity(o); err != nil {
		return domain.Opportunity{}, err
	}
	if textChanged && s.cfg.RecomputeKeywordsOnUpdate {
		o.Keywords = s.extractKeywords(o)
	}
	o.UpdatedAt = s.now()

	if err := s.storage.UpdateOpportunity(ctx, o); err != nil {
		return domain.Opportunity{}, storageErr("update opportunity", err)
	}
	s.invalidate()

	o, err = s.withPoster(ctx, o)
	if err != nil {
		return domain.Opportunity{}, err
	}
	s.publish(ctx, events.OpportunityUpdated, o.ID, actor.ID, o)
	return o, nil
}

// DeleteOpportunity removes the opportunity with all of its applications.
func (s *Service) DeleteOpportunity(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if _, err := s.ownOpportunity(ctx, actor, id); err != nil {
		return err
	}
	if err := s.storage.DeleteOpportunity(ctx, id); err != nil {
		return storageErr("delete opportunity", err)
	}
	s.invalidate()
	s.publish(ctx, events.OpportunityDeleted, id, actor.ID, nil)
	return nil
}

func (s *Service) withPoster(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error) {
	list := []domain.Opportunity{o}
	if err := s.attachPosters(ctx, list); err != nil {
		return domain.Opportunity{}, err
	}
	return list[0], nil
}

// attachPosters fills Poster in place. Opportunities of deleted nonprofits
// keep an empty poster.
func (s *Service) attachPosters(ctx context.Context, list []domain.Opportunity) error {
	if len(list) == 0 {
		return nil
	}
	seen := mapset.NewThreadUnsafeSet[uuid.UUID]()
	ids := make([]uuid.UUID, 0, len(list))
	for _, o := range list {
		if seen.Add(o.NonprofitID) {
			ids = append(ids, o.NonprofitID)
		}
	}
	posters, err := s.storage.GetUsers(ctx, ids)
	if err != nil {
		return storageErr("get posters", err)
	}
	byID := make(map[uuid.UUID]domain.Poster, len(posters))
	for _, p := range posters {
		byID[p.ID] = p.Poster()
	}
	for i := range list {
		list[i].Poster = byID[list[i].NonprofitID]
	}
	return nil
}
