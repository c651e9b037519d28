package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/storage"
)

// RecommendedOpportunities ranks open opportunities for the calling volunteer
// by skill and interest overlap.
func (s *Service) RecommendedOpportunities(ctx context.Context, actor domain.Actor) ([]domain.RankedOpportunity, error) {
	if actor.Role != domain.RoleVolunteer {
		return nil, ErrForbidden
	}
	user, err := s.storage.GetUser(ctx, actor.ID)
	if err != nil {
		return nil, storageErr("get volunteer", err)
	}
	profile, ok := user.Volunteer()
	if !ok {
		return nil, ErrForbidden
	}

	open, err := s.openOpportunities(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.attachPosters(ctx, open); err != nil {
		return nil, err
	}
	ranked := s.scorer.RankOpportunities(profile, open)
	s.log.WithField("volunteer", actor.ID).WithField("candidates", len(ranked)).Trace("opportunities ranked")
	return ranked, nil
}

// RecommendedVolunteers ranks every volunteer by skill overlap with an
// opportunity of the calling nonprofit.
func (s *Service) RecommendedVolunteers(ctx context.Context, actor domain.Actor, opportunityID uuid.UUID) ([]domain.RankedVolunteer, error) {
	o, err := s.ownOpportunity(ctx, actor, opportunityID)
	if err != nil {
		return nil, err
	}
	volunteers, err := s.storage.ListUsers(ctx, domain.RoleVolunteer)
	if err != nil {
		return nil, storageErr("list volunteers", err)
	}
	ranked := s.scorer.RankVolunteers(o, volunteers)
	s.log.WithField("opportunity", o.ID).WithField("candidates", len(ranked)).Trace("volunteers ranked")
	return ranked, nil
}

func (s *Service) openOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	var generation uint64
	if s.cache != nil {
		cached, gen, ok := s.cache.Fetch()
		if ok {
			return cached, nil
		}
		generation = gen
	}
	open, err := s.storage.ListOpportunities(ctx, storage.OpportunityFilter{Status: domain.OpportunityOpen})
	if err != nil {
		return nil, storageErr("list open opportunities", err)
	}
	if s.cache != nil {
		s.cache.Commit(generation, open)
	}
	return open, nil
}
