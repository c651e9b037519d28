package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/events"
	"github.com/goserg/volunteerhub/internal/storage"
)

func (s *Service) Apply(ctx context.Context, actor domain.Actor, opportunityID uuid.UUID) (domain.Application, error) {
	if actor.Role != domain.RoleVolunteer {
		return domain.Application{}, ErrForbidden
	}
	o, err := s.storage.GetOpportunity(ctx, opportunityID)
	if err != nil {
		return domain.Application{}, storageErr("get opportunity", err)
	}
	if o.Status != domain.OpportunityOpen {
		return domain.Application{}, ErrClosed
	}

	now := s.now()
	a := domain.Application{
		ID:               uuid.New(),
		OpportunityID:    o.ID,
		VolunteerID:      actor.ID,
		Status:           domain.ApplicationApplied,
		CreatedAt:        now,
		UpdatedAt:        now,
		OpportunityTitle: o.Title,
	}
	if err := s.storage.CreateApplication(ctx, a); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return domain.Application{}, ErrAlreadyApplied
		}
		return domain.Application{}, storageErr("create application", err)
	}
	s.publish(ctx, events.ApplicationCreated, a.ID, actor.ID, a)
	return a, nil
}

// MyApplications lists the volunteer's applications with opportunity titles.
func (s *Service) MyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if actor.Role != domain.RoleVolunteer {
		return nil, ErrForbidden
	}
	list, err := s.storage.ListApplications(ctx, storage.ApplicationFilter{VolunteerID: actor.ID})
	if err != nil {
		return nil, storageErr("list applications", err)
	}
	titles := make(map[uuid.UUID]string)
	for i := range list {
		title, ok := titles[list[i].OpportunityID]
		if !ok {
			o, err := s.storage.GetOpportunity(ctx, list[i].OpportunityID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, storageErr("get opportunity", err)
			}
			title = o.Title
			titles[list[i].OpportunityID] = title
		}
		list[i].OpportunityTitle = title
	}
	return list, nil
}

// OpportunityApplications lists applications to an opportunity of the calling
// nonprofit with the public volunteer projections.
func (s *Service) OpportunityApplications(ctx context.Context, actor domain.Actor, opportunityID uuid.UUID) ([]domain.Application, error) {
	o, err := s.ownOpportunity(ctx, actor, opportunityID)
	if err != nil {
		return nil, err
	}
	list, err := s.storage.ListApplications(ctx, storage.ApplicationFilter{OpportunityID: o.ID})
	if err != nil {
		return nil, storageErr("list applications", err)
	}
	ids := make([]uuid.UUID, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.VolunteerID)
	}
	volunteers, err := s.storage.GetUsers(ctx, ids)
	if err != nil {
		return nil, storageErr("get volunteers", err)
	}
	byID := make(map[uuid.UUID]domain.PublicVolunteer, len(volunteers))
	for _, u := range volunteers {
		if v, ok := u.Public(); ok {
			byID[u.ID] = v
		}
	}
	for i := range list {
		list[i].OpportunityTitle = o.Title
		if v, ok := byID[list[i].VolunteerID]; ok {
			list[i].Volunteer = &v
		}
	}
	return list, nil
}

// ReviewApplication lets the owning nonprofit accept or reject an application.
func (s *Service) ReviewApplication(ctx context.Context, actor domain.Actor, id uuid.UUID, status domain.ApplicationStatus) (domain.Application, error) {
	if status != domain.ApplicationAccepted && status != domain.ApplicationRejected {
		return domain.Application{}, invalid(fmt.Errorf("%w %q, want accepted or rejected", ErrInvalidStatus, status))
	}
	if actor.Role != domain.RoleNonprofit {
		return domain.Application{}, ErrForbidden
	}
	a, err := s.storage.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, storageErr("get application", err)
	}
	o, err := s.ownOpportunity(ctx, actor, a.OpportunityID)
	if err != nil {
		return domain.Application{}, err
	}

	a.Status = status
	a.UpdatedAt = s.now()
	a.OpportunityTitle = o.Title
	if err := s.storage.UpdateApplicationStatus(ctx, a.ID, a.Status, a.UpdatedAt); err != nil {
		return domain.Application{}, storageErr("update application", err)
	}
	s.publish(ctx, events.ApplicationUpdated, a.ID, actor.ID, a)
	return a, nil
}

// WithdrawApplication deletes the volunteer's own application while it is
// still undecided.
func (s *Service) WithdrawApplication(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if actor.Role != domain.RoleVolunteer {
		return ErrForbidden
	}
	a, err := s.storage.GetApplication(ctx, id)
	if err != nil {
		return storageErr("get application", err)
	}
	if a.VolunteerID != actor.ID {
		return ErrForbidden
	}
	if a.Status != domain.ApplicationApplied {
		return invalid(fmt.Errorf("%w: application is already %s", ErrInvalidStatus, a.Status))
	}
	if err := s.storage.DeleteApplication(ctx, id); err != nil {
		return storageErr("delete application", err)
	}
	s.publish(ctx, events.ApplicationWithdrawn, id, actor.ID, nil)
	return nil
}
