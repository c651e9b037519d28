package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goserg/volunteerhub/internal/domain"
)

type OpportunityFilter struct {
	Status      domain.OpportunityStatus
	Category    string
	NonprofitID uuid.UUID
}

type OpportunityStorage interface {
	CreateOpportunity(ctx context.Context, o domain.Opportunity) error
	GetOpportunity(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	// ListOpportunities returns matching opportunities, newest first.
	ListOpportunities(ctx context.Context, filter OpportunityFilter) ([]domain.Opportunity, error)
	UpdateOpportunity(ctx context.Context, o domain.Opportunity) error
	// DeleteOpportunity removes the opportunity and all its applications.
	DeleteOpportunity(ctx context.Context, id uuid.UUID) error
}

type UserStorage interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetUsers(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	// ListUsers returns users of the role in registration order.
	ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type ApplicationFilter struct {
	OpportunityID uuid.UUID
	VolunteerID   uuid.UUID
}

type ApplicationStorage interface {
	// CreateApplication fails with ErrAlreadyExists for a second application
	// of the same volunteer to the same opportunity.
	CreateApplication(ctx context.Context, a domain.Application) error
	GetApplication(ctx context.Context, id uuid.UUID) (domain.Application, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, at time.Time) error
	DeleteApplication(ctx context.Context, id uuid.UUID) error
}

type Storage interface {
	OpportunityStorage
	UserStorage
	ApplicationStorage
}
